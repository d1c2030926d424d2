package models

// GradeLetter is the letter band assigned to a percentage score.
type GradeLetter string

const (
	GradeA GradeLetter = "A"
	GradeB GradeLetter = "B"
	GradeC GradeLetter = "C"
	GradeD GradeLetter = "D"
	GradeF GradeLetter = "F"
)

// Grade pairs a letter band with its grade-point value. It is always derived
// from a percentage and never stored.
type Grade struct {
	Letter GradeLetter `json:"letter"`
	Points float64     `json:"points"`
}

// GradeForPercentage maps a 0-100 percentage onto the institution's fixed
// grading bands. Inputs outside [0, 100] are not expected.
func GradeForPercentage(percentage float64) Grade {
	switch {
	case percentage >= 90:
		return Grade{Letter: GradeA, Points: 10}
	case percentage >= 80:
		return Grade{Letter: GradeB, Points: 9}
	case percentage >= 70:
		return Grade{Letter: GradeC, Points: 8}
	case percentage >= 60:
		return Grade{Letter: GradeD, Points: 7}
	default:
		return Grade{Letter: GradeF, Points: 0}
	}
}

// CourseResult is the aggregated outcome of one student's assessments in a
// course for a single semester.
type CourseResult struct {
	CourseID   string  `json:"course_id"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`
	Grade      Grade   `json:"grade"`
}

// SemesterGPA carries an SGPA together with the credits that produced it so
// callers can tell "no contributing course" (Credits == 0) apart from a
// genuine 0.0 average.
type SemesterGPA struct {
	SGPA    float64 `json:"sgpa"`
	Credits int     `json:"credits"`
}
