package models

// Course represents a catalogue entry. The ID is the uppercased course code.
// The instructor is referenced by display name rather than by faculty ID; the
// add-course command validates the name against the faculty roster.
type Course struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Credits    int    `json:"credits"`
	Instructor string `json:"instructor"`
}

// AssessmentScore is one student's row inside an assessment. A nil Score
// means ungraded or missed; it is excluded from every aggregate rather than
// counted as zero.
type AssessmentScore struct {
	StudentID   string   `json:"student_id"`
	StudentName string   `json:"student_name"`
	Score       *float64 `json:"score"`
}

// Assessment belongs to exactly one course and carries one score row per
// enrolled student at creation time.
type Assessment struct {
	ID       int               `json:"id"`
	Title    string            `json:"title"`
	Type     string            `json:"type"`
	MaxScore float64           `json:"max_score"`
	Semester string            `json:"semester,omitempty"`
	Scores   []AssessmentScore `json:"scores"`
}

// ScoreFor returns the student's score row, if any.
func (a Assessment) ScoreFor(studentID string) (AssessmentScore, bool) {
	for _, s := range a.Scores {
		if s.StudentID == studentID {
			return s, true
		}
	}
	return AssessmentScore{}, false
}
