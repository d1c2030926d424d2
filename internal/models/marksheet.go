package models

// MarkSheetCourse is one contributing course row on a mark sheet.
type MarkSheetCourse struct {
	Code     string  `json:"code"`
	Title    string  `json:"title"`
	Credits  int     `json:"credits"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
	Grade    Grade   `json:"grade"`
}

// MarkSheet is a read-only projection for one (student, semester) pair,
// computed on demand and never persisted. CGPA is always the student's full
// cumulative value, independent of the requested semester.
type MarkSheet struct {
	Student  Student           `json:"student"`
	Semester string            `json:"semester"`
	Courses  []MarkSheetCourse `json:"courses"`
	SGPA     float64           `json:"sgpa"`
	CGPA     float64           `json:"cgpa"`
}
