package models

// Student represents a learner registered in the institution. The ID doubles
// as the roll number ("CS-001"). CGPA is recomputed from assessment scores on
// every read and is never the source of truth.
type Student struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Department     string  `json:"department"`
	EnrollmentDate string  `json:"enrollment_date"`
	Avatar         string  `json:"avatar"`
	CGPA           float64 `json:"cgpa"`
}

// Faculty represents a teaching staff member.
type Faculty struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Title      string `json:"title"`
	Office     string `json:"office"`
	Avatar     string `json:"avatar"`
}
