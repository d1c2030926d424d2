package service

import (
	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/internal/store"
)

// newTestStore builds a small hand-checked dataset.
//
// Fall 2023 results:
//
//	S001: CS101 225/250 (A, 4 cr), CS201 40/50 (B, 3 cr) -> SGPA 67/7
//	S002: CS101 75/100 (C, 4 cr, final ungraded), MA101 60/100 (D, 3 cr) -> SGPA 53/7
//
// Spring 2024 results:
//
//	S001: CS201 25/50 (F, 3 cr) -> SGPA 0, so CGPA = 67/10 = 6.7
func newTestStore() *store.Store {
	return store.New(store.Data{
		Students: []models.Student{
			{ID: "S001", Name: "Alice Carter", Email: "alice@university.edu", Department: "Computer Science", EnrollmentDate: "2022-08-20"},
			{ID: "S002", Name: "Bob Nguyen", Email: "bob@university.edu", Department: "Computer Science", EnrollmentDate: "2022-08-20"},
		},
		Faculty: []models.Faculty{
			{ID: 2, Name: "Dr. Sarah Mitchell", Email: "sarah.mitchell@university.edu", Department: "Computer Science", Title: "Professor", Office: "CS-301"},
			{ID: 10, Name: "Dr. Priya Sharma", Email: "priya.sharma@university.edu", Department: "Mathematics", Title: "Associate Professor", Office: "MA-110"},
		},
		Courses: []models.Course{
			{ID: "CS101", Code: "CS101", Title: "Intro to Programming", Department: "Computer Science", Credits: 4, Instructor: "Dr. Sarah Mitchell"},
			{ID: "CS201", Code: "CS201", Title: "Data Structures", Department: "Computer Science", Credits: 3, Instructor: "Dr. Sarah Mitchell"},
			{ID: "MA101", Code: "MA101", Title: "Calculus I", Department: "Mathematics", Credits: 3, Instructor: "Dr. Priya Sharma"},
		},
		Enrollments: map[string][]string{
			"CS101": {"S001", "S002"},
			"CS201": {"S001"},
			"MA101": {"S002"},
		},
		Assessments: map[string][]models.Assessment{
			"CS101": {
				{
					ID: 1, Title: "Midterm", Type: "Exam", MaxScore: 100, Semester: "Fall 2023",
					Scores: []models.AssessmentScore{
						{StudentID: "S001", StudentName: "Alice Carter", Score: scorePtr(90)},
						{StudentID: "S002", StudentName: "Bob Nguyen", Score: scorePtr(75)},
					},
				},
				{
					ID: 2, Title: "Final", Type: "Exam", MaxScore: 150, Semester: "Fall 2023",
					Scores: []models.AssessmentScore{
						{StudentID: "S001", StudentName: "Alice Carter", Score: scorePtr(135)},
						{StudentID: "S002", StudentName: "Bob Nguyen", Score: nil},
					},
				},
			},
			"CS201": {
				{
					ID: 3, Title: "Project", Type: "Project", MaxScore: 50, Semester: "Fall 2023",
					Scores: []models.AssessmentScore{
						{StudentID: "S001", StudentName: "Alice Carter", Score: scorePtr(40)},
					},
				},
				{
					ID: 4, Title: "Quiz", Type: "Quiz", MaxScore: 50, Semester: "Spring 2024",
					Scores: []models.AssessmentScore{
						{StudentID: "S001", StudentName: "Alice Carter", Score: scorePtr(25)},
					},
				},
			},
			"MA101": {
				{
					ID: 5, Title: "Midterm", Type: "Exam", MaxScore: 100, Semester: "Fall 2023",
					Scores: []models.AssessmentScore{
						{StudentID: "S002", StudentName: "Bob Nguyen", Score: scorePtr(60)},
					},
				},
			},
		},
		Attendance: map[store.AttendanceKey]models.AttendanceStatus{
			{CourseID: "CS101", StudentID: "S001", Date: "2024-01-01"}: models.AttendancePresent,
			{CourseID: "CS101", StudentID: "S001", Date: "2024-01-02"}: models.AttendanceLate,
			{CourseID: "CS101", StudentID: "S001", Date: "2024-01-03"}: models.AttendanceAbsent,
			{CourseID: "CS101", StudentID: "S002", Date: "2024-01-01"}: models.AttendancePresent,
		},
	})
}

func emptyStore() *store.Store {
	return store.New(store.Data{})
}

func scorePtr(v float64) *float64 {
	return &v
}
