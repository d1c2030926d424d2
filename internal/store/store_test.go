package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uni-portal-api/internal/models"
)

func score(v float64) *float64 { return &v }

func newFixture() *Store {
	return New(Data{
		Students: []models.Student{
			{ID: "S002", Name: "Bob Nguyen"},
			{ID: "S001", Name: "Alice Carter"},
		},
		Faculty: []models.Faculty{
			{ID: 2, Name: "Dr. Evelyn Reed", Email: "evelyn.r@university.edu"},
		},
		Users: []models.User{
			{ID: "u-1", Email: "admin@university.edu", Role: models.RoleAdmin, Status: models.UserActive},
		},
		Courses: []models.Course{
			{ID: "CS101", Code: "CS101", Title: "Intro to Programming", Credits: 3, Instructor: "Dr. Evelyn Reed"},
		},
		Enrollments: map[string][]string{
			"CS101": {"S001", "S002"},
		},
		Assessments: map[string][]models.Assessment{
			"CS101": {
				{ID: 1, Title: "Midterm", Type: "Exam", MaxScore: 100, Semester: "Fall 2023", Scores: []models.AssessmentScore{
					{StudentID: "S001", StudentName: "Alice Carter", Score: score(80)},
					{StudentID: "S002", StudentName: "Bob Nguyen", Score: nil},
				}},
			},
		},
		Attendance: map[AttendanceKey]models.AttendanceStatus{
			{CourseID: "CS101", StudentID: "S001", Date: "2024-01-02"}: models.AttendanceLate,
			{CourseID: "CS101", StudentID: "S001", Date: "2024-01-01"}: models.AttendancePresent,
		},
	})
}

func TestStudentsSortedCopy(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	students := db.Students(ctx)
	require.Len(t, students, 2)
	assert.Equal(t, "S001", students[0].ID)
	assert.Equal(t, "S002", students[1].ID)

	// Mutating the returned slice must not leak into the store.
	students[0].Name = "Mallory"
	again := db.Students(ctx)
	assert.Equal(t, "Alice Carter", again[0].Name)
}

func TestAssessmentsDeepCopied(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	first := db.AssessmentsByCourse(ctx, "CS101")
	require.Len(t, first, 1)
	*first[0].Scores[0].Score = 0

	second := db.AssessmentsByCourse(ctx, "CS101")
	assert.Equal(t, 80.0, *second[0].Scores[0].Score)
}

func TestAddCourseConflict(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	_, err := db.AddCourse(ctx, models.Course{ID: "CS101", Code: "CS101"})
	assert.ErrorIs(t, err, ErrConflict)

	created, err := db.AddCourse(ctx, models.Course{ID: "CS202", Code: "CS202"})
	require.NoError(t, err)
	assert.Equal(t, "CS202", created.ID)
	assert.Len(t, db.Courses(ctx), 2)
}

func TestRemoveCourseCascades(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	require.NoError(t, db.RemoveCourse(ctx, "CS101"))
	assert.Empty(t, db.Courses(ctx))
	assert.Empty(t, db.EnrolledStudentIDs(ctx, "CS101"))
	assert.Empty(t, db.AssessmentsByCourse(ctx, "CS101"))
	assert.Empty(t, db.AttendanceByCourse(ctx, "CS101"))

	assert.ErrorIs(t, db.RemoveCourse(ctx, "CS101"), ErrNotFound)
}

func TestAddFacultyAssignsIDAndAccount(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	created, err := db.AddFaculty(ctx,
		models.Faculty{Name: "Dr. New Hire", Email: "new.hire@university.edu"},
		models.User{ID: "u-2", Email: "new.hire@university.edu", Role: models.RoleFaculty, Status: models.UserActive},
	)
	require.NoError(t, err)
	assert.Greater(t, created.ID, 2)
	assert.NotEmpty(t, created.Avatar)

	account, err := db.UserByEmail(ctx, "new.hire@university.edu")
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.FacultyID)

	_, err = db.AddFaculty(ctx,
		models.Faculty{Name: "Duplicate", Email: "NEW.HIRE@university.edu"},
		models.User{ID: "u-3"},
	)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRemoveFacultyRemovesAccount(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	created, err := db.AddFaculty(ctx,
		models.Faculty{Name: "Dr. Short Stay", Email: "short.stay@university.edu"},
		models.User{ID: "u-9", Email: "short.stay@university.edu", Role: models.RoleFaculty},
	)
	require.NoError(t, err)

	require.NoError(t, db.RemoveFaculty(ctx, created.ID))
	_, err = db.UserByEmail(ctx, "short.stay@university.edu")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, db.RemoveFaculty(ctx, created.ID), ErrNotFound)
}

func TestAddAssessmentSeedsRows(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	created, err := db.AddAssessment(ctx, "CS101", models.Assessment{Title: "Final", Type: "Exam", MaxScore: 150, Semester: "Fall 2023"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.Len(t, created.Scores, 2)
	assert.Equal(t, "Alice Carter", created.Scores[0].StudentName)
	assert.Nil(t, created.Scores[0].Score)

	_, err = db.AddAssessment(ctx, "ZZ999", models.Assessment{Title: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAssessmentScoreValidation(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	require.NoError(t, db.UpdateAssessmentScore(ctx, "CS101", 1, "S002", score(95)))
	assert.ErrorIs(t, db.UpdateAssessmentScore(ctx, "CS101", 1, "S002", score(101)), ErrInvalidScore)
	assert.ErrorIs(t, db.UpdateAssessmentScore(ctx, "CS101", 1, "S002", score(-1)), ErrInvalidScore)
	assert.ErrorIs(t, db.UpdateAssessmentScore(ctx, "CS101", 99, "S002", score(10)), ErrNotFound)
	assert.ErrorIs(t, db.UpdateAssessmentScore(ctx, "CS101", 1, "S999", score(10)), ErrNotFound)

	// Clearing back to ungraded.
	require.NoError(t, db.UpdateAssessmentScore(ctx, "CS101", 1, "S002", nil))
	rows := db.AssessmentsByCourse(ctx, "CS101")
	record, ok := rows[0].ScoreFor("S002")
	require.True(t, ok)
	assert.Nil(t, record.Score)
}

func TestAttendanceQueriesAndUpdate(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	records := db.AttendanceByCourse(ctx, "CS101")
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-01", records[0].Date)
	assert.Equal(t, "Alice Carter", records[0].StudentName)

	january := db.AttendanceByCourseMonth(ctx, "CS101", 2024, 1)
	assert.Len(t, january, 2)
	assert.Empty(t, db.AttendanceByCourseMonth(ctx, "CS101", 2024, 2))

	require.NoError(t, db.UpdateAttendance(ctx, "CS101", "S001", "2024-01-01", models.AttendanceExcused))
	updated := db.AttendanceByCourseStudent(ctx, "CS101", "S001")
	assert.Equal(t, models.AttendanceExcused, updated[0].Status)

	// No prior history for the student in this course.
	assert.ErrorIs(t, db.UpdateAttendance(ctx, "CS101", "S002", "2024-01-01", models.AttendancePresent), ErrNotFound)
}

func TestTouchUserLogin(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.TouchUserLogin(ctx, "u-1", ts))

	user, err := db.UserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, ts, user.LastLogin)

	assert.ErrorIs(t, db.TouchUserLogin(ctx, "u-404", ts), ErrNotFound)
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	db := newFixture()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = db.Students(ctx)
			_ = db.AssessmentsByCourse(ctx, "CS101")
		}()
		go func() {
			defer wg.Done()
			_ = db.UpdateAssessmentScore(ctx, "CS101", 1, "S001", score(75))
		}()
	}
	wg.Wait()

	rows := db.AssessmentsByCourse(ctx, "CS101")
	record, ok := rows[0].ScoreFor("S001")
	require.True(t, ok)
	require.NotNil(t, record.Score)
	assert.Equal(t, 75.0, *record.Score)
}
