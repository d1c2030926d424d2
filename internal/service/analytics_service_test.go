package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/uni-portal-api/internal/dto"
	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/internal/store"
)

func newAnalyticsService() *AnalyticsService {
	db := newTestStore()
	grades := NewGradeService(db, db, db, db, nil)
	return NewAnalyticsService(db, db, db, db, db, grades, nil)
}

func TestDashboardKpis(t *testing.T) {
	svc := newAnalyticsService()

	kpis, err := svc.DashboardKpis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, kpis.TotalStudents)
	assert.Equal(t, 2, kpis.TotalFaculty)
	assert.Equal(t, 3, kpis.TotalCourses)
	// (6.7 + 53/7) / 2 = 7.1357...
	assert.Equal(t, "7.14", kpis.AverageCgpa)
	// 3 of 4 records are Present or Late.
	assert.Equal(t, "75.0", kpis.AttendanceRate)
	assert.Equal(t, "1.5", kpis.FacultyLoadAvg)
	// S001 sits at CGPA 6.7, below the 7.5 floor.
	assert.Equal(t, 1, kpis.StudentsAtRisk)
}

func TestDashboardKpisEmptyStore(t *testing.T) {
	db := newTestStore()
	grades := NewGradeService(db, db, db, db, nil)
	empty := emptyStore()
	svc := NewAnalyticsService(empty, empty, empty, empty, empty, grades, nil)

	kpis, err := svc.DashboardKpis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, kpis.TotalStudents)
	assert.Equal(t, "0.00", kpis.AverageCgpa)
	assert.Equal(t, "0.0", kpis.AttendanceRate)
	assert.Equal(t, "0.0", kpis.FacultyLoadAvg)
}

func TestDashboardAttendanceRateCountsLateAsPresent(t *testing.T) {
	// 7 Present + 1 Late out of 10 recorded days: the numerator is
	// Present plus Late, so the rate is 80.0, not 70.0.
	statuses := []models.AttendanceStatus{
		models.AttendancePresent, models.AttendancePresent, models.AttendancePresent,
		models.AttendancePresent, models.AttendancePresent, models.AttendancePresent,
		models.AttendancePresent, models.AttendanceLate,
		models.AttendanceAbsent, models.AttendanceAbsent,
	}
	attendance := map[store.AttendanceKey]models.AttendanceStatus{}
	for i, status := range statuses {
		key := store.AttendanceKey{CourseID: "CS101", StudentID: "S001", Date: fmt.Sprintf("2024-01-%02d", i+1)}
		attendance[key] = status
	}
	db := store.New(store.Data{Attendance: attendance})
	grades := NewGradeService(db, db, db, db, nil)
	svc := NewAnalyticsService(db, db, db, db, db, grades, nil)

	kpis, err := svc.DashboardKpis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "80.0", kpis.AttendanceRate)
}

func TestGpaTrendChronological(t *testing.T) {
	svc := newAnalyticsService()

	result, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	require.Len(t, result.GpaTrend, 2)
	// Fall 2023 precedes Spring 2024 chronologically even though a plain
	// string sort would reverse them.
	assert.Equal(t, "Fall 2023", result.GpaTrend[0].Semester)
	assert.Equal(t, "Spring 2024", result.GpaTrend[1].Semester)
	// Fall: (67 + 53) / 14 credits.
	assert.InDelta(t, 8.57, result.GpaTrend[0].AvgSgpa, 1e-9)
	assert.InDelta(t, 0.0, result.GpaTrend[1].AvgSgpa, 1e-9)
}

func TestGradeDistributionCountsRows(t *testing.T) {
	svc := newAnalyticsService()

	result, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	want := []dto.GradeCount{
		{Letter: models.GradeA, Count: 2},
		{Letter: models.GradeB, Count: 1},
		{Letter: models.GradeC, Count: 1},
		{Letter: models.GradeD, Count: 1},
		{Letter: models.GradeF, Count: 1},
	}
	assert.Equal(t, want, result.GradeDistribution)
}

func TestAttendanceSummaryCounts(t *testing.T) {
	svc := newAnalyticsService()

	result, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	want := []dto.AttendanceCount{
		{Status: models.AttendancePresent, Count: 2},
		{Status: models.AttendanceAbsent, Count: 1},
		{Status: models.AttendanceLate, Count: 1},
	}
	assert.Equal(t, want, result.AttendanceSummary)
}
