package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
)

func newExportFixture() *ExportService {
	db := newTestStore()
	grades := NewGradeService(db, db, db, db, nil)
	attendance := NewAttendanceService(db, nil, nil)
	return NewExportService(grades, attendance, nil, nil, nil)
}

func TestExportMarkSheetCSV(t *testing.T) {
	svc := newExportFixture()

	file, err := svc.MarkSheet(context.Background(), "S001", "Fall 2023", FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "marksheet_s001_fall_2023.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	body := string(file.Payload)
	assert.Contains(t, body, "Code,Course,Credits,Score,Grade,Points")
	assert.Contains(t, body, "CS101")
	assert.Contains(t, body, "SGPA: 9.57")
	assert.Contains(t, body, "CGPA: 6.70")
}

func TestExportMarkSheetPDF(t *testing.T) {
	svc := newExportFixture()

	file, err := svc.MarkSheet(context.Background(), "S001", "Fall 2023", FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Payload), "%PDF"))
}

func TestExportMarkSheetUnknownStudent(t *testing.T) {
	svc := newExportFixture()

	_, err := svc.MarkSheet(context.Background(), "S999", "Fall 2023", FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExportAttendanceSummaryCSV(t *testing.T) {
	svc := newExportFixture()

	file, err := svc.AttendanceSummary(context.Background(), "CS101", FormatCSV)
	require.NoError(t, err)

	body := string(file.Payload)
	assert.Contains(t, body, "Student ID,Student Name,Attended,Classes Held,Attendance (%)")
	assert.Contains(t, body, "S001,Alice Carter,2,3,66.7")
	assert.Contains(t, body, "S002,Bob Nguyen,1,1,100.0")
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := newExportFixture()

	_, err := svc.MarkSheet(context.Background(), "S001", "Fall 2023", ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
