package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/uni-portal-api/internal/models"
	"github.com/noah-isme/uni-portal-api/pkg/export"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type markSheetBuilder interface {
	MarkSheet(ctx context.Context, studentID, semester string) (*models.MarkSheet, error)
}

type attendanceSummarizer interface {
	SummaryByCourse(ctx context.Context, courseID string) ([]models.AttendanceSummary, error)
}

// ExportFormat selects the rendered download format.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered download ready to stream.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders mark sheets and attendance summaries as CSV or PDF
// downloads. Everything is built in memory and streamed straight back, no
// intermediate files.
type ExportService struct {
	marksheets markSheetBuilder
	attendance attendanceSummarizer
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(marksheets markSheetBuilder, attendance attendanceSummarizer, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{marksheets: marksheets, attendance: attendance, csv: csv, pdf: pdf, logger: logger}
}

// MarkSheet renders one student's semester mark sheet.
func (s *ExportService) MarkSheet(ctx context.Context, studentID, semester string, format ExportFormat) (*ExportFile, error) {
	sheet, err := s.marksheets.MarkSheet(ctx, studentID, semester)
	if err != nil {
		return nil, err
	}

	dataset := markSheetDataset(sheet)
	title := fmt.Sprintf("Mark Sheet %s %s", sheet.Student.Name, sheet.Semester)
	base := fmt.Sprintf("marksheet_%s_%s", sanitizeFilename(studentID), sanitizeFilename(semester))
	return s.render(dataset, title, base, format)
}

// AttendanceSummary renders the per-student attendance table for a course.
func (s *ExportService) AttendanceSummary(ctx context.Context, courseID string, format ExportFormat) (*ExportFile, error) {
	rows, err := s.attendance.SummaryByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	dataRows := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rate := 0.0
		if row.TotalClassesHeld > 0 {
			rate = float64(row.AttendedClasses) / float64(row.TotalClassesHeld) * 100
		}
		dataRows = append(dataRows, map[string]string{
			"Student ID":     row.StudentID,
			"Student Name":   row.StudentName,
			"Attended":       fmt.Sprintf("%d", row.AttendedClasses),
			"Classes Held":   fmt.Sprintf("%d", row.TotalClassesHeld),
			"Attendance (%)": fmt.Sprintf("%.1f", rate),
		})
	}
	dataset := export.Dataset{
		Headers: []string{"Student ID", "Student Name", "Attended", "Classes Held", "Attendance (%)"},
		Rows:    dataRows,
	}
	title := fmt.Sprintf("Attendance Report %s", courseID)
	base := fmt.Sprintf("attendance_%s", sanitizeFilename(courseID))
	return s.render(dataset, title, base, format)
}

func (s *ExportService) render(dataset export.Dataset, title, base string, format ExportFormat) (*ExportFile, error) {
	switch format {
	case FormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{Filename: base + ".csv", ContentType: "text/csv", Payload: payload}, nil
	case FormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{Filename: base + ".pdf", ContentType: "application/pdf", Payload: payload}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}
}

func markSheetDataset(sheet *models.MarkSheet) export.Dataset {
	rows := make([]map[string]string, 0, len(sheet.Courses))
	for _, course := range sheet.Courses {
		rows = append(rows, map[string]string{
			"Code":    course.Code,
			"Course":  course.Title,
			"Credits": fmt.Sprintf("%d", course.Credits),
			"Score":   fmt.Sprintf("%.1f / %.1f", course.Score, course.MaxScore),
			"Grade":   string(course.Grade.Letter),
			"Points":  fmt.Sprintf("%.1f", course.Grade.Points),
		})
	}
	return export.Dataset{
		Headers: []string{"Code", "Course", "Credits", "Score", "Grade", "Points"},
		Rows:    rows,
		Summary: []string{
			fmt.Sprintf("SGPA: %.2f", sheet.SGPA),
			fmt.Sprintf("CGPA: %.2f", sheet.CGPA),
		},
	}
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		result = result[:100]
	}
	return strings.ToLower(result)
}
