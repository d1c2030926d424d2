package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-portal-api/internal/service"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
	"github.com/noah-isme/uni-portal-api/pkg/response"
)

// GradeHandler exposes GPA and mark sheet endpoints.
type GradeHandler struct {
	grades  *service.GradeService
	exports *service.ExportService
}

// NewGradeHandler constructs GradeHandler.
func NewGradeHandler(grades *service.GradeService, exports *service.ExportService) *GradeHandler {
	return &GradeHandler{grades: grades, exports: exports}
}

// Semesters lists the semesters in which the student has scored work, most
// recent first.
func (h *GradeHandler) Semesters(c *gin.Context) {
	semesters := h.grades.Semesters(c.Request.Context(), c.Param("id"))
	response.JSON(c, http.StatusOK, semesters, nil)
}

// SemesterGPA returns the student's SGPA for one semester.
func (h *GradeHandler) SemesterGPA(c *gin.Context) {
	semester := c.Query("semester")
	if semester == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester required"))
		return
	}
	gpa := h.grades.SemesterGPA(c.Request.Context(), c.Param("id"), semester)
	response.JSON(c, http.StatusOK, gpa, nil)
}

// CGPA returns the student's cumulative GPA.
func (h *GradeHandler) CGPA(c *gin.Context) {
	cgpa := h.grades.CGPA(c.Request.Context(), c.Param("id"))
	response.JSON(c, http.StatusOK, gin.H{"cgpa": cgpa}, nil)
}

// MarkSheet returns the (student, semester) mark sheet projection.
func (h *GradeHandler) MarkSheet(c *gin.Context) {
	semester := c.Query("semester")
	if semester == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester required"))
		return
	}
	sheet, err := h.grades.MarkSheet(c.Request.Context(), c.Param("id"), semester)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sheet, nil)
}

// ExportMarkSheet streams the mark sheet as CSV or PDF.
func (h *GradeHandler) ExportMarkSheet(c *gin.Context) {
	semester := c.Query("semester")
	if semester == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "semester required"))
		return
	}
	format := service.ExportFormat(c.DefaultQuery("format", "pdf"))
	file, err := h.exports.MarkSheet(c.Request.Context(), c.Param("id"), semester, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, file)
}
