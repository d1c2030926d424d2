package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-portal-api/internal/service"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
	"github.com/noah-isme/uni-portal-api/pkg/response"
)

// AttendanceHandler exposes per-course attendance endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
	exports    *service.ExportService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService, exports *service.ExportService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, exports: exports}
}

// Summary returns attended vs held counts per student in a course.
func (h *AttendanceHandler) Summary(c *gin.Context) {
	summary, err := h.attendance.SummaryByCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Daily returns dated records for a course. A studentId query scopes to one
// student; year and month scope to a calendar month.
func (h *AttendanceHandler) Daily(c *gin.Context) {
	courseID := c.Param("id")
	ctx := c.Request.Context()

	if studentID := c.Query("studentId"); studentID != "" {
		records, err := h.attendance.Daily(ctx, courseID, studentID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, records, nil)
		return
	}

	year, month := 0, 0
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year must be numeric"))
			return
		}
		year = v
	}
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "month must be numeric"))
			return
		}
		month = v
	}

	records, err := h.attendance.DailyByMonth(ctx, courseID, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Update sets one student's status for one class day.
func (h *AttendanceHandler) Update(c *gin.Context) {
	var req service.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.attendance.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ExportSummary streams the course attendance table as CSV or PDF.
func (h *AttendanceHandler) ExportSummary(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	file, err := h.exports.AttendanceSummary(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, file)
}

func serveDownload(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Payload)
}
