package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-portal-api/internal/service"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
	"github.com/noah-isme/uni-portal-api/pkg/response"
)

// CourseHandler exposes catalogue endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List returns catalogue entries, optionally filtered by enrolled student,
// instructing faculty or department.
func (h *CourseHandler) List(c *gin.Context) {
	var filter service.CourseFilter
	filter.StudentID = c.Query("studentId")
	filter.Department = c.Query("department")
	if raw := c.Query("facultyId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "facultyId must be numeric"))
			return
		}
		filter.FacultyID = id
	}

	courses, err := h.courses.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// Create adds a catalogue entry.
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	created, err := h.courses.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Delete removes a course along with its enrollments, assessments and
// attendance.
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courses.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
