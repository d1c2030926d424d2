package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-portal-api/internal/service"
	appErrors "github.com/noah-isme/uni-portal-api/pkg/errors"
	"github.com/noah-isme/uni-portal-api/pkg/response"
)

// AssessmentHandler exposes per-course assessment endpoints.
type AssessmentHandler struct {
	assessments *service.AssessmentService
}

// NewAssessmentHandler constructs AssessmentHandler.
func NewAssessmentHandler(assessments *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// List returns a course's assessments.
func (h *AssessmentHandler) List(c *gin.Context) {
	assessments, err := h.assessments.ListByCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assessments, nil)
}

// Create adds an assessment, seeding an ungraded score row per enrolled
// student.
func (h *AssessmentHandler) Create(c *gin.Context) {
	var req service.AddAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	created, err := h.assessments.Add(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// UpdateScore sets or clears one student's score on an assessment.
func (h *AssessmentHandler) UpdateScore(c *gin.Context) {
	assessmentID, err := strconv.Atoi(c.Param("assessmentId"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "assessment id must be numeric"))
		return
	}
	var req service.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.assessments.UpdateScore(c.Request.Context(), c.Param("id"), assessmentID, req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
