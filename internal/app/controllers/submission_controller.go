package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/services"
	"github.com/melisd/campushub/internal/middleware"
	"github.com/rs/zerolog"
)

// SubmissionController handles submission endpoints
type SubmissionController struct {
	submissionService *services.SubmissionService
	logger            zerolog.Logger
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService *services.SubmissionService, logger zerolog.Logger) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		logger:            logger,
	}
}

// CreateSubmission records a submission against an assignment
// @Summary Create submission
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubmissionRequest true "Submission data"
// @Success 201 {object} dto.APIResponse{data=models.Submission} "Submission created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /submissions [post]
func (c *SubmissionController) CreateSubmission(ctx *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	submission, err := c.submissionService.CreateSubmission(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("assignmentID", req.AssignmentID).Msg("Failed to create submission")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("submissionID", submission.ID).Int64("assignmentID", submission.AssignmentID).Msg("Submission created")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(submission))
}

// GetAllSubmissions lists submissions, optionally filtered by assignment
// @Summary List submissions
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param assignmentId query int false "Filter by assignment ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Submission} "Submissions"
// @Router /submissions [get]
func (c *SubmissionController) GetAllSubmissions(ctx *gin.Context) {
	var assignmentID *int64
	if raw := ctx.Query("assignmentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignmentId parameter")
			errorDetail = errorDetail.WithField("assignmentId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		assignmentID = &id
	}

	submissions, err := c.submissionService.GetAllSubmissions(ctx.Request.Context(), assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submissions))
}

// GetSubmissionByID retrieves a submission
// @Summary Get submission by ID
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Submission"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id} [get]
func (c *SubmissionController) GetSubmissionByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	submission, err := c.submissionService.GetSubmissionByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}

// GradeSubmission updates the grading fields of a submission
// @Summary Grade submission
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body dto.GradeSubmissionRequest true "Grading data"
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Graded submission"
// @Failure 400 {object} dto.ErrorResponse "Marks exceed assignment total"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id} [put]
func (c *SubmissionController) GradeSubmission(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	submission, err := c.submissionService.GradeSubmission(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("submissionID", id).Msg("Submission graded")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}

// DeleteSubmission removes a submission
// @Summary Delete submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.APIResponse "Submission deleted"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id} [delete]
func (c *SubmissionController) DeleteSubmission(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.submissionService.DeleteSubmission(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("submissionID", id).Msg("Submission deleted")

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Submission deleted successfully"))
}
