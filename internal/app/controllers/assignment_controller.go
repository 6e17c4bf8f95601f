package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/services"
	"github.com/melisd/campushub/internal/middleware"
	"github.com/rs/zerolog"
)

// AssignmentController handles assignment endpoints
type AssignmentController struct {
	assignmentService *services.AssignmentService
	logger            zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService, logger zerolog.Logger) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// CreateAssignment registers a new assignment
// @Summary Create assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} dto.APIResponse{data=models.Assignment} "Assignment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assignment, err := c.assignmentService.CreateAssignment(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create assignment")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("assignmentID", assignment.ID).Int64("createdBy", userID).Msg("Assignment created")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(assignment))
}

// GetAllAssignments lists all assignments
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment} "Assignments"
// @Router /assignments [get]
func (c *AssignmentController) GetAllAssignments(ctx *gin.Context) {
	assignments, err := c.assignmentService.GetAllAssignments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignments))
}

// GetAssignmentByID retrieves an assignment
// @Summary Get assignment by ID
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [get]
func (c *AssignmentController) GetAssignmentByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	assignment, err := c.assignmentService.GetAssignmentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// UpdateAssignment applies a partial update to an assignment
// @Summary Update assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Updated assignment"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [put]
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assignment, err := c.assignmentService.UpdateAssignment(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignment))
}

// DeleteAssignment removes an assignment and its submissions
// @Summary Delete assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse "Assignment deleted"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.assignmentService.DeleteAssignment(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("assignmentID", id).Msg("Assignment deleted")

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Assignment deleted successfully"))
}
