package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/services"
	"github.com/melisd/campushub/internal/middleware"
	"github.com/rs/zerolog"
)

// ProjectController handles project endpoints
type ProjectController struct {
	projectService *services.ProjectService
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService, logger zerolog.Logger) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger,
	}
}

// CreateProject registers a new project
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Project data"
// @Success 201 {object} dto.APIResponse{data=models.Project} "Project created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or status"
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create project")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("projectID", project.ID).Msg("Project created")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(project))
}

// GetAllProjects lists all projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects"
// @Router /projects [get]
func (c *ProjectController) GetAllProjects(ctx *gin.Context) {
	projects, err := c.projectService.GetAllProjects(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects))
}

// GetProjectByID retrieves a project
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (c *ProjectController) GetProjectByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	project, err := c.projectService.GetProjectByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// UpdateProject applies a partial update to a project
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Updated project"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// DeleteProject removes a project
// @Summary Delete project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse "Project deleted"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.projectService.DeleteProject(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("projectID", id).Msg("Project deleted")

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Project deleted successfully"))
}
