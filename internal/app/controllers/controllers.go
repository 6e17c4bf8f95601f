package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/services"
	"github.com/rs/zerolog"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController       *AuthController
	UserController       *UserController
	DocumentController   *DocumentController
	StudentController    *StudentController
	ProjectController    *ProjectController
	AssignmentController *AssignmentController
	SubmissionController *SubmissionController
	EventController      *EventController
}

// NewControllers initializes all controllers over the given services
func NewControllers(svcs *services.Services, logger zerolog.Logger) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svcs.AuthService, logger),
		UserController:       NewUserController(svcs.UserService, logger),
		DocumentController:   NewDocumentController(svcs.DocumentService, logger),
		StudentController:    NewStudentController(svcs.StudentService, logger),
		ProjectController:    NewProjectController(svcs.ProjectService, logger),
		AssignmentController: NewAssignmentController(svcs.AssignmentService, logger),
		SubmissionController: NewSubmissionController(svcs.SubmissionService, logger),
		EventController:      NewEventController(svcs.EventService, logger),
	}
}

// parseIDParam reads the :id path parameter. On failure it writes the 400
// response itself and returns a non-nil error so the handler can bail out.
func parseIDParam(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID parameter")
		errorDetail = errorDetail.WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		if err == nil {
			err = strconv.ErrRange
		}
		return 0, err
	}
	return id, nil
}

// requireUserID reads the authenticated caller's ID set by the JWT
// middleware, writing the 401 response itself when it is missing.
func requireUserID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	userID, ok := value.(int64)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	return userID, true
}
