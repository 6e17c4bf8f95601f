package services

import (
	"github.com/melisd/campushub/internal/app/repositories"
	"github.com/melisd/campushub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	UserService       *UserService
	DocumentService   *DocumentService
	StudentService    *StudentService
	ProjectService    *ProjectService
	AssignmentService *AssignmentService
	SubmissionService *SubmissionService
	EventService      *EventService
}

// NewServices initializes all services over the given repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	hasher *auth.PasswordHasher,
	minPasswordLength int,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService, hasher, minPasswordLength, logger),
		UserService:       NewUserService(repos.UserRepository),
		DocumentService:   NewDocumentService(repos.DocumentRepository),
		StudentService:    NewStudentService(repos.StudentRepository),
		ProjectService:    NewProjectService(repos.ProjectRepository),
		AssignmentService: NewAssignmentService(repos.AssignmentRepository),
		SubmissionService: NewSubmissionService(repos.SubmissionRepository, repos.AssignmentRepository),
		EventService:      NewEventService(repos.EventRepository),
	}
}
