package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	DocumentRepository   *DocumentRepository
	StudentRepository    *StudentRepository
	ProjectRepository    *ProjectRepository
	AssignmentRepository *AssignmentRepository
	SubmissionRepository *SubmissionRepository
	EventRepository      *EventRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		DocumentRepository:   NewDocumentRepository(db),
		StudentRepository:    NewStudentRepository(db),
		ProjectRepository:    NewProjectRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		SubmissionRepository: NewSubmissionRepository(db),
		EventRepository:      NewEventRepository(db),
	}
}
