package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melisd/campushub/internal/app/controllers"
	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/middleware"
)

// SetupRouter configures all application routes.
//
// Write access follows per-resource role allow-lists; reads are open to
// every authenticated user, and deletes are admin-only across the board.
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.RateLimiter,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", loginLimiter.Middleware(), ctrls.AuthController.Register)
		auth.POST("/login", loginLimiter.Middleware(), ctrls.AuthController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Own-profile routes
		authenticated.GET("/auth/me", ctrls.AuthController.Me)
		authenticated.PUT("/auth/profile", ctrls.AuthController.UpdateProfile)
		authenticated.PUT("/auth/change-password", ctrls.AuthController.ChangePassword)

		// User administration
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RolesRequired(models.RoleAdmin, models.RoleHeadmistress))
		{
			users.GET("", ctrls.UserController.GetAllUsers)
			users.GET("/:id", ctrls.UserController.GetUserByID)
		}

		documents := authenticated.Group("/documents")
		{
			documents.GET("", ctrls.DocumentController.GetAllDocuments)
			documents.GET("/:id", ctrls.DocumentController.GetDocumentByID)

			documentWriters := authMiddleware.RolesRequired(models.RoleTeacher, models.RoleAdmin, models.RoleHeadmistress)
			documents.POST("", documentWriters, ctrls.DocumentController.CreateDocument)
			documents.PUT("/:id", documentWriters, ctrls.DocumentController.UpdateDocument)
			documents.DELETE("/:id", authMiddleware.RolesRequired(models.RoleAdmin), ctrls.DocumentController.DeleteDocument)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", ctrls.StudentController.GetAllStudents)
			students.GET("/:id", ctrls.StudentController.GetStudentByID)

			studentWriters := authMiddleware.RolesRequired(models.RoleTeacher, models.RoleAdmin)
			students.POST("", studentWriters, ctrls.StudentController.CreateStudent)
			students.PUT("/:id", studentWriters, ctrls.StudentController.UpdateStudent)
			students.DELETE("/:id", authMiddleware.RolesRequired(models.RoleAdmin), ctrls.StudentController.DeleteStudent)
		}

		projects := authenticated.Group("/projects")
		{
			projects.GET("", ctrls.ProjectController.GetAllProjects)
			projects.GET("/:id", ctrls.ProjectController.GetProjectByID)

			// Students may register their own projects, but only staff may
			// rework or remove them afterwards.
			projects.POST("",
				authMiddleware.RolesRequired(models.RoleStudent, models.RoleTeacher, models.RoleAdmin),
				ctrls.ProjectController.CreateProject)
			projects.PUT("/:id",
				authMiddleware.RolesRequired(models.RoleTeacher, models.RoleAdmin),
				ctrls.ProjectController.UpdateProject)
			projects.DELETE("/:id", authMiddleware.RolesRequired(models.RoleAdmin), ctrls.ProjectController.DeleteProject)
		}

		assignments := authenticated.Group("/assignments")
		{
			assignments.GET("", ctrls.AssignmentController.GetAllAssignments)
			assignments.GET("/:id", ctrls.AssignmentController.GetAssignmentByID)

			assignmentWriters := authMiddleware.RolesRequired(models.RoleTeacher, models.RoleAdmin, models.RoleHeadmistress)
			assignments.POST("", assignmentWriters, ctrls.AssignmentController.CreateAssignment)
			assignments.PUT("/:id", assignmentWriters, ctrls.AssignmentController.UpdateAssignment)
			assignments.DELETE("/:id", authMiddleware.RolesRequired(models.RoleAdmin), ctrls.AssignmentController.DeleteAssignment)
		}

		submissions := authenticated.Group("/submissions")
		{
			submissions.GET("", ctrls.SubmissionController.GetAllSubmissions)
			submissions.GET("/:id", ctrls.SubmissionController.GetSubmissionByID)

			submissions.POST("",
				authMiddleware.RolesRequired(models.RoleStudent, models.RoleTeacher),
				ctrls.SubmissionController.CreateSubmission)
			submissions.PUT("/:id",
				authMiddleware.RolesRequired(models.RoleTeacher, models.RoleAdmin),
				ctrls.SubmissionController.GradeSubmission)
			submissions.DELETE("/:id", authMiddleware.RolesRequired(models.RoleAdmin), ctrls.SubmissionController.DeleteSubmission)
		}

		events := authenticated.Group("/events")
		{
			events.GET("", ctrls.EventController.GetAllEvents)
			events.GET("/:id", ctrls.EventController.GetEventByID)

			eventWriters := authMiddleware.RolesRequired(models.RoleAdmin, models.RoleHeadmistress, models.RolePrincipal)
			events.POST("", eventWriters, ctrls.EventController.CreateEvent)
			events.PUT("/:id", eventWriters, ctrls.EventController.UpdateEvent)
			events.DELETE("/:id", authMiddleware.RolesRequired(models.RoleAdmin), ctrls.EventController.DeleteEvent)
		}
	}
}
