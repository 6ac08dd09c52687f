package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pragati-coe/facultyhub/internal/app/controllers"
	"github.com/pragati-coe/facultyhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	facultyController *controllers.FacultyController,
	qualificationController *controllers.QualificationController,
	publicationController *controllers.PublicationController,
	statsController *controllers.StatsController,
	exportController *controllers.ExportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", facultyController.GetOwnProfile)
		authenticated.GET("/stats/dashboard", statsController.GetDashboardStats)

		// Account administration. The service layer restricts these to IQAC.
		users := authenticated.Group("/users")
		{
			users.GET("", userController.ListUsers)
			users.GET("/pending", userController.ListPendingUsers)
			users.POST("/:id/approve", userController.ApproveUser)
			users.POST("/:id/reject", userController.RejectUser)
			users.PUT("/:id/role", userController.UpdateUserRole)
			users.DELETE("/:id", userController.DeleteUser)
		}

		// Faculty records with nested qualifications and publications.
		faculty := authenticated.Group("/faculty")
		{
			faculty.GET("", facultyController.ListFaculty)
			faculty.POST("", facultyController.CreateFaculty)
			faculty.GET("/:id", facultyController.GetFaculty)
			faculty.PUT("/:id", facultyController.UpdateFaculty)
			faculty.DELETE("/:id", facultyController.DeleteFaculty)
			faculty.POST("/:id/photo", facultyController.UploadFacultyPhoto)

			faculty.GET("/:id/qualifications", qualificationController.ListQualifications)
			faculty.POST("/:id/qualifications", qualificationController.AddQualification)
			faculty.PUT("/:id/qualifications", qualificationController.ReplaceQualifications)
			faculty.PUT("/:id/qualifications/:qualId", qualificationController.UpdateQualification)
			faculty.DELETE("/:id/qualifications/:qualId", qualificationController.DeleteQualification)

			faculty.GET("/:id/publications", publicationController.GetFacultyPublications)

			faculty.POST("/:id/publications/journals", publicationController.AddJournal)
			faculty.PUT("/:id/publications/journals/:pubId", publicationController.UpdateJournal)
			faculty.DELETE("/:id/publications/journals/:pubId", publicationController.DeleteJournal)

			faculty.POST("/:id/publications/conferences", publicationController.AddConference)
			faculty.PUT("/:id/publications/conferences/:pubId", publicationController.UpdateConference)
			faculty.DELETE("/:id/publications/conferences/:pubId", publicationController.DeleteConference)

			faculty.POST("/:id/publications/book-chapters", publicationController.AddBookChapter)
			faculty.PUT("/:id/publications/book-chapters/:pubId", publicationController.UpdateBookChapter)
			faculty.DELETE("/:id/publications/book-chapters/:pubId", publicationController.DeleteBookChapter)

			faculty.POST("/:id/publications/patents", publicationController.AddPatent)
			faculty.PUT("/:id/publications/patents/:pubId", publicationController.UpdatePatent)
			faculty.DELETE("/:id/publications/patents/:pubId", publicationController.DeletePatent)
		}

		// Campus-wide research output listings (administrative roles only).
		publications := authenticated.Group("/publications")
		{
			publications.GET("/journals", publicationController.ListCampusJournals)
			publications.GET("/conferences", publicationController.ListCampusConferences)
			publications.GET("/book-chapters", publicationController.ListCampusBookChapters)
			publications.GET("/patents", publicationController.ListCampusPatents)
		}

		// Spreadsheet downloads.
		exports := authenticated.Group("/exports")
		{
			exports.GET("/faculty", exportController.ExportFacultyRoster)
			exports.GET("/faculty/:id", exportController.ExportFacultyProfile)
			exports.GET("/faculty/:id/qualifications", exportController.ExportFacultyQualifications)
			exports.GET("/faculty/:id/publications", exportController.ExportFacultyAllPublications)
			exports.GET("/faculty/:id/publications/:kind", exportController.ExportFacultyPublications)
			exports.GET("/publications/:kind", exportController.ExportCampusPublications)
		}
	}
}
