package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adikale/placementhub/internal/app/controllers"
	"github.com/adikale/placementhub/internal/app/models"
	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	driveController *controllers.DriveController,
	applicationController *controllers.ApplicationController,
	notificationController *controllers.NotificationController,
	skillGapController *controllers.SkillGapController,
	resumeController *controllers.ResumeController,
	connectController *controllers.ConnectController,
	referralController *controllers.ReferralController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Notifications are shared by every role
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.GetFeed)
			notifications.POST("/:id/read", notificationController.MarkRead)
			notifications.PUT("/read", notificationController.MarkAllRead)
			notifications.GET("/unread-count", notificationController.UnreadCount)
		}

		// Drive listing is visible to every authenticated role; management
		// endpoints below are restricted to the placement office
		drives := authenticated.Group("/drives")
		{
			drives.GET("", driveController.GetAllDrives)

			drivesStudentProtected := drives.Group("")
			drivesStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				drivesStudentProtected.POST("/:id/apply", applicationController.Apply)
			}

			drivesTPOProtected := drives.Group("")
			drivesTPOProtected.Use(authMiddleware.RoleRequired(models.RoleTPO))
			{
				drivesTPOProtected.POST("", driveController.CreateDrive)
				drivesTPOProtected.GET("/:id", driveController.GetDriveDetail)
				drivesTPOProtected.POST("/:id/complete", driveController.CompleteDrive)
				drivesTPOProtected.POST("/:id/remind", driveController.RemindEligible)
				drivesTPOProtected.POST("/:id/broadcast", driveController.Broadcast)
				drivesTPOProtected.POST("/:id/schedule", applicationController.ScheduleInterview)
			}
		}

		// Student-only routes
		students := authenticated.Group("")
		students.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			students.GET("/students/me", profileController.GetStudentProfile)
			students.PUT("/students/me", profileController.UpdateStudentProfile)
			students.GET("/students/me/dashboard", profileController.StudentDashboard)

			students.GET("/applications/me", applicationController.MyApplications)
			students.GET("/schedules/me", applicationController.MySchedules)

			students.GET("/skill-gap", skillGapController.Analyze)
			students.GET("/skill-gap/roles", skillGapController.GetRoles)

			students.GET("/resume/quality", resumeController.Quality)
			students.POST("/resume/build", resumeController.Build)
			students.GET("/resume/download", resumeController.Download)

			students.POST("/connect/alumni/:id/mentorship", connectController.RequestMentorship)
			students.GET("/connect/mentorship/me", connectController.MyMentorshipRequests)
			students.POST("/connect/slots/:id/book", connectController.BookSlot)
			students.POST("/referrals/:id/request", referralController.RequestReferral)
		}

		// Alumni-only routes
		alumni := authenticated.Group("")
		alumni.Use(authMiddleware.RoleRequired(models.RoleAlumni))
		{
			alumni.GET("/alumni/me", profileController.GetAlumniProfile)
			alumni.PUT("/alumni/me", profileController.UpdateAlumniProfile)
			alumni.GET("/alumni/me/dashboard", profileController.AlumniDashboard)

			alumni.POST("/connect/mentorship/:id/respond", connectController.RespondMentorship)
			alumni.POST("/connect/slots", connectController.AddSlot)
			alumni.POST("/referrals", referralController.CreatePost)
			alumni.POST("/referral-requests/:id/respond", referralController.Respond)
		}

		// Placement office routes
		tpo := authenticated.Group("")
		tpo.Use(authMiddleware.RoleRequired(models.RoleTPO))
		{
			tpo.PUT("/applications/:id/status", applicationController.UpdateStatus)
			tpo.POST("/eligibility/preview", driveController.EligibleCount)
			tpo.GET("/stats", statsController.PlacementStats)
		}

		// The connect board is shared by students and alumni
		authenticated.GET("/connect", connectController.GetBoard)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
