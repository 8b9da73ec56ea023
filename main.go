package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}
	if os.Getenv("ADMIN_PASSWORD") == "" && os.Getenv("ADMIN_PASSWORD_HASH") == "" && os.Getenv("GO_ENV") != "test" {
		log.Fatal("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	// Repositories
	projectsRepo := repository.GetProjectsRepo(utils.MongoClient)
	blogsRepo := repository.GetBlogsRepo(utils.MongoClient)
	blogStatsRepo := repository.GetBlogStatsRepo(utils.MongoClient)
	commentsRepo := repository.GetCommentsRepo(utils.MongoClient)
	skillsRepo := repository.GetSkillsRepo(utils.MongoClient)
	experienceRepo := repository.GetExperienceRepo(utils.MongoClient)
	messagesRepo := repository.GetMessagesRepo(utils.MongoClient)
	notificationsRepo := repository.GetNotificationsRepo(utils.MongoClient)
	toolsRepo := repository.GetToolsRepo(utils.MongoClient)
	achievementsRepo := repository.GetAchievementsRepo(utils.MongoClient)
	settingsRepo := repository.GetSettingsRepo(utils.MongoClient)
	statsRepo := repository.GetStatsRepo(utils.MongoClient)
	hiringRepo := repository.GetHiringRepo(utils.MongoClient)
	outreachCompaniesRepo := repository.GetOutreachCompaniesRepo(utils.MongoClient)
	outreachContactsRepo := repository.GetOutreachContactsRepo(utils.MongoClient)
	outreachEmailsRepo := repository.GetOutreachEmailsRepo(utils.MongoClient)
	outreachTemplatesRepo := repository.GetOutreachTemplatesRepo(utils.MongoClient)
	outreachDraftsRepo := repository.GetOutreachDraftsRepo(utils.MongoClient)

	// Services
	projectsService := &usecase.ProjectsService{ProjectsRepo: projectsRepo}
	blogsService := &usecase.BlogsService{
		BlogsRepo:         blogsRepo,
		BlogStatsRepo:     blogStatsRepo,
		CommentsRepo:      commentsRepo,
		NotificationsRepo: notificationsRepo,
	}
	messagesService := &usecase.MessagesService{
		MessagesRepo:      messagesRepo,
		NotificationsRepo: notificationsRepo,
	}
	outreachService := &usecase.OutreachService{
		CompaniesRepo:     outreachCompaniesRepo,
		ContactsRepo:      outreachContactsRepo,
		EmailsRepo:        outreachEmailsRepo,
		TemplatesRepo:     outreachTemplatesRepo,
		SettingsRepo:      settingsRepo,
		NotificationsRepo: notificationsRepo,
	}
	dashboardService := &usecase.DashboardService{
		ProjectsRepo:      projectsRepo,
		BlogsRepo:         blogsRepo,
		SkillsRepo:        skillsRepo,
		MessagesRepo:      messagesRepo,
		NotificationsRepo: notificationsRepo,
	}

	aiClient, err := services.NewAIClient()
	if err != nil {
		log.Printf("AI drafting disabled: %v", err)
	}
	draftingService := &usecase.DraftingService{
		AI:             aiClient,
		CompaniesRepo:  outreachCompaniesRepo,
		ContactsRepo:   outreachContactsRepo,
		EmailsRepo:     outreachEmailsRepo,
		DraftsRepo:     outreachDraftsRepo,
		ProjectsRepo:   projectsRepo,
		SkillsRepo:     skillsRepo,
		ExperienceRepo: experienceRepo,
		SettingsRepo:   settingsRepo,
	}

	hiringLimiter := services.NewRateLimiter("hiring",
		utils.GetEnvAsInt("HIRING_RATE_LIMIT", 5),
		utils.GetEnvAsDuration("HIRING_RATE_WINDOW", time.Hour))
	cronSecret := os.Getenv("CRON_SECRET")

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/api/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", handler.LoginHandler)
			auth.POST("/logout", handler.LogoutHandler)
			auth.GET("/status", handler.AuthStatusHandler)
		}

		public.GET("/projects", func(c *gin.Context) {
			handler.GetPublicProjectsHandler(c, projectsService)
		})
		public.GET("/projects/:id", func(c *gin.Context) {
			handler.GetProjectHandler(c, projectsService)
		})

		blogs := public.Group("/blogs")
		{
			blogs.GET("", func(c *gin.Context) {
				handler.GetPublicBlogsHandler(c, blogsService)
			})
			blogs.GET("/:slug", func(c *gin.Context) {
				handler.GetBlogBySlugHandler(c, blogsService)
			})
			blogs.GET("/:slug/stats", func(c *gin.Context) {
				handler.GetPublicBlogStatsHandler(c, blogsService)
			})
			blogs.POST("/:slug/views", func(c *gin.Context) {
				handler.ViewBlogHandler(c, blogsService)
			})
			blogs.GET("/:slug/like", func(c *gin.Context) {
				handler.GetBlogLikeInfoHandler(c, blogsService)
			})
			blogs.POST("/:slug/like", func(c *gin.Context) {
				handler.LikeBlogHandler(c, blogsService)
			})
			blogs.POST("/:slug/share", func(c *gin.Context) {
				handler.ShareBlogHandler(c, blogsService)
			})
			blogs.GET("/:slug/comments", func(c *gin.Context) {
				handler.GetBlogCommentsHandler(c, blogsService)
			})
			blogs.POST("/:slug/comments", func(c *gin.Context) {
				handler.AddBlogCommentHandler(c, blogsService)
			})
		}

		public.GET("/skills", func(c *gin.Context) {
			handler.GetSkillsHandler(c, skillsRepo)
		})
		public.GET("/experience", func(c *gin.Context) {
			handler.GetExperienceHandler(c, experienceRepo, true)
		})
		public.GET("/tools", func(c *gin.Context) {
			handler.GetToolsHandler(c, toolsRepo)
		})
		public.GET("/achievements", func(c *gin.Context) {
			handler.GetAchievementsHandler(c, achievementsRepo)
		})
		public.GET("/settings", func(c *gin.Context) {
			handler.GetPublicSettingsHandler(c, settingsRepo)
		})
		public.GET("/stats", func(c *gin.Context) {
			handler.GetStatsHandler(c, statsRepo)
		})

		public.POST("/messages", func(c *gin.Context) {
			handler.SubmitMessageHandler(c, messagesService)
		})
		public.POST("/hiring", func(c *gin.Context) {
			handler.SubmitHiringInquiryHandler(c, hiringRepo, notificationsRepo, hiringLimiter)
		})

		// Hit by the external scheduler, guarded by the shared secret.
		public.GET("/outreach/cron/followups", func(c *gin.Context) {
			handler.RunFollowUpCronHandler(c, outreachService, cronSecret)
		})
	}

	// Dashboard routes (authentication required)
	dashboard := router.Group("/api/dashboard")
	dashboard.Use(middleware.AdminAuthMiddleware())
	{
		dashboard.GET("/stats", func(c *gin.Context) {
			handler.GetDashboardStatsHandler(c, dashboardService)
		})

		projects := dashboard.Group("/projects")
		{
			projects.GET("", func(c *gin.Context) {
				handler.GetProjectsHandler(c, projectsService)
			})
			projects.GET("/stats", func(c *gin.Context) {
				handler.GetProjectStatsHandler(c, projectsService)
			})
			projects.GET("/:id", func(c *gin.Context) {
				handler.GetProjectHandler(c, projectsService)
			})
			projects.POST("", func(c *gin.Context) {
				handler.CreateProjectHandler(c, projectsService)
			})
			projects.PATCH("/bulk", func(c *gin.Context) {
				handler.BulkUpdateProjectsHandler(c, projectsService)
			})
			projects.PUT("/reorder", func(c *gin.Context) {
				handler.ReorderProjectsHandler(c, projectsService)
			})
			projects.PUT("/:id", func(c *gin.Context) {
				handler.UpdateProjectHandler(c, projectsService)
			})
			projects.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteProjectHandler(c, projectsService)
			})
		}

		blogs := dashboard.Group("/blogs")
		{
			blogs.GET("", func(c *gin.Context) {
				handler.GetBlogsHandler(c, blogsService)
			})
			blogs.GET("/overview", func(c *gin.Context) {
				handler.GetBlogOverviewHandler(c, blogsService)
			})
			blogs.GET("/:id", func(c *gin.Context) {
				handler.GetBlogHandler(c, blogsService)
			})
			blogs.GET("/:id/stats", func(c *gin.Context) {
				handler.GetBlogStatsHandler(c, blogsService)
			})
			blogs.POST("", func(c *gin.Context) {
				handler.CreateBlogHandler(c, blogsService)
			})
			blogs.PUT("/:id", func(c *gin.Context) {
				handler.UpdateBlogHandler(c, blogsService)
			})
			blogs.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteBlogHandler(c, blogsService)
			})
		}

		comments := dashboard.Group("/comments")
		{
			comments.GET("", func(c *gin.Context) {
				handler.GetCommentsHandler(c, blogsService)
			})
			comments.PUT("/:id/status", func(c *gin.Context) {
				handler.SetCommentStatusHandler(c, blogsService)
			})
			comments.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteCommentHandler(c, blogsService)
			})
		}

		skills := dashboard.Group("/skills")
		{
			skills.GET("", func(c *gin.Context) {
				handler.GetSkillsHandler(c, skillsRepo)
			})
			skills.GET("/categories", func(c *gin.Context) {
				handler.GetSkillCategoriesHandler(c, skillsRepo)
			})
			skills.POST("", func(c *gin.Context) {
				handler.CreateSkillHandler(c, skillsRepo)
			})
			skills.PUT("/reorder", func(c *gin.Context) {
				handler.ReorderSkillsHandler(c, skillsRepo)
			})
			skills.PUT("/:id", func(c *gin.Context) {
				handler.UpdateSkillHandler(c, skillsRepo)
			})
			skills.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteSkillHandler(c, skillsRepo)
			})
		}

		experience := dashboard.Group("/experience")
		{
			experience.GET("", func(c *gin.Context) {
				handler.GetExperienceHandler(c, experienceRepo, false)
			})
			experience.POST("/work", func(c *gin.Context) {
				handler.CreateWorkExperienceHandler(c, experienceRepo)
			})
			experience.PUT("/work/:id", func(c *gin.Context) {
				handler.UpdateWorkExperienceHandler(c, experienceRepo)
			})
			experience.DELETE("/work/:id", func(c *gin.Context) {
				handler.DeleteWorkExperienceHandler(c, experienceRepo)
			})
			experience.POST("/education", func(c *gin.Context) {
				handler.CreateEducationHandler(c, experienceRepo)
			})
			experience.PUT("/education/:id", func(c *gin.Context) {
				handler.UpdateEducationHandler(c, experienceRepo)
			})
			experience.DELETE("/education/:id", func(c *gin.Context) {
				handler.DeleteEducationHandler(c, experienceRepo)
			})
		}

		messages := dashboard.Group("/messages")
		{
			messages.GET("", func(c *gin.Context) {
				handler.GetMessagesHandler(c, messagesService)
			})
			messages.GET("/stats", func(c *gin.Context) {
				handler.GetMessageStatsHandler(c, messagesService)
			})
			messages.GET("/:id", func(c *gin.Context) {
				handler.GetMessageHandler(c, messagesService)
			})
			messages.PUT("/:id/status", func(c *gin.Context) {
				handler.SetMessageStatusHandler(c, messagesService)
			})
			messages.POST("/:id/reply", func(c *gin.Context) {
				handler.ReplyMessageHandler(c, messagesService)
			})
			messages.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteMessageHandler(c, messagesService)
			})
		}

		notifications := dashboard.Group("/notifications")
		{
			notifications.GET("", func(c *gin.Context) {
				handler.GetNotificationsHandler(c, notificationsRepo)
			})
			notifications.POST("", func(c *gin.Context) {
				handler.CreateNotificationHandler(c, notificationsRepo)
			})
			notifications.POST("/bulk", func(c *gin.Context) {
				handler.BulkNotificationActionHandler(c, notificationsRepo)
			})
			notifications.PATCH("/:id", func(c *gin.Context) {
				handler.SetNotificationReadHandler(c, notificationsRepo)
			})
			notifications.PUT("/:id/read", func(c *gin.Context) {
				handler.MarkNotificationReadHandler(c, notificationsRepo)
			})
			notifications.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNotificationHandler(c, notificationsRepo)
			})
		}

		tools := dashboard.Group("/tools")
		{
			tools.GET("", func(c *gin.Context) {
				handler.GetToolsHandler(c, toolsRepo)
			})
			tools.POST("", func(c *gin.Context) {
				handler.CreateToolHandler(c, toolsRepo)
			})
			tools.PUT("/:id", func(c *gin.Context) {
				handler.UpdateToolHandler(c, toolsRepo)
			})
			tools.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteToolHandler(c, toolsRepo)
			})
		}

		achievements := dashboard.Group("/achievements")
		{
			achievements.GET("", func(c *gin.Context) {
				handler.GetAchievementsHandler(c, achievementsRepo)
			})
			achievements.POST("", func(c *gin.Context) {
				handler.CreateAchievementHandler(c, achievementsRepo)
			})
			achievements.PUT("/:id", func(c *gin.Context) {
				handler.UpdateAchievementHandler(c, achievementsRepo)
			})
			achievements.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteAchievementHandler(c, achievementsRepo)
			})
		}

		dashboard.GET("/settings", func(c *gin.Context) {
			handler.GetSettingsHandler(c, settingsRepo)
		})
		dashboard.PUT("/settings", func(c *gin.Context) {
			handler.UpdateSettingsHandler(c, settingsRepo)
		})

		stats := dashboard.Group("/site-stats")
		{
			stats.GET("", func(c *gin.Context) {
				handler.GetStatsHandler(c, statsRepo)
			})
			stats.POST("", func(c *gin.Context) {
				handler.CreateStatsHandler(c, statsRepo)
			})
			stats.PUT("", func(c *gin.Context) {
				handler.UpdateStatsHandler(c, statsRepo)
			})
		}

		hiring := dashboard.Group("/hiring")
		{
			hiring.GET("", func(c *gin.Context) {
				handler.GetHiringInquiriesHandler(c, hiringRepo)
			})
			hiring.GET("/stats", func(c *gin.Context) {
				handler.GetHiringStatsHandler(c, hiringRepo)
			})
			hiring.GET("/:id", func(c *gin.Context) {
				handler.GetHiringInquiryHandler(c, hiringRepo)
			})
			hiring.PUT("/:id/status", func(c *gin.Context) {
				handler.SetHiringInquiryStatusHandler(c, hiringRepo)
			})
			hiring.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteHiringInquiryHandler(c, hiringRepo)
			})
		}

		outreach := dashboard.Group("/outreach")
		{
			outreach.GET("/stats", func(c *gin.Context) {
				handler.GetOutreachStatsHandler(c, outreachService)
			})

			companies := outreach.Group("/companies")
			{
				companies.GET("", func(c *gin.Context) {
					handler.GetOutreachCompaniesHandler(c, outreachService)
				})
				companies.POST("", func(c *gin.Context) {
					handler.CreateOutreachCompanyHandler(c, outreachService)
				})
				companies.POST("/import", func(c *gin.Context) {
					handler.ImportOutreachCompaniesHandler(c, outreachService)
				})
				companies.GET("/:id", func(c *gin.Context) {
					handler.GetOutreachCompanyHandler(c, outreachService)
				})
				companies.PUT("/:id", func(c *gin.Context) {
					handler.UpdateOutreachCompanyHandler(c, outreachService)
				})
				companies.PUT("/:id/star", func(c *gin.Context) {
					handler.StarOutreachCompanyHandler(c, outreachService)
				})
				companies.PUT("/:id/archive", func(c *gin.Context) {
					handler.ArchiveOutreachCompanyHandler(c, outreachService)
				})
				companies.DELETE("/:id", func(c *gin.Context) {
					handler.DeleteOutreachCompanyHandler(c, outreachService)
				})
			}

			contacts := outreach.Group("/contacts")
			{
				contacts.GET("", func(c *gin.Context) {
					handler.GetOutreachContactsHandler(c, outreachService)
				})
				contacts.POST("", func(c *gin.Context) {
					handler.CreateOutreachContactHandler(c, outreachService)
				})
				contacts.POST("/import", func(c *gin.Context) {
					handler.ImportOutreachContactsHandler(c, outreachService)
				})
				contacts.GET("/:id", func(c *gin.Context) {
					handler.GetOutreachContactHandler(c, outreachService)
				})
				contacts.PUT("/:id", func(c *gin.Context) {
					handler.UpdateOutreachContactHandler(c, outreachService)
				})
				contacts.PUT("/:id/star", func(c *gin.Context) {
					handler.StarOutreachContactHandler(c, outreachService)
				})
				contacts.DELETE("/:id", func(c *gin.Context) {
					handler.DeleteOutreachContactHandler(c, outreachService)
				})
			}

			emails := outreach.Group("/emails")
			{
				emails.GET("", func(c *gin.Context) {
					handler.GetOutreachEmailsHandler(c, outreachService)
				})
				emails.POST("", func(c *gin.Context) {
					handler.LogOutreachEmailHandler(c, outreachService)
				})
				emails.PUT("/:id/replied", func(c *gin.Context) {
					handler.MarkOutreachEmailRepliedHandler(c, outreachService)
				})
				emails.PUT("/:id/close", func(c *gin.Context) {
					handler.CloseOutreachEmailHandler(c, outreachService)
				})
				emails.DELETE("/:id", func(c *gin.Context) {
					handler.DeleteOutreachEmailHandler(c, outreachService)
				})
			}

			templates := outreach.Group("/templates")
			{
				templates.GET("", func(c *gin.Context) {
					handler.GetOutreachTemplatesHandler(c, outreachService)
				})
				templates.POST("", func(c *gin.Context) {
					handler.CreateOutreachTemplateHandler(c, outreachService)
				})
				templates.PUT("/:id", func(c *gin.Context) {
					handler.UpdateOutreachTemplateHandler(c, outreachService)
				})
				templates.DELETE("/:id", func(c *gin.Context) {
					handler.DeleteOutreachTemplateHandler(c, outreachService)
				})
			}

			ai := outreach.Group("/ai")
			{
				ai.POST("/draft", func(c *gin.Context) {
					handler.GenerateDraftHandler(c, draftingService)
				})
				ai.POST("/improve", func(c *gin.Context) {
					handler.ImproveDraftHandler(c, draftingService)
				})
				ai.POST("/follow-up", func(c *gin.Context) {
					handler.FollowUpDraftHandler(c, draftingService)
				})
				ai.GET("/drafts", func(c *gin.Context) {
					handler.GetDraftsHandler(c, draftingService)
				})
				ai.DELETE("/drafts/:id", func(c *gin.Context) {
					handler.DeleteDraftHandler(c, draftingService)
				})
			}
		}
	}

	return router
}

func main() {
	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
