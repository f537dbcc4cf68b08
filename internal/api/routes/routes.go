package routes

import (
	"net/http"

	"taxpro-backend/internal/api/handlers"
	"taxpro-backend/internal/api/middleware"
	"taxpro-backend/internal/app"
	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/config"
	"taxpro-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, clients *app.Clients, services *app.Services) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(clients.Metrics))

	authMiddleware := auth.NewAuthMiddleware(services.Auth).WithAccountCheck(services.Profiles)
	staffOnly := authMiddleware.RequireRole(models.RoleAdmin, models.RoleTaxPreparer)
	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, clients.Cache)
	profileHandler := handlers.NewProfileHandler(services.Profiles)
	referralHandler := handlers.NewReferralHandler(services.Referrals, handlers.ReferralCookie{
		Name:        cfg.ReferralCookieName,
		MaxAge:      cfg.ReferralCookieMaxAge(),
		LandingPath: cfg.ReferralLandingPath,
		Secure:      cfg.IsProduction(),
	})
	leadHandler := handlers.NewLeadHandler(services.Leads, cfg.ReferralCookieName)
	crmHandler := handlers.NewCRMHandler(services.CRM)
	commissionHandler := handlers.NewCommissionHandler(services.Commissions)
	webhookHandler := handlers.NewWebhookHandler(services.Payments)
	ticketHandler := handlers.NewTicketHandler(services.Tickets)
	seoHandler := handlers.NewSeoHandler(services.Seo)
	campaignHandler := handlers.NewCampaignHandler(services.Campaigns)
	restrictionHandler := handlers.NewPageRestrictionHandler(services.PageRestrictions)

	// Health, metrics and docs
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(clients.Metrics.Registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Generated hero images
	router.Static("/media", clients.Media.Dir())

	// Referral links
	router.GET("/r/:code", referralHandler.FollowLink)

	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", profileHandler.Register)
			authRoutes.POST("/login", profileHandler.Login)
		}

		// Public endpoints
		v1.POST("/leads", leadHandler.CreateLead)
		v1.POST("/crm/unsubscribe", crmHandler.Unsubscribe)
		v1.GET("/pages/:slug", seoHandler.GetPublishedPage)
		v1.GET("/page-restrictions/check", authMiddleware.OptionalAuth(), restrictionHandler.CheckAccess)
		v1.POST("/webhooks/payments", webhookHandler.HandlePaymentWebhook)

		protected := v1.Group("", authMiddleware.RequireAuth())
		{
			profile := protected.Group("/profile")
			{
				profile.GET("", profileHandler.GetMe)
				profile.PUT("", profileHandler.UpdateMe)
				profile.PUT("/vanity-code", profileHandler.SetVanityCode)
			}

			referrals := protected.Group("/referrals")
			{
				referrals.POST("", referralHandler.SubmitReferral)
				referrals.GET("", referralHandler.ListMyReferrals)
				referrals.GET("/stats", referralHandler.GetStats)
			}

			leads := protected.Group("/leads")
			{
				leads.GET("", leadHandler.ListLeads)
				leads.GET("/:id", leadHandler.GetLead)
				leads.PUT("/:id/status", staffOnly, leadHandler.UpdateLeadStatus)
				leads.PUT("/:id/assignee", adminOnly, leadHandler.AssignLead)
			}

			commissions := protected.Group("/commissions")
			{
				commissions.GET("", commissionHandler.ListCommissions)
				commissions.GET("/summary", commissionHandler.GetSummary)
				commissions.GET("/export", adminOnly, commissionHandler.ExportCommissions)
				commissions.GET("/:id", commissionHandler.GetCommission)
				commissions.PUT("/:id/status", adminOnly, commissionHandler.UpdateCommissionStatus)
			}

			tickets := protected.Group("/tickets")
			{
				tickets.POST("", ticketHandler.CreateTicket)
				tickets.GET("", ticketHandler.ListTickets)
				tickets.GET("/:id", ticketHandler.GetTicket)
				tickets.POST("/:id/messages", ticketHandler.AddMessage)
				tickets.PUT("/:id/status", staffOnly, ticketHandler.UpdateTicketStatus)
				tickets.PUT("/:id/assignee", adminOnly, ticketHandler.AssignTicket)
			}

			protected.GET("/crm/contacts", staffOnly, crmHandler.ListContacts)

			admin := protected.Group("", adminOnly)
			{
				profiles := admin.Group("/admin/profiles")
				{
					profiles.GET("", profileHandler.ListProfiles)
					profiles.PUT("/:id/role", profileHandler.SetRole)
					profiles.PUT("/:id/active", profileHandler.SetActive)
				}

				pages := admin.Group("/seo/pages")
				{
					pages.POST("/batch", seoHandler.GenerateBatch)
					pages.POST("", seoHandler.GeneratePage)
					pages.GET("", seoHandler.ListPages)
					pages.GET("/:id", seoHandler.GetPage)
					pages.DELETE("/:id", seoHandler.DeletePage)
					pages.POST("/:id/publish", seoHandler.PublishPage)
					pages.POST("/:id/unpublish", seoHandler.UnpublishPage)
					pages.POST("/:id/translate", seoHandler.TranslatePage)
				}

				campaigns := admin.Group("/campaigns")
				{
					campaigns.POST("", campaignHandler.CreateCampaign)
					campaigns.GET("", campaignHandler.ListCampaigns)
					campaigns.GET("/:id", campaignHandler.GetCampaign)
					campaigns.PUT("/:id", campaignHandler.UpdateCampaign)
					campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
					campaigns.POST("/:id/generate", campaignHandler.GenerateContent)
					campaigns.POST("/:id/send", campaignHandler.SendCampaign)
				}

				restrictions := admin.Group("/page-restrictions")
				{
					restrictions.POST("", restrictionHandler.CreateRestriction)
					restrictions.GET("", restrictionHandler.ListRestrictions)
					restrictions.GET("/:id", restrictionHandler.GetRestriction)
					restrictions.PUT("/:id", restrictionHandler.UpdateRestriction)
					restrictions.DELETE("/:id", restrictionHandler.DeleteRestriction)
				}
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, cache handlers.Pinger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, cache)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
