package app

import (
	"context"
	"time"

	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/cache"
	"taxpro-backend/internal/commission"
	"taxpro-backend/internal/config"
	"taxpro-backend/internal/llm"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/media"
	"taxpro-backend/internal/metrics"
	"taxpro-backend/internal/notify"
	"taxpro-backend/internal/repository"
	"taxpro-backend/internal/service"
	"taxpro-backend/internal/translate"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Clients bundles the outbound integrations built from configuration
type Clients struct {
	Cache      cache.Cache
	Mailer     *notify.Mailer
	SMS        *notify.SMSClient
	Generator  service.ContentGenerator
	Translator *translate.Client
	Media      *media.LocalStore
	Tiers      commission.Table
	Metrics    *metrics.Metrics
}

// NewClients connects the integrations. Redis and the language model are optional: when they
// are unreachable or unconfigured the API keeps running without them.
func NewClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	log := logger.New()

	tiers, err := commission.LoadTable(cfg.CommissionTiersFile)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	referralCache, err := cache.NewReferralCache(pingCtx, cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, referral codes will not be cached")
		referralCache = cache.Noop{}
	}

	var generator service.ContentGenerator = llm.Disabled{}
	genaiClient, err := llm.NewGenAIClient(ctx, cfg.GenAIAPIKey, cfg.GenAITextModel, cfg.GenAIImageModel)
	switch {
	case err == nil:
		generator = genaiClient
	case cfg.GenAIAPIKey == "":
		log.Info("GENAI_API_KEY not set, content generation disabled")
	default:
		return nil, err
	}

	return &Clients{
		Cache: referralCache,
		Mailer: notify.NewMailer(notify.SMTPConfig{
			Host:   cfg.SMTPHost,
			Port:   cfg.SMTPPort,
			User:   cfg.SMTPUser,
			Pass:   cfg.SMTPPass,
			Sender: cfg.SMTPSender,
		}),
		SMS:        notify.NewSMSClient(cfg.SMSAPIURL, cfg.SMSAPIKey),
		Generator:  generator,
		Translator: translate.NewClient(cfg.TranslateAPIURL, cfg.TranslateAPIKey),
		Media:      media.NewLocalStore(cfg.MediaDir, cfg.MediaBaseURL),
		Tiers:      tiers,
		Metrics:    metrics.New(),
	}, nil
}

// Close releases connections held by the clients
func (c *Clients) Close() error {
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}

// Services is the set of domain services shared by the HTTP API and the CLI
type Services struct {
	Auth             *auth.AuthService
	Profiles         *service.ProfileService
	Referrals        *service.ReferralService
	Leads            *service.LeadService
	CRM              *service.CRMService
	Commissions      *service.CommissionService
	Payments         *service.PaymentService
	Tickets          *service.TicketService
	Seo              *service.SeoService
	Campaigns        *service.CampaignService
	PageRestrictions *service.PageRestrictionService
}

// NewServices wires repositories and clients into the domain services
func NewServices(db *gorm.DB, cfg *config.Config, clients *Clients) (*Services, error) {
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret, cfg.JWTTTLMinutes))
	if err != nil {
		return nil, err
	}

	validate := validator.New()

	profileRepo := repository.NewProfileRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	clickRepo := repository.NewReferralClickRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	contactRepo := repository.NewCRMContactRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	seoRepo := repository.NewSeoLandingPageRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	restrictionRepo := repository.NewPageRestrictionRepository(db)

	referralService := service.NewReferralService(profileRepo, referralRepo, clickRepo, leadRepo, commissionRepo, clients.Cache, clients.Metrics, validate)
	crmService := service.NewCRMService(contactRepo)
	commissionService := service.NewCommissionService(commissionRepo, leadRepo, profileRepo, clients.Tiers, clients.Mailer, validate)
	leadService := service.NewLeadService(service.LeadServiceDeps{
		Leads:       leadRepo,
		Referrals:   referralRepo,
		Profiles:    profileRepo,
		Codes:       referralService,
		CRM:         crmService,
		Commissions: commissionService,
		Mailer:      clients.Mailer,
		SMS:         clients.SMS,
		Metrics:     clients.Metrics,
		Validator:   validate,
		AdminEmail:  cfg.NotifyAdminEmail,
	})

	return &Services{
		Auth:        authService,
		Profiles:    service.NewProfileService(profileRepo, authService, clients.Cache, validate, cfg.PublicBaseURL),
		Referrals:   referralService,
		Leads:       leadService,
		CRM:         crmService,
		Commissions: commissionService,
		Payments:    service.NewPaymentService(paymentRepo, leadService, clients.Metrics, cfg.PaymentWebhookSecret),
		Tickets:     service.NewTicketService(ticketRepo, profileRepo, clients.Mailer, validate, cfg.NotifyAdminEmail),
		Seo: service.NewSeoService(service.SeoServiceDeps{
			Repo:       seoRepo,
			Generator:  clients.Generator,
			Images:     clients.Media,
			Translator: clients.Translator,
			Metrics:    clients.Metrics,
			Validator:  validate,
			BatchSize:  cfg.SEOBatchSize,
			BatchDelay: time.Duration(cfg.SEOBatchDelayMS) * time.Millisecond,
		}),
		Campaigns:        service.NewCampaignService(campaignRepo, contactRepo, profileRepo, clients.Generator, clients.Mailer, clients.Metrics, validate),
		PageRestrictions: service.NewPageRestrictionService(restrictionRepo, validate),
	}, nil
}
