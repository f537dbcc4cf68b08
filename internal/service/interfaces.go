package service

import (
	"context"

	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/database/models"
	"taxpro-backend/internal/seo"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProfileResponse, error)
	UpdateMe(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error)
	SetVanityCode(ctx context.Context, id uuid.UUID, req *SetVanityCodeRequest) (*ProfileResponse, error)
	List(ctx context.Context, role models.Role, page, pageSize int) (*ProfileListResponse, error)
	SetRole(ctx context.Context, id uuid.UUID, role models.Role) (*ProfileResponse, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*ProfileResponse, error)
}

// CodeResolver resolves referral codes to active profiles
type CodeResolver interface {
	ResolveCode(ctx context.Context, code string) (*models.Profile, error)
}

// ReferralServiceInterface defines the interface for referral service
type ReferralServiceInterface interface {
	CodeResolver
	RecordClick(ctx context.Context, in ClickInput) bool
	SubmitReferral(ctx context.Context, referrerID uuid.UUID, req *SubmitReferralRequest) (*ReferralResponse, error)
	ListMine(ctx context.Context, referrerID uuid.UUID, page, pageSize int) (*ReferralListResponse, error)
	Stats(ctx context.Context, referrerID uuid.UUID) (*ReferralStatsResponse, error)
}

// LeadConverter converts leads after payment
type LeadConverter interface {
	ConvertLead(ctx context.Context, id uuid.UUID, feeCents int64, actor string) (*LeadResponse, error)
}

// LeadServiceInterface defines the interface for lead service
type LeadServiceInterface interface {
	LeadConverter
	CreateLead(ctx context.Context, req *CreateLeadRequest, cookieCode string) (*LeadResponse, error)
	List(ctx context.Context, who auth.Identity, params LeadListParams) (*LeadListResponse, error)
	Get(ctx context.Context, who auth.Identity, id uuid.UUID) (*LeadResponse, error)
	UpdateStatus(ctx context.Context, who auth.Identity, id uuid.UUID, req *UpdateLeadStatusRequest) (*LeadResponse, error)
	AssignPreparer(ctx context.Context, id uuid.UUID, req *AssignLeadRequest) (*LeadResponse, error)
}

// ContactSyncer mirrors leads into the CRM
type ContactSyncer interface {
	UpsertFromLead(ctx context.Context, lead *models.Lead) error
	MarkCustomer(ctx context.Context, email string) error
}

// CRMServiceInterface defines the interface for CRM service
type CRMServiceInterface interface {
	ContactSyncer
	Unsubscribe(ctx context.Context, email string) error
	ListContacts(ctx context.Context, query string, stage models.ContactStage, page, pageSize int) (*CRMContactListResponse, error)
}

// CommissionCreator creates commissions for converted leads
type CommissionCreator interface {
	CreateForConversion(ctx context.Context, lead *models.Lead) (*models.Commission, error)
}

// CommissionServiceInterface defines the interface for commission service
type CommissionServiceInterface interface {
	CommissionCreator
	List(ctx context.Context, who auth.Identity, status models.CommissionStatus, page, pageSize int) (*CommissionListResponse, error)
	Get(ctx context.Context, who auth.Identity, id uuid.UUID) (*CommissionResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *UpdateCommissionStatusRequest, actor string) (*CommissionResponse, error)
	Summary(ctx context.Context, referrerID *uuid.UUID) (*CommissionSummary, error)
	Export(ctx context.Context, status models.CommissionStatus) ([]byte, error)
}

// PaymentServiceInterface defines the interface for payment webhook service
type PaymentServiceInterface interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

// TicketServiceInterface defines the interface for ticket service
type TicketServiceInterface interface {
	Create(ctx context.Context, who auth.Identity, req *CreateTicketRequest) (*TicketResponse, error)
	List(ctx context.Context, who auth.Identity, status models.TicketStatus, assignedToMe bool, page, pageSize int) (*TicketListResponse, error)
	Get(ctx context.Context, who auth.Identity, id uuid.UUID) (*TicketResponse, error)
	AddMessage(ctx context.Context, who auth.Identity, id uuid.UUID, req *AddTicketMessageRequest) (*TicketMessageResponse, error)
	UpdateStatus(ctx context.Context, who auth.Identity, id uuid.UUID, req *UpdateTicketStatusRequest) (*TicketResponse, error)
	Assign(ctx context.Context, id uuid.UUID, req *AssignTicketRequest, actor string) (*TicketResponse, error)
}

// SeoServiceInterface defines the interface for SEO landing page service
type SeoServiceInterface interface {
	GenerateBatch(ctx context.Context, req *GenerateBatchRequest) (*BatchResult, error)
	GeneratePage(ctx context.Context, target seo.Target, withImage bool) (*SeoPageResponse, error)
	List(ctx context.Context, params SeoPageListParams) (*SeoPageListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*SeoPageResponse, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*SeoPageResponse, error)
	Publish(ctx context.Context, id uuid.UUID) (*SeoPageResponse, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*SeoPageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Translate(ctx context.Context, id uuid.UUID, req *TranslatePageRequest) (*SeoPageResponse, error)
}

// CampaignServiceInterface defines the interface for campaign service
type CampaignServiceInterface interface {
	Create(ctx context.Context, req *CreateCampaignRequest, actor string) (*CampaignResponse, error)
	List(ctx context.Context, page, pageSize int) (*CampaignListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*CampaignResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCampaignRequest, actor string) (*CampaignResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GenerateContent(ctx context.Context, id uuid.UUID, req *GenerateCampaignContentRequest, actor string) (*CampaignResponse, error)
	Send(ctx context.Context, id uuid.UUID, actor string) (*CampaignResponse, error)
}

// PageRestrictionServiceInterface defines the interface for page restriction service
type PageRestrictionServiceInterface interface {
	Create(ctx context.Context, req *PageRestrictionRequest, actor string) (*PageRestrictionResponse, error)
	List(ctx context.Context) ([]PageRestrictionResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*PageRestrictionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *PageRestrictionRequest, actor string) (*PageRestrictionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Check(ctx context.Context, path string, role *models.Role) (*AccessDecision, error)
}

var (
	_ ProfileServiceInterface         = (*ProfileService)(nil)
	_ ReferralServiceInterface        = (*ReferralService)(nil)
	_ LeadServiceInterface            = (*LeadService)(nil)
	_ CRMServiceInterface             = (*CRMService)(nil)
	_ CommissionServiceInterface      = (*CommissionService)(nil)
	_ PaymentServiceInterface         = (*PaymentService)(nil)
	_ TicketServiceInterface          = (*TicketService)(nil)
	_ SeoServiceInterface             = (*SeoService)(nil)
	_ CampaignServiceInterface        = (*CampaignService)(nil)
	_ PageRestrictionServiceInterface = (*PageRestrictionService)(nil)
)
