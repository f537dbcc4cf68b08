package models

// Role is the platform role of a profile
type Role string

const (
	RoleClient      Role = "client"
	RoleAffiliate   Role = "affiliate"
	RoleTaxPreparer Role = "tax_preparer"
	RoleAdmin       Role = "admin"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleAffiliate, RoleTaxPreparer, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role works tickets and leads on behalf of the business
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleTaxPreparer
}

// LeadStatus is the pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNew:       {LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost},
	LeadStatusContacted: {LeadStatusQualified, LeadStatusConverted, LeadStatusLost},
	LeadStatusQualified: {LeadStatusContacted, LeadStatusConverted, LeadStatusLost},
	LeadStatusLost:      {LeadStatusContacted},
	LeadStatusConverted: {},
}

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	_, ok := leadTransitions[s]
	return ok
}

// CanTransitionTo reports whether a lead may move from s to next
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	for _, allowed := range leadTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AttributionMethod records how a lead was credited to a referrer
type AttributionMethod string

const (
	AttributionCookie     AttributionMethod = "cookie"
	AttributionEmailMatch AttributionMethod = "email_match"
	AttributionPhoneMatch AttributionMethod = "phone_match"
	AttributionDirect     AttributionMethod = "direct"
)

// CommissionStatus is the payout state of a commission
type CommissionStatus string

const (
	CommissionStatusPending  CommissionStatus = "pending"
	CommissionStatusApproved CommissionStatus = "approved"
	CommissionStatusPaid     CommissionStatus = "paid"
	CommissionStatusVoid     CommissionStatus = "void"
)

// IsValid checks if the CommissionStatus is valid
func (s CommissionStatus) IsValid() bool {
	switch s {
	case CommissionStatusPending, CommissionStatusApproved, CommissionStatusPaid, CommissionStatusVoid:
		return true
	}
	return false
}

// CanTransitionTo reports whether a commission may move from s to next
func (s CommissionStatus) CanTransitionTo(next CommissionStatus) bool {
	switch s {
	case CommissionStatusPending:
		return next == CommissionStatusApproved || next == CommissionStatusVoid
	case CommissionStatusApproved:
		return next == CommissionStatusPaid || next == CommissionStatusVoid
	}
	return false
}

// TicketStatus is the lifecycle state of a support ticket
type TicketStatus string

const (
	TicketStatusOpen              TicketStatus = "open"
	TicketStatusInProgress        TicketStatus = "in_progress"
	TicketStatusWaitingOnCustomer TicketStatus = "waiting_on_customer"
	TicketStatusResolved          TicketStatus = "resolved"
	TicketStatusClosed            TicketStatus = "closed"
)

// IsValid checks if the TicketStatus is valid
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusWaitingOnCustomer, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketCategory groups tickets for routing
type TicketCategory string

const (
	TicketCategoryBilling     TicketCategory = "billing"
	TicketCategoryTechnical   TicketCategory = "technical"
	TicketCategoryTaxQuestion TicketCategory = "tax_question"
	TicketCategoryAccount     TicketCategory = "account"
	TicketCategoryOther       TicketCategory = "other"
)

// TicketPriority orders tickets in the queue
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityNormal TicketPriority = "normal"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// PageStatus is the publication state of an SEO landing page
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// CampaignStatus is the delivery state of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft   CampaignStatus = "draft"
	CampaignStatusSending CampaignStatus = "sending"
	CampaignStatusSent    CampaignStatus = "sent"
	CampaignStatusFailed  CampaignStatus = "failed"
)

// CampaignAudience selects campaign recipients
type CampaignAudience string

const (
	AudienceAllContacts CampaignAudience = "all_contacts"
	AudienceCustomers   CampaignAudience = "customers"
	AudienceLeads       CampaignAudience = "leads"
	AudienceAffiliates  CampaignAudience = "affiliates"
)

// IsValid checks if the CampaignAudience is valid
func (a CampaignAudience) IsValid() bool {
	switch a {
	case AudienceAllContacts, AudienceCustomers, AudienceLeads, AudienceAffiliates:
		return true
	}
	return false
}

// ContactStage is the CRM lifecycle stage of a contact
type ContactStage string

const (
	ContactStageLead     ContactStage = "lead"
	ContactStageCustomer ContactStage = "customer"
)
