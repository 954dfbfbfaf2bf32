package profile

// Participant is the person at the centre of the profile view.
//
// The upstream record is wide: personal details, contact channels,
// disability information, cultural context, emergency contacts, legal
// guardianship and the support network all live on the one row. Only a
// handful of fields participate in derivation; the rest pass straight
// through to display.
type Participant struct {
	ID            string `json:"id" yaml:"id"`
	NDISNumber    string `json:"ndis_number" yaml:"ndis_number"`
	FirstName     string `json:"first_name" yaml:"first_name"`
	LastName      string `json:"last_name" yaml:"last_name"`
	PreferredName string `json:"preferred_name,omitempty" yaml:"preferred_name,omitempty"`
	Pronouns      string `json:"pronouns,omitempty" yaml:"pronouns,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`
	Gender        string `json:"gender,omitempty" yaml:"gender,omitempty"`
	Email         string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone         string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Mobile        string `json:"mobile,omitempty" yaml:"mobile,omitempty"`

	// Postal address.
	AddressLine1 string `json:"address_line1,omitempty" yaml:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty" yaml:"address_line2,omitempty"`
	Suburb       string `json:"suburb,omitempty" yaml:"suburb,omitempty"`
	State        string `json:"state,omitempty" yaml:"state,omitempty"`
	Postcode     string `json:"postcode,omitempty" yaml:"postcode,omitempty"`
	Country      string `json:"country" yaml:"country"`

	// Residential address, if different from postal.
	ResidentialAddressLine1 string `json:"residential_address_line1,omitempty" yaml:"residential_address_line1,omitempty"`
	ResidentialAddressLine2 string `json:"residential_address_line2,omitempty" yaml:"residential_address_line2,omitempty"`
	ResidentialSuburb       string `json:"residential_suburb,omitempty" yaml:"residential_suburb,omitempty"`
	ResidentialState        string `json:"residential_state,omitempty" yaml:"residential_state,omitempty"`
	ResidentialPostcode     string `json:"residential_postcode,omitempty" yaml:"residential_postcode,omitempty"`

	CommunicationPreferences []string `json:"communication_preferences,omitempty" yaml:"communication_preferences,omitempty"`

	// Disability information.
	PrimaryDisability         string `json:"primary_disability,omitempty" yaml:"primary_disability,omitempty"`
	SecondaryDisability       string `json:"secondary_disability,omitempty" yaml:"secondary_disability,omitempty"`
	FunctionalImpactSummary   string `json:"functional_impact_summary,omitempty" yaml:"functional_impact_summary,omitempty"`
	BehaviourSupportNotes     string `json:"behaviour_support_notes,omitempty" yaml:"behaviour_support_notes,omitempty"`
	CommunicationNeeds        string `json:"communication_needs,omitempty" yaml:"communication_needs,omitempty"`
	MobilityPhysicalNeeds     string `json:"mobility_physical_needs,omitempty" yaml:"mobility_physical_needs,omitempty"`
	DietaryHealthRequirements string `json:"dietary_health_requirements,omitempty" yaml:"dietary_health_requirements,omitempty"`

	// Cultural context.
	CulturalBackground  string `json:"cultural_background,omitempty" yaml:"cultural_background,omitempty"`
	LanguageSpoken      string `json:"language_spoken" yaml:"language_spoken"`
	InterpreterRequired bool   `json:"interpreter_required" yaml:"interpreter_required"`
	InterpreterLanguage string `json:"interpreter_language,omitempty" yaml:"interpreter_language,omitempty"`
	IndigenousStatus    string `json:"indigenous_status,omitempty" yaml:"indigenous_status,omitempty"`

	// Emergency contacts.
	EmergencyContactName          string `json:"emergency_contact_name,omitempty" yaml:"emergency_contact_name,omitempty"`
	EmergencyContactPhone         string `json:"emergency_contact_phone,omitempty" yaml:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship  string `json:"emergency_contact_relationship,omitempty" yaml:"emergency_contact_relationship,omitempty"`
	EmergencyContact2Name         string `json:"emergency_contact_2_name,omitempty" yaml:"emergency_contact_2_name,omitempty"`
	EmergencyContact2Phone        string `json:"emergency_contact_2_phone,omitempty" yaml:"emergency_contact_2_phone,omitempty"`
	EmergencyContact2Relationship string `json:"emergency_contact_2_relationship,omitempty" yaml:"emergency_contact_2_relationship,omitempty"`
	MedicalEmergencyNotes         string `json:"medical_emergency_notes,omitempty" yaml:"medical_emergency_notes,omitempty"`

	// Legal and guardianship.
	LegalGuardianName           string `json:"legal_guardian_name,omitempty" yaml:"legal_guardian_name,omitempty"`
	LegalGuardianRelationship   string `json:"legal_guardian_relationship,omitempty" yaml:"legal_guardian_relationship,omitempty"`
	LegalGuardianPhone          string `json:"legal_guardian_phone,omitempty" yaml:"legal_guardian_phone,omitempty"`
	PowerOfAttorney             string `json:"power_of_attorney,omitempty" yaml:"power_of_attorney,omitempty"`
	GuardianshipOrderReference  string `json:"guardianship_order_reference,omitempty" yaml:"guardianship_order_reference,omitempty"`
	DecisionMakingCapacityNotes string `json:"decision_making_capacity_notes,omitempty" yaml:"decision_making_capacity_notes,omitempty"`

	// Support network.
	SupportCoordinatorName string `json:"support_coordinator_name,omitempty" yaml:"support_coordinator_name,omitempty"`
	LACName                string `json:"lac_name,omitempty" yaml:"lac_name,omitempty"`
	LACPhone               string `json:"lac_phone,omitempty" yaml:"lac_phone,omitempty"`
	LACEmail               string `json:"lac_email,omitempty" yaml:"lac_email,omitempty"`

	IsActive       bool   `json:"is_active" yaml:"is_active"`
	OnboardingDate string `json:"onboarding_date,omitempty" yaml:"onboarding_date,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty" yaml:"photo_url,omitempty"`
	CreatedAt      string `json:"created_at" yaml:"created_at"`
	UpdatedAt      string `json:"updated_at" yaml:"updated_at"`
}

// Contact is a member of the participant's support network.
type Contact struct {
	ID                 string `json:"id" yaml:"id"`
	ParticipantID      string `json:"participant_id" yaml:"participant_id"`
	ContactType        string `json:"contact_type" yaml:"contact_type"` // guardian | carer | family | other
	FirstName          string `json:"first_name" yaml:"first_name"`
	LastName           string `json:"last_name" yaml:"last_name"`
	Relationship       string `json:"relationship,omitempty" yaml:"relationship,omitempty"`
	Email              string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone              string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Mobile             string `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	IsPrimaryContact   bool   `json:"is_primary_contact" yaml:"is_primary_contact"`
	IsEmergencyContact bool   `json:"is_emergency_contact" yaml:"is_emergency_contact"`
	Notes              string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// SupportCategory identifies an NDIS support category within a plan budget.
type SupportCategory struct {
	ID             string `json:"id" yaml:"id"`
	CategoryNumber int    `json:"category_number" yaml:"category_number"`
	Name           string `json:"name" yaml:"name"`
	ShortName      string `json:"short_name,omitempty" yaml:"short_name,omitempty"`
	SupportPurpose string `json:"support_purpose" yaml:"support_purpose"` // daily_activities | social_participation | capacity_building | capital
}

// PlanBudgetCategory is a funding bucket within a plan.
//
// All amounts are AUD. spent + committed may legitimately exceed allocated:
// over-budget is a valid, displayable state, not an input error.
type PlanBudgetCategory struct {
	ID                string           `json:"id" yaml:"id"`
	PlanID            string           `json:"plan_id" yaml:"plan_id"`
	SupportCategoryID string           `json:"support_category_id" yaml:"support_category_id"`
	SupportCategory   *SupportCategory `json:"support_category,omitempty" yaml:"support_category,omitempty"`
	AllocatedAmount   float64          `json:"allocated_amount" yaml:"allocated_amount"`
	SpentAmount       float64          `json:"spent_amount" yaml:"spent_amount"`
	CommittedAmount   float64          `json:"committed_amount" yaml:"committed_amount"`
	PACECategoryCode  string           `json:"pace_category_code,omitempty" yaml:"pace_category_code,omitempty"`
	Notes             string           `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// PlanGoal is a participant goal attached to a plan.
//
// Status is an open string: the known values are not_started, in_progress,
// achieved and discontinued, but unknown values must classify to a generic
// display treatment rather than erroring.
type PlanGoal struct {
	ID              string `json:"id" yaml:"id"`
	PlanID          string `json:"plan_id" yaml:"plan_id"`
	GoalTitle       string `json:"goal_title" yaml:"goal_title"`
	GoalDescription string `json:"goal_description,omitempty" yaml:"goal_description,omitempty"`
	Domain          string `json:"domain,omitempty" yaml:"domain,omitempty"`
	TargetDate      string `json:"target_date,omitempty" yaml:"target_date,omitempty"`
	Status          string `json:"status" yaml:"status"`
	ProgressNotes   string `json:"progress_notes,omitempty" yaml:"progress_notes,omitempty"`
}

// NDISPlan is a funded support plan.
//
// PlanStartDate and PlanEndDate are required and the end date follows the
// start date; the upstream supplier enforces that, not this module.
type NDISPlan struct {
	ID               string               `json:"id" yaml:"id"`
	ParticipantID    string               `json:"participant_id" yaml:"participant_id"`
	PlanNumber       string               `json:"plan_number,omitempty" yaml:"plan_number,omitempty"`
	PlanStartDate    string               `json:"plan_start_date" yaml:"plan_start_date"`
	PlanEndDate      string               `json:"plan_end_date" yaml:"plan_end_date"`
	PlanStatus       string               `json:"plan_status" yaml:"plan_status"` // active | expired | superseded | pending
	ManagementType   string               `json:"management_type" yaml:"management_type"`
	TotalPlanValue   float64              `json:"total_plan_value,omitempty" yaml:"total_plan_value,omitempty"`
	NDISOffice       string               `json:"ndis_office,omitempty" yaml:"ndis_office,omitempty"`
	NDISPlannerName  string               `json:"ndis_planner_name,omitempty" yaml:"ndis_planner_name,omitempty"`
	NDISPlannerPhone string               `json:"ndis_planner_phone,omitempty" yaml:"ndis_planner_phone,omitempty"`
	PlanReviewDate   string               `json:"plan_review_date,omitempty" yaml:"plan_review_date,omitempty"`
	Notes            string               `json:"notes,omitempty" yaml:"notes,omitempty"`
	BudgetCategories []PlanBudgetCategory `json:"budget_categories,omitempty" yaml:"budget_categories,omitempty"`
	Goals            []PlanGoal           `json:"goals,omitempty" yaml:"goals,omitempty"`
}

// Provider is a service provider party on an agreement.
type Provider struct {
	ID                   string   `json:"id" yaml:"id"`
	BusinessName         string   `json:"business_name" yaml:"business_name"`
	TradingName          string   `json:"trading_name,omitempty" yaml:"trading_name,omitempty"`
	Email                string   `json:"email,omitempty" yaml:"email,omitempty"`
	Phone                string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	RegistrationGroups   []string `json:"registration_groups,omitempty" yaml:"registration_groups,omitempty"`
	IsRegisteredProvider bool     `json:"is_registered_provider" yaml:"is_registered_provider"`
}

// ServiceAgreement links a participant to a provider for a service period.
type ServiceAgreement struct {
	ID              string    `json:"id" yaml:"id"`
	ParticipantID   string    `json:"participant_id" yaml:"participant_id"`
	PlanID          string    `json:"plan_id,omitempty" yaml:"plan_id,omitempty"`
	ProviderID      string    `json:"provider_id" yaml:"provider_id"`
	Provider        *Provider `json:"provider,omitempty" yaml:"provider,omitempty"`
	AgreementNumber string    `json:"agreement_number,omitempty" yaml:"agreement_number,omitempty"`
	ServiceType     string    `json:"service_type,omitempty" yaml:"service_type,omitempty"`
	StartDate       string    `json:"start_date" yaml:"start_date"`
	EndDate         string    `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Status          string    `json:"status" yaml:"status"` // active | pending | completed | cancelled
	TotalValue      float64   `json:"total_value,omitempty" yaml:"total_value,omitempty"`
	Frequency       string    `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	Notes           string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Document access levels. Display-only hinting: nothing in this module
// enforces access control.
const (
	AccessAllStaff        = "all_staff"
	AccessCoordinatorOnly = "coordinator_only"
	AccessAdminOnly       = "admin_only"
)

// ParticipantDocument is an uploaded document on the participant's file.
//
// An empty ExpiryDate means the document never expires.
type ParticipantDocument struct {
	ID               string `json:"id" yaml:"id"`
	ParticipantID    string `json:"participant_id" yaml:"participant_id"`
	DocumentName     string `json:"document_name" yaml:"document_name"`
	DocumentCategory string `json:"document_category,omitempty" yaml:"document_category,omitempty"`
	DocumentDate     string `json:"document_date,omitempty" yaml:"document_date,omitempty"`
	ExpiryDate       string `json:"expiry_date,omitempty" yaml:"expiry_date,omitempty"`
	IsConfidential   bool   `json:"is_confidential" yaml:"is_confidential"`
	AccessLevel      string `json:"access_level" yaml:"access_level"`
	Description      string `json:"description,omitempty" yaml:"description,omitempty"`
	FileExtension    string `json:"file_extension,omitempty" yaml:"file_extension,omitempty"`
	UploadedBy       string `json:"uploaded_by,omitempty" yaml:"uploaded_by,omitempty"`
}

// CaseNote is a staff note on the participant's file.
type CaseNote struct {
	ID                string `json:"id" yaml:"id"`
	ParticipantID     string `json:"participant_id" yaml:"participant_id"`
	PlanID            string `json:"plan_id,omitempty" yaml:"plan_id,omitempty"`
	NoteType          string `json:"note_type" yaml:"note_type"` // progress | case_note | review | incident
	Title             string `json:"title,omitempty" yaml:"title,omitempty"`
	Content           string `json:"content" yaml:"content"`
	IsConfidential    bool   `json:"is_confidential" yaml:"is_confidential"`
	FollowUpRequired  bool   `json:"follow_up_required" yaml:"follow_up_required"`
	FollowUpDate      string `json:"follow_up_date,omitempty" yaml:"follow_up_date,omitempty"`
	FollowUpCompleted bool   `json:"follow_up_completed" yaml:"follow_up_completed"`
	CreatedByName     string `json:"created_by_name,omitempty" yaml:"created_by_name,omitempty"`
	CreatedAt         string `json:"created_at" yaml:"created_at"`
}

// Communication is a logged contact with or about the participant.
type Communication struct {
	ID                string `json:"id" yaml:"id"`
	ParticipantID     string `json:"participant_id" yaml:"participant_id"`
	CommunicationType string `json:"communication_type" yaml:"communication_type"` // email | sms | phone_call | letter | in_person | video_call
	Direction         string `json:"direction" yaml:"direction"`                   // inbound | outbound
	Subject           string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Content           string `json:"content,omitempty" yaml:"content,omitempty"`
	CommunicationDate string `json:"communication_date" yaml:"communication_date"`
	DurationMinutes   int    `json:"duration_minutes,omitempty" yaml:"duration_minutes,omitempty"`
	Outcome           string `json:"outcome,omitempty" yaml:"outcome,omitempty"` // successful | no_answer | left_message | failed
	FollowUpRequired  bool   `json:"follow_up_required" yaml:"follow_up_required"`
	FollowUpDate      string `json:"follow_up_date,omitempty" yaml:"follow_up_date,omitempty"`
	FollowUpCompleted bool   `json:"follow_up_completed" yaml:"follow_up_completed"`
	HandledByName     string `json:"handled_by_name,omitempty" yaml:"handled_by_name,omitempty"`
}

// Task is an open work item related to the participant.
type Task struct {
	ID             string `json:"id" yaml:"id"`
	ParticipantID  string `json:"participant_id,omitempty" yaml:"participant_id,omitempty"`
	TaskType       string `json:"task_type" yaml:"task_type"`
	Title          string `json:"title" yaml:"title"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Priority       string `json:"priority" yaml:"priority"` // low | medium | high | urgent
	Status         string `json:"status" yaml:"status"`     // pending | in_progress | completed | cancelled | overdue
	DueDate        string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	AssignedToName string `json:"assigned_to_name,omitempty" yaml:"assigned_to_name,omitempty"`
}

// Data is the aggregate snapshot for one participant, supplied fully
// materialized by the upstream data source.
//
// If ActivePlan is present it should also appear in Plans under the same
// id; if it does not, history derivation treats every plan as historical.
type Data struct {
	Participant       Participant           `json:"participant" yaml:"participant"`
	ActivePlan        *NDISPlan             `json:"active_plan,omitempty" yaml:"active_plan,omitempty"`
	Plans             []NDISPlan            `json:"plans" yaml:"plans"`
	Contacts          []Contact             `json:"contacts" yaml:"contacts"`
	ServiceAgreements []ServiceAgreement    `json:"service_agreements" yaml:"service_agreements"`
	Documents         []ParticipantDocument `json:"documents" yaml:"documents"`
	CaseNotes         []CaseNote            `json:"case_notes" yaml:"case_notes"`
	Communications    []Communication       `json:"communications" yaml:"communications"`
	Tasks             []Task                `json:"tasks" yaml:"tasks"`
}
