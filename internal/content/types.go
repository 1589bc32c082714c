package content

import "time"

// OwnerKind names which entity family owns a dashboard-scoped record.
type OwnerKind string

const (
	OwnerSociety OwnerKind = "society"
	OwnerCouncil OwnerKind = "council"
)

// Society represents a student society and its public profile.
type Society struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Image              string    `json:"image,omitempty"`
	Description        string    `json:"description,omitempty"`
	Vision             string    `json:"vision,omitempty"`
	Mission            string    `json:"mission,omitempty"`
	Objectives         string    `json:"objectives,omitempty"`
	SlateMembers       string    `json:"slate_members,omitempty"` // JSON array, stored opaque
	Active             bool      `json:"is_active"`
	MemberCount        int       `json:"member_count"`
	StudentMemberCount int       `json:"student_member_count"`
	EstablishedYear    int       `json:"established_year,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Council represents a student council chapter.
type Council struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Image              string    `json:"image,omitempty"`
	Description        string    `json:"description,omitempty"`
	Vision             string    `json:"vision,omitempty"`
	Mission            string    `json:"mission,omitempty"`
	Objectives         string    `json:"objectives,omitempty"`
	ChairPerson        string    `json:"chair_person,omitempty"`
	SlateMembers       string    `json:"slate_members,omitempty"`
	WebsiteURL         string    `json:"website_url,omitempty"`
	Active             bool      `json:"is_active"`
	MemberCount        int       `json:"member_count"`
	StudentMemberCount int       `json:"student_member_count"`
	EstablishedYear    int       `json:"established_year,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// PastEvent is an event that already happened, kept for the archive pages.
type PastEvent struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	EventDate         time.Time `json:"event_date"`
	Image             string    `json:"image,omitempty"`
	Description       string    `json:"description,omitempty"`
	Participants      string    `json:"participants,omitempty"`
	HostingBranchName string    `json:"hosting_branch_name,omitempty"`
	HostingBranchLogo string    `json:"hosting_branch_logo,omitempty"`
	Venue             string    `json:"venue,omitempty"`
	DurationHours     int       `json:"duration_hours,omitempty"`
	FeedbackRating    float64   `json:"feedback_rating,omitempty"`
	SocietyID         *int64    `json:"society_id,omitempty"`
	CouncilID         *int64    `json:"council_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// EventType classifies upcoming events.
type EventType string

const (
	EventWorkshop   EventType = "WORKSHOP"
	EventSeminar    EventType = "SEMINAR"
	EventConference EventType = "CONFERENCE"
	EventHackathon  EventType = "HACKATHON"
	EventSymposium  EventType = "SYMPOSIUM"
	EventBootcamp   EventType = "BOOTCAMP"
	EventSummit     EventType = "SUMMIT"
)

// UpcomingEvent is a scheduled event open for registration.
type UpcomingEvent struct {
	ID                   int64      `json:"id"`
	Title                string     `json:"title"`
	EventDate            time.Time  `json:"event_date"`
	Image                string     `json:"image,omitempty"`
	Description          string     `json:"description,omitempty"`
	HostingBranchName    string     `json:"hosting_branch_name,omitempty"`
	HostingBranchLogo    string     `json:"hosting_branch_logo,omitempty"`
	Venue                string     `json:"venue,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	MaxParticipants      int        `json:"max_participants,omitempty"`
	RegistrationFee      float64    `json:"registration_fee"`
	RegistrationOpen     bool       `json:"is_registration_open"`
	EventType            EventType  `json:"event_type,omitempty"`
	SocietyID            *int64     `json:"society_id,omitempty"`
	CouncilID            *int64     `json:"council_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// Achievement records an award won by a society or council.
type Achievement struct {
	ID                   int64      `json:"id"`
	Title                string     `json:"title"`
	Year                 string     `json:"year,omitempty"`
	Description          string     `json:"description,omitempty"`
	Image                string     `json:"image,omitempty"`
	AwardCategory        string     `json:"award_category,omitempty"`
	AwardingOrganization string     `json:"awarding_organization,omitempty"`
	RecipientName        string     `json:"recipient_name,omitempty"`
	AchievementDate      *time.Time `json:"achievement_date,omitempty"`
	Featured             bool       `json:"is_featured"`
	SocietyID            *int64     `json:"society_id,omitempty"`
	CouncilID            *int64     `json:"council_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// GalleryItem is a media entry in the portal gallery.
type GalleryItem struct {
	ID          int64     `json:"id"`
	Image       string    `json:"img"`
	URL         string    `json:"url,omitempty"`
	Height      int       `json:"height,omitempty"`
	Width       int       `json:"width,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	AltText     string    `json:"alt_text,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        string    `json:"tags,omitempty"` // comma-separated
	Featured    bool      `json:"is_featured"`
	UploadDate  time.Time `json:"upload_date"`
	SocietyID   *int64    `json:"society_id,omitempty"`
	CouncilID   *int64    `json:"council_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NotificationType classifies portal notifications.
type NotificationType string

const (
	NotifyEvent        NotificationType = "EVENT"
	NotifyAchievement  NotificationType = "ACHIEVEMENT"
	NotifyReminder     NotificationType = "REMINDER"
	NotifyMembership   NotificationType = "MEMBERSHIP"
	NotifyNewsletter   NotificationType = "NEWSLETTER"
	NotifyAnnouncement NotificationType = "ANNOUNCEMENT"
	NotifyDeadline     NotificationType = "DEADLINE"
)

// Priority orders notifications on the portal feed.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Notification is a feed entry shown to portal users.
type Notification struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Time           time.Time        `json:"time"`
	Type           NotificationType `json:"type,omitempty"`
	Unread         bool             `json:"unread"`
	Priority       Priority         `json:"priority"`
	ExpiryDate     *time.Time       `json:"expiry_date,omitempty"`
	TargetAudience string           `json:"target_audience,omitempty"`
	RelatedEventID *int64           `json:"related_event_id,omitempty"`
	SocietyID      *int64           `json:"society_id,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// HeroSlide is a landing page banner.
type HeroSlide struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle,omitempty"`
	Image           string    `json:"image"`
	Description     string    `json:"description,omitempty"`
	DisplayOrder    int       `json:"display_order"`
	Active          bool      `json:"is_active"`
	ButtonText      string    `json:"button_text,omitempty"`
	ButtonURL       string    `json:"button_url,omitempty"`
	BackgroundColor string    `json:"background_color,omitempty"`
	TextColor       string    `json:"text_color,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RegistrationStatus tracks an event registration through its lifecycle.
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "PENDING"
	RegistrationConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationCancelled RegistrationStatus = "CANCELLED"
)

// PaymentStatus tracks the registration fee.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentWaived   PaymentStatus = "WAIVED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// AttendanceStatus records whether the registrant showed up.
type AttendanceStatus string

const (
	AttendanceRegistered AttendanceStatus = "REGISTERED"
	AttendanceAttended   AttendanceStatus = "ATTENDED"
	AttendanceNoShow     AttendanceStatus = "NO_SHOW"
)

// EventRegistration links a user account to an upcoming event.
type EventRegistration struct {
	ID                  int64              `json:"id"`
	UserID              int64              `json:"user_id"`
	EventID             int64              `json:"event_id"`
	RegistrationDate    time.Time          `json:"registration_date"`
	Status              RegistrationStatus `json:"status"`
	PaymentStatus       PaymentStatus      `json:"payment_status"`
	PaymentAmount       float64            `json:"payment_amount,omitempty"`
	PaymentReference    string             `json:"payment_reference,omitempty"`
	SpecialRequirements string             `json:"special_requirements,omitempty"`
	AttendanceStatus    AttendanceStatus   `json:"attendance_status"`
	FeedbackRating      int                `json:"feedback_rating,omitempty"`
	FeedbackComments    string             `json:"feedback_comments,omitempty"`
	CertificateIssued   bool               `json:"certificate_issued"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}
