package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClientProject is one client engagement record. Sub-collections live in jsonb columns
// and are always rewritten as a whole by an explicit update.
type ClientProject struct {
	BaseModel
	CatalogProjectID *uuid.UUID          `json:"catalogProjectId,omitempty" gorm:"type:uuid;index"`
	ClientID         uuid.UUID           `json:"clientId" gorm:"type:uuid;not null;index"`
	Title            string              `json:"title" gorm:"not null;size:200"`
	Description      string              `json:"description" gorm:"type:text"`
	Status           ClientProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'proposal';index"`
	Priority         Priority            `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Budget           Budget              `json:"budget" gorm:"embedded;embeddedPrefix:budget_"`
	Timeline         Timeline            `json:"timeline" gorm:"embedded;embeddedPrefix:timeline_"`

	Milestones     datatypes.JSONSlice[Milestone]     `json:"milestones" gorm:"type:jsonb;not null;default:'[]'"`
	Team           datatypes.JSONSlice[TeamMember]    `json:"team" gorm:"type:jsonb;not null;default:'[]'"`
	Files          datatypes.JSONSlice[ProjectFile]   `json:"files" gorm:"type:jsonb;not null;default:'[]'"`
	Communications datatypes.JSONSlice[Communication] `json:"communications" gorm:"type:jsonb;not null;default:'[]'"`
	Feedback       datatypes.JSONSlice[Feedback]      `json:"feedback" gorm:"type:jsonb;not null;default:'[]'"`
	Analytics      datatypes.JSONType[Analytics]      `json:"analytics" gorm:"type:jsonb"`
	Settings       datatypes.JSONType[Settings]       `json:"settings" gorm:"type:jsonb"`

	// Derived on read, never stored
	HealthStatus HealthStatus `json:"healthStatus,omitempty" gorm:"-"`
}

// TableName returns the table name for ClientProject
func (ClientProject) TableName() string {
	return "client_projects"
}

// Budget of an engagement. Remaining is derived on read.
type Budget struct {
	Total     float64 `json:"total" gorm:"default:0"`
	Currency  string  `json:"currency" gorm:"size:3;default:'USD'"`
	Paid      float64 `json:"paid" gorm:"default:0"`
	Remaining float64 `json:"remaining" gorm:"-"`
}

// Timeline of an engagement
type Timeline struct {
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	EstimatedHours float64    `json:"estimatedHours" gorm:"default:0"`
	ActualHours    float64    `json:"actualHours" gorm:"default:0"`
}

// Milestone is a deliverable checkpoint of an engagement
type Milestone struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	Status       MilestoneStatus `json:"status"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	Deliverables []string        `json:"deliverables"`
	Notes        string          `json:"notes,omitempty"`
}

// TeamMember is one entry of an engagement's team roster, unique by UserID
type TeamMember struct {
	UserID      uuid.UUID     `json:"userId"`
	Role        TeamRole      `json:"role"`
	Permissions PermissionSet `json:"permissions"`
	AddedAt     time.Time     `json:"addedAt"`
}

// ProjectFile is metadata of an attachment held in the blob store
type ProjectFile struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Key         string    `json:"key"`
	URL         string    `json:"url,omitempty"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType,omitempty"`
	UploadedBy  uuid.UUID `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ReadReceipt records that a user has read a communication
type ReadReceipt struct {
	UserID uuid.UUID `json:"userId"`
	ReadAt time.Time `json:"readAt"`
}

// Communication is an entry of the append-only communications log
type Communication struct {
	ID          uuid.UUID         `json:"id"`
	Type        CommunicationType `json:"type"`
	Content     string            `json:"content"`
	AuthorID    uuid.UUID         `json:"authorId"`
	Recipients  []uuid.UUID       `json:"recipients"`
	Attachments []string          `json:"attachments"`
	IsRead      []ReadReceipt     `json:"isRead"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Feedback left on an engagement by its client or team
type Feedback struct {
	ID        uuid.UUID      `json:"id"`
	Type      FeedbackType   `json:"type"`
	Content   string         `json:"content"`
	Rating    *int           `json:"rating,omitempty"`
	AuthorID  uuid.UUID      `json:"authorId"`
	Status    FeedbackStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

// TimeEntry is one time tracking line
type TimeEntry struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description,omitempty"`
	UserID      uuid.UUID `json:"userId"`
}

// Analytics of an engagement
type Analytics struct {
	TimeTracking       []TimeEntry `json:"timeTracking"`
	ProgressPercentage int         `json:"progressPercentage"`
	LastActivity       *time.Time  `json:"lastActivity,omitempty"`
}

// NotificationSettings toggles which engagement events are announced
type NotificationSettings struct {
	Email      bool `json:"email"`
	Milestones bool `json:"milestones"`
	Messages   bool `json:"messages"`
}

// Settings of an engagement
type Settings struct {
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacyLevel         `json:"privacy"`
}

// DefaultSettings are applied to newly created engagements
func DefaultSettings() Settings {
	return Settings{
		Notifications: NotificationSettings{Email: true, Milestones: true, Messages: true},
		Privacy:       PrivacyLevelPrivate,
	}
}

// HealthStatus summarizes how an engagement is tracking
type HealthStatus string

const (
	HealthStatusOnTrack HealthStatus = "on-track"
	HealthStatusAtRisk  HealthStatus = "at-risk"
	HealthStatusDelayed HealthStatus = "delayed"
	HealthStatusClosed  HealthStatus = "closed"
)
