package models

// GlobalRole is the platform-wide role of a caller identity
type GlobalRole string

const (
	GlobalRoleAdmin  GlobalRole = "admin"
	GlobalRoleStaff  GlobalRole = "staff"
	GlobalRoleClient GlobalRole = "client"
)

// ClientProjectStatus is the lifecycle state of a client engagement
type ClientProjectStatus string

const (
	ClientProjectStatusProposal   ClientProjectStatus = "proposal"
	ClientProjectStatusApproved   ClientProjectStatus = "approved"
	ClientProjectStatusInProgress ClientProjectStatus = "in-progress"
	ClientProjectStatusReview     ClientProjectStatus = "review"
	ClientProjectStatusCompleted  ClientProjectStatus = "completed"
	ClientProjectStatusOnHold     ClientProjectStatus = "on-hold"
	ClientProjectStatusCancelled  ClientProjectStatus = "cancelled"
)

// Priority of a client engagement
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// MilestoneStatus is the state of a single milestone
type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "pending"
	MilestoneStatusInProgress MilestoneStatus = "in-progress"
	MilestoneStatusCompleted  MilestoneStatus = "completed"
	MilestoneStatusOverdue    MilestoneStatus = "overdue"
)

// TeamRole is the role a user holds on one engagement's team
type TeamRole string

const (
	TeamRoleProjectManager TeamRole = "project-manager"
	TeamRoleDeveloper      TeamRole = "developer"
	TeamRoleDesigner       TeamRole = "designer"
	TeamRoleQA             TeamRole = "qa"
	TeamRoleClient         TeamRole = "client"
)

// CommunicationType classifies entries of the communications log
type CommunicationType string

const (
	CommunicationTypeMessage   CommunicationType = "message"
	CommunicationTypeUpdate    CommunicationType = "update"
	CommunicationTypeMilestone CommunicationType = "milestone"
	CommunicationTypeFile      CommunicationType = "file"
	CommunicationTypeMeeting   CommunicationType = "meeting"
)

// FeedbackType classifies feedback entries
type FeedbackType string

const (
	FeedbackTypeGeneral       FeedbackType = "general"
	FeedbackTypeDesign        FeedbackType = "design"
	FeedbackTypeFunctionality FeedbackType = "functionality"
	FeedbackTypePerformance   FeedbackType = "performance"
	FeedbackTypeContent       FeedbackType = "content"
	FeedbackTypeBug           FeedbackType = "bug"
)

// FeedbackStatus tracks how a feedback entry was handled
type FeedbackStatus string

const (
	FeedbackStatusPending      FeedbackStatus = "pending"
	FeedbackStatusAcknowledged FeedbackStatus = "acknowledged"
	FeedbackStatusAddressed    FeedbackStatus = "addressed"
)

// PrivacyLevel of an engagement record
type PrivacyLevel string

const (
	PrivacyLevelPrivate PrivacyLevel = "private"
	PrivacyLevelTeam    PrivacyLevel = "team"
	PrivacyLevelPublic  PrivacyLevel = "public"
)

// IsValid checks if the GlobalRole is valid
func (r GlobalRole) IsValid() bool {
	switch r {
	case GlobalRoleAdmin, GlobalRoleStaff, GlobalRoleClient:
		return true
	}
	return false
}

// IsValid checks if the ClientProjectStatus is valid
func (s ClientProjectStatus) IsValid() bool {
	switch s {
	case ClientProjectStatusProposal, ClientProjectStatusApproved, ClientProjectStatusInProgress,
		ClientProjectStatusReview, ClientProjectStatusCompleted, ClientProjectStatusOnHold,
		ClientProjectStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsValid checks if the MilestoneStatus is valid
func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusInProgress, MilestoneStatusCompleted, MilestoneStatusOverdue:
		return true
	}
	return false
}

// IsValid checks if the TeamRole is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleProjectManager, TeamRoleDeveloper, TeamRoleDesigner, TeamRoleQA, TeamRoleClient:
		return true
	}
	return false
}

// IsValid checks if the CommunicationType is valid
func (t CommunicationType) IsValid() bool {
	switch t {
	case CommunicationTypeMessage, CommunicationTypeUpdate, CommunicationTypeMilestone,
		CommunicationTypeFile, CommunicationTypeMeeting:
		return true
	}
	return false
}

// IsValid checks if the FeedbackType is valid
func (t FeedbackType) IsValid() bool {
	switch t {
	case FeedbackTypeGeneral, FeedbackTypeDesign, FeedbackTypeFunctionality,
		FeedbackTypePerformance, FeedbackTypeContent, FeedbackTypeBug:
		return true
	}
	return false
}

// IsValid checks if the FeedbackStatus is valid
func (s FeedbackStatus) IsValid() bool {
	switch s {
	case FeedbackStatusPending, FeedbackStatusAcknowledged, FeedbackStatusAddressed:
		return true
	}
	return false
}

// IsValid checks if the PrivacyLevel is valid
func (l PrivacyLevel) IsValid() bool {
	switch l {
	case PrivacyLevelPrivate, PrivacyLevelTeam, PrivacyLevelPublic:
		return true
	}
	return false
}
