// Package engagement holds the read and write rules of client engagement records.
// Every function takes a record snapshot and returns a new value; callers persist explicitly.
package engagement

import (
	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// Caller is the authenticated identity making a request
type Caller struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  models.GlobalRole
}

// IsAdmin reports whether the caller holds the global admin role
func (c Caller) IsAdmin() bool {
	return c.Role == models.GlobalRoleAdmin
}

// FindTeamMember returns the caller's team entry on the record, if any
func FindTeamMember(p *models.ClientProject, userID uuid.UUID) (models.TeamMember, bool) {
	for _, m := range p.Team {
		if m.UserID == userID {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// IsParticipant reports whether the caller is the record's client or on its team.
// The admin role alone does not make a caller a participant.
func IsParticipant(c Caller, p *models.ClientProject) bool {
	if c.ID == p.ClientID {
		return true
	}
	_, ok := FindTeamMember(p, c.ID)
	return ok
}

// CanAccess reports whether the caller may fetch the record at all
func CanAccess(c Caller, p *models.ClientProject) bool {
	return c.IsAdmin() || IsParticipant(c, p)
}

// CanEdit reports whether the caller may change milestones and tracked work
func CanEdit(c Caller, p *models.ClientProject) bool {
	if c.IsAdmin() {
		return true
	}
	m, ok := FindTeamMember(p, c.ID)
	return ok && m.Permissions.Has(models.PermissionEdit)
}

// CanManage reports whether the caller may create records and change the team
func CanManage(c Caller, _ *models.ClientProject) bool {
	return c.IsAdmin()
}
