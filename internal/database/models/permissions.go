package models

import (
	"encoding/json"
	"fmt"
)

// Permission is a single capability a team member can hold on an engagement
type Permission uint8

const (
	PermissionView Permission = 1 << iota
	PermissionComment
	PermissionEdit
	PermissionApprove
	PermissionManage
)

// allPermissions is ordered the way permissions are serialized
var allPermissions = []Permission{
	PermissionView,
	PermissionComment,
	PermissionEdit,
	PermissionApprove,
	PermissionManage,
}

// String returns the wire name of the permission
func (p Permission) String() string {
	switch p {
	case PermissionView:
		return "view"
	case PermissionComment:
		return "comment"
	case PermissionEdit:
		return "edit"
	case PermissionApprove:
		return "approve"
	case PermissionManage:
		return "manage"
	}
	return fmt.Sprintf("permission(%d)", uint8(p))
}

// ParsePermission maps a wire name to a Permission
func ParsePermission(name string) (Permission, error) {
	for _, p := range allPermissions {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown permission %q", name)
}

// PermissionSet is a set of permissions stored as a bitmask.
// It serializes as a JSON array of permission names.
type PermissionSet uint8

// NewPermissionSet builds a set from the given permissions
func NewPermissionSet(perms ...Permission) PermissionSet {
	var s PermissionSet
	for _, p := range perms {
		s |= PermissionSet(p)
	}
	return s
}

// FullPermissions grants every permission
func FullPermissions() PermissionSet {
	return NewPermissionSet(allPermissions...)
}

// Has reports whether p is in the set
func (s PermissionSet) Has(p Permission) bool {
	return s&PermissionSet(p) != 0
}

// With returns the set with p added
func (s PermissionSet) With(p Permission) PermissionSet {
	return s | PermissionSet(p)
}

// List returns the permissions in the set in canonical order
func (s PermissionSet) List() []Permission {
	out := make([]Permission, 0, len(allPermissions))
	for _, p := range allPermissions {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Names returns the wire names of the permissions in the set
func (s PermissionSet) Names() []string {
	perms := s.List()
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = p.String()
	}
	return names
}

// ParsePermissionSet builds a set from wire names, rejecting unknown names
func ParsePermissionSet(names []string) (PermissionSet, error) {
	var s PermissionSet
	for _, name := range names {
		p, err := ParsePermission(name)
		if err != nil {
			return 0, err
		}
		s = s.With(p)
	}
	return s, nil
}

// MarshalJSON encodes the set as an array of names
func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// UnmarshalJSON decodes an array of names
func (s *PermissionSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParsePermissionSet(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// DefaultPermissions returns the permissions granted to a team role when none are given
func DefaultPermissions(role TeamRole) PermissionSet {
	switch role {
	case TeamRoleProjectManager:
		return FullPermissions()
	case TeamRoleDeveloper, TeamRoleDesigner:
		return NewPermissionSet(PermissionView, PermissionComment, PermissionEdit)
	case TeamRoleQA:
		return NewPermissionSet(PermissionView, PermissionComment)
	case TeamRoleClient:
		return NewPermissionSet(PermissionView, PermissionComment, PermissionApprove)
	}
	return NewPermissionSet(PermissionView)
}
