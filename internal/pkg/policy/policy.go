package policy

import (
	"strings"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

// Actor is the identity forwarded by the auth gateway. An anonymous
// request has an empty role and email.
type Actor struct {
	UserID uint
	Role   models.AuthorRole
	Email  string
}

// Action names a capability checked against the actor's role.
type Action string

const (
	ActionModerateComments Action = "comments:moderate"
	ActionWriteContent     Action = "content:write"
	ActionManageContent    Action = "content:manage"
	ActionManageUsers      Action = "users:manage"
	ActionViewAnalytics    Action = "analytics:view"
)

// IsPrivileged reports whether the actor may see unapproved comments
// and perform moderation.
func (a Actor) IsPrivileged() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleEditor
}

// Can is the single capability check used by every handler, replacing
// scattered role-string comparisons.
func Can(actor Actor, action Action) bool {
	switch action {
	case ActionModerateComments, ActionManageContent, ActionViewAnalytics:
		return actor.IsPrivileged()
	case ActionManageUsers:
		return actor.Role == models.RoleAdmin
	case ActionWriteContent:
		switch actor.Role {
		case models.RoleAdmin, models.RoleEditor, models.RoleAuthor, models.RoleReporter:
			return true
		}
	}
	return false
}

// CanTouchComment reports whether the actor may edit or delete a comment:
// the original submitter (matched by email) or a privileged moderator.
func CanTouchComment(actor Actor, ownerEmail string) bool {
	if actor.IsPrivileged() {
		return true
	}
	return actor.Email != "" && strings.EqualFold(actor.Email, ownerEmail)
}
