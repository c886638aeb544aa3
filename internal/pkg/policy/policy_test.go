package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GaneshPrasad14/coimbatore-express-sub000/app/models"
)

func TestIsPrivileged(t *testing.T) {
	assert.True(t, Actor{Role: models.RoleAdmin}.IsPrivileged())
	assert.True(t, Actor{Role: models.RoleEditor}.IsPrivileged())
	assert.False(t, Actor{Role: models.RoleAuthor}.IsPrivileged())
	assert.False(t, Actor{Role: models.RoleReporter}.IsPrivileged())
	assert.False(t, Actor{}.IsPrivileged())
}

func TestCan(t *testing.T) {
	editor := Actor{Role: models.RoleEditor}
	admin := Actor{Role: models.RoleAdmin}
	reporter := Actor{Role: models.RoleReporter}
	anonymous := Actor{}

	assert.True(t, Can(editor, ActionModerateComments))
	assert.True(t, Can(admin, ActionModerateComments))
	assert.False(t, Can(reporter, ActionModerateComments))
	assert.False(t, Can(anonymous, ActionModerateComments))

	assert.True(t, Can(reporter, ActionWriteContent))
	assert.False(t, Can(anonymous, ActionWriteContent))

	assert.True(t, Can(admin, ActionManageUsers))
	assert.False(t, Can(editor, ActionManageUsers))
}

func TestCanTouchComment(t *testing.T) {
	owner := "reader@example.com"

	assert.True(t, CanTouchComment(Actor{Email: "reader@example.com"}, owner))
	assert.True(t, CanTouchComment(Actor{Email: "READER@EXAMPLE.COM"}, owner))
	assert.True(t, CanTouchComment(Actor{Role: models.RoleEditor}, owner))
	assert.False(t, CanTouchComment(Actor{Email: "other@example.com"}, owner))
	assert.False(t, CanTouchComment(Actor{}, owner))

	// An anonymous actor never matches a comment without an email.
	assert.False(t, CanTouchComment(Actor{}, ""))
}
