package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// AuthorRole controls what an author may do through the admin API.
// Privileged roles (admin, editor) may moderate comments and manage
// any content; the rest only write.
type AuthorRole string

const (
	RoleAdmin    AuthorRole = "admin"
	RoleEditor   AuthorRole = "editor"
	RoleAuthor   AuthorRole = "author"
	RoleReporter AuthorRole = "reporter"
)

type AuthorStatus string

const (
	AuthorStatusActive    AuthorStatus = "active"
	AuthorStatusInactive  AuthorStatus = "inactive"
	AuthorStatusSuspended AuthorStatus = "suspended"
)

// StringList stores a list of strings as a JSON column
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid scan source")
	}
	return json.Unmarshal(bytes, l)
}

// StringMap stores a string-to-string map (e.g. social links) as JSON
type StringMap map[string]string

// Value implements the driver.Valuer interface
func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

// Scan implements the sql.Scanner interface
func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = StringMap{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid scan source")
	}
	return json.Unmarshal(bytes, m)
}

// Author represents a writer profile shown on published articles
type Author struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(100);not null" json:"name" validate:"required,min=2,max=100"`
	Email       string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Bio         string       `gorm:"type:text" json:"bio" validate:"max=1000"`
	Avatar      string       `gorm:"type:varchar(255)" json:"avatar"`
	Role        AuthorRole   `gorm:"type:varchar(20);default:author" json:"role"`
	Status      AuthorStatus `gorm:"type:varchar(20);default:active" json:"status"`
	Specialties StringList   `gorm:"type:json" json:"specialties"`
	SocialLinks StringMap    `gorm:"type:json" json:"social_links"`
	Verified    bool         `gorm:"default:false" json:"verified"`
	LastActive  *time.Time   `json:"last_active"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Author model
func (Author) TableName() string {
	return "authors"
}
