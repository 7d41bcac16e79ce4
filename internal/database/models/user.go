package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a tenant member. Authentication is delegated to the
// VoipAppz platform; users are created and updated only through the sync
// path, never directly by request handlers.
type User struct {
	BaseModel
	OrganizationID   *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName        string     `json:"first_name" gorm:"not null;size:50" validate:"required,max=50"`
	LastName         string     `json:"last_name" gorm:"not null;size:50" validate:"required,max=50"`
	Role             UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	Active           bool       `json:"active" gorm:"not null;default:true"`
	VoipappzUserID   string     `json:"voipappz_user_id" gorm:"uniqueIndex;not null;size:100" validate:"required"`
	Permissions      StringList `json:"permissions" gorm:"type:jsonb"`
	VoipappzMetadata JSONMap    `json:"voipappz_metadata" gorm:"type:jsonb"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	CreatedItems []Item        `json:"created_items,omitempty" gorm:"foreignKey:CreatedByID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeSave stores emails lowercase so uniqueness is case-insensitive
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// FullName returns the user's full display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DisplayName falls back to the email when no name is set
func (u *User) DisplayName() string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Email
}

// IsOwner reports whether the user holds the owner role
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsAdmin reports whether the user holds at least the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleOwner || u.Role == RoleAdmin
}

// IsAgent reports whether the user holds at least the agent role
func (u *User) IsAgent() bool {
	return u.Role == RoleOwner || u.Role == RoleAdmin || u.Role == RoleAgent
}

// CanManageUser reports whether the user may manage another user.
// Self-management is always excluded.
func (u *User) CanManageUser(other *User) bool {
	if other == nil || u.ID == other.ID {
		return false
	}
	if u.Role == RoleOwner {
		return true
	}
	if u.Role != RoleAdmin {
		return false
	}
	return other.Role != RoleOwner && other.Role != RoleAdmin
}

// LastSyncedAt returns the last platform sync timestamp, if recorded
func (u *User) LastSyncedAt() *time.Time {
	if u.VoipappzMetadata == nil {
		return nil
	}
	raw, ok := u.VoipappzMetadata["last_synced_at"].(string)
	if !ok {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &ts
}
