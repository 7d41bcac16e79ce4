package models

import (
	"github.com/google/uuid"
)

// Item is a tenant-scoped record, displayed to end users as a "call".
// Every item belongs to exactly one organization and one creating user.
type Item struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	CreatedByID    uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null;index"`
	Name           string     `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description    string     `json:"description" gorm:"type:text"`
	Category       string     `json:"category" gorm:"not null;size:50" validate:"required"`
	Status         ItemStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Metadata       JSONMap    `json:"metadata" gorm:"type:jsonb"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	CreatedBy    *User         `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

// TableName returns the table name for Item
func (Item) TableName() string {
	return "items"
}

// IsActive reports whether the item is an active call
func (i *Item) IsActive() bool {
	return i.Status == ItemStatusActive
}

// IsCompleted reports the call-semantics reading of the inactive status
func (i *Item) IsCompleted() bool {
	return i.Status == ItemStatusInactive
}

// IsFailed reports the call-semantics reading of the archived status
func (i *Item) IsFailed() bool {
	return i.Status == ItemStatusArchived
}

// DisplayName returns the item name for UI projections
func (i *Item) DisplayName() string {
	return i.Name
}
