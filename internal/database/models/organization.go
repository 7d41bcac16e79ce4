package models

import (
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Organization represents the tenant root entity. Users and items belong
// to exactly one organization; deleting an organization cascades to both.
type Organization struct {
	BaseModel
	Name                    string           `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Slug                    string           `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	Plan                    OrganizationPlan `json:"plan" gorm:"type:varchar(20);not null;default:'free'"`
	Active                  bool             `json:"active" gorm:"not null;default:true"`
	VoipappzOrganizationID  *string          `json:"voipappz_organization_id,omitempty" gorm:"uniqueIndex;size:100"`
	Settings                JSONMap          `json:"settings" gorm:"type:jsonb"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Items []Item `json:"items,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9\-_]+`)
var slugDashRuns = regexp.MustCompile(`-{2,}`)

// SlugFromName builds a URL-safe slug candidate from a display name
func SlugFromName(name string) string {
	slug := strings.ToLower(name)
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// BeforeCreate generates a unique slug from the name when none is set,
// appending a numeric suffix on collision.
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if err := o.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if o.Slug != "" || o.Name == "" {
		return nil
	}

	base := SlugFromName(o.Name)
	if base == "" {
		base = "org"
	}
	candidate := base
	for counter := 1; ; counter++ {
		var count int64
		if err := tx.Model(&Organization{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = base + "-" + strconv.Itoa(counter)
	}
	o.Slug = candidate
	return nil
}

// DisplayName returns the human-readable organization name
func (o *Organization) DisplayName() string {
	return o.Name
}

// PremiumPlan reports whether the organization is on a paid top-tier plan
func (o *Organization) PremiumPlan() bool {
	return o.Plan == PlanPremium || o.Plan == PlanEnterprise
}
