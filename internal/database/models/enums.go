package models

// OrganizationPlan defines the subscription plans for organizations
type OrganizationPlan string

const (
	PlanFree       OrganizationPlan = "free"
	PlanBasic      OrganizationPlan = "basic"
	PlanPremium    OrganizationPlan = "premium"
	PlanEnterprise OrganizationPlan = "enterprise"
)

// IsValid checks if the OrganizationPlan is valid
func (p OrganizationPlan) IsValid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPremium, PlanEnterprise:
		return true
	}
	return false
}

// UserRole defines the ordered privilege roles within an organization
type UserRole string

const (
	RoleOwner UserRole = "owner"
	RoleAdmin UserRole = "admin"
	RoleAgent UserRole = "agent"
	RoleUser  UserRole = "user"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleAgent, RoleUser:
		return true
	}
	return false
}

// ItemStatus defines the lifecycle states of an item.
// For call-semantics reporting "inactive" reads as completed and
// "archived" reads as failed.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
	ItemStatusArchived ItemStatus = "archived"
)

// IsValid checks if the ItemStatus is valid
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusActive, ItemStatusInactive, ItemStatusArchived:
		return true
	}
	return false
}

// NormalizeItemStatus translates the reporting aliases "completed" and
// "failed" to the stored status values. Unknown values pass through.
func NormalizeItemStatus(status string) string {
	switch status {
	case "completed":
		return string(ItemStatusInactive)
	case "failed":
		return string(ItemStatusArchived)
	default:
		return status
	}
}

// ItemCategories is the fixed set of valid item categories
var ItemCategories = []string{
	"productivity",
	"communication",
	"analytics",
	"automation",
	"integration",
	"security",
	"development",
	"design",
	"marketing",
	"sales",
}

// IsValidItemCategory checks membership in the fixed category set
func IsValidItemCategory(category string) bool {
	for _, c := range ItemCategories {
		if c == category {
			return true
		}
	}
	return false
}
