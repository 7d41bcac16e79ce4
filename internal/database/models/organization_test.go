package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugFromName(t *testing.T) {
	cases := map[string]string{
		"Acme Telecom":       "acme-telecom",
		"Acme  Telecom Inc.": "acme-telecom-inc",
		"ACME":               "acme",
		"--trimmed--":        "trimmed",
		"snake_case kept":    "snake_case-kept",
		"Ünïcödé Org":        "n-c-d-org",
		"!!!":                "",
	}
	for name, expected := range cases {
		assert.Equal(t, expected, SlugFromName(name), "name: %q", name)
	}
}

func TestPremiumPlan(t *testing.T) {
	assert.False(t, (&Organization{Plan: PlanFree}).PremiumPlan())
	assert.False(t, (&Organization{Plan: PlanBasic}).PremiumPlan())
	assert.True(t, (&Organization{Plan: PlanPremium}).PremiumPlan())
	assert.True(t, (&Organization{Plan: PlanEnterprise}).PremiumPlan())
}

func TestNormalizeItemStatus(t *testing.T) {
	assert.Equal(t, "inactive", NormalizeItemStatus("completed"))
	assert.Equal(t, "archived", NormalizeItemStatus("failed"))
	assert.Equal(t, "active", NormalizeItemStatus("active"))
	assert.Equal(t, "pending", NormalizeItemStatus("pending"))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, PlanEnterprise.IsValid())
	assert.False(t, OrganizationPlan("platinum").IsValid())

	assert.True(t, RoleAgent.IsValid())
	assert.False(t, UserRole("superuser").IsValid())

	assert.True(t, ItemStatusArchived.IsValid())
	assert.False(t, ItemStatus("completed").IsValid())

	assert.True(t, IsValidItemCategory("communication"))
	assert.False(t, IsValidItemCategory("gardening"))
}
