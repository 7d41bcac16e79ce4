// Command load_demo_data seeds organizations, users and items from a YAML
// file. Intended for development environments:
//
//	go run scripts/load_demo_data.go scripts/demo_data.yaml
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"crm-dashboard-backend/internal/config"
	"crm-dashboard-backend/internal/database"
	"crm-dashboard-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type OrganizationData struct {
	Name                   string                 `yaml:"name"`
	Plan                   string                 `yaml:"plan"`
	VoipappzOrganizationID string                 `yaml:"voipappz_organization_id,omitempty"`
	Settings               map[string]interface{} `yaml:"settings,omitempty"`
}

type UserData struct {
	OrganizationName string   `yaml:"organization_name"`
	Email            string   `yaml:"email"`
	FirstName        string   `yaml:"first_name"`
	LastName         string   `yaml:"last_name"`
	Role             string   `yaml:"role"`
	VoipappzUserID   string   `yaml:"voipappz_user_id"`
	Permissions      []string `yaml:"permissions,omitempty"`
}

type ItemData struct {
	OrganizationName string `yaml:"organization_name"`
	CreatedByEmail   string `yaml:"created_by_email"`
	Name             string `yaml:"name"`
	Description      string `yaml:"description,omitempty"`
	Category         string `yaml:"category"`
	Status           string `yaml:"status"`
	AgeDays          int    `yaml:"age_days,omitempty"`
}

type DemoData struct {
	Organizations []OrganizationData `yaml:"organizations"`
	Users         []UserData         `yaml:"users"`
	Items         []ItemData         `yaml:"items"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: load_demo_data <demo_data.yaml>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}
	var data DemoData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	if err := seed(db, &data); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeded %d organizations, %d users, %d items",
		len(data.Organizations), len(data.Users), len(data.Items))
}

func seed(db *gorm.DB, data *DemoData) error {
	orgsByName := make(map[string]*models.Organization)
	usersByEmail := make(map[string]*models.User)

	return db.Transaction(func(tx *gorm.DB) error {
		for _, orgData := range data.Organizations {
			org := &models.Organization{
				Name:   orgData.Name,
				Plan:   models.OrganizationPlan(orgData.Plan),
				Active: true,
			}
			if !org.Plan.IsValid() {
				org.Plan = models.PlanFree
			}
			if orgData.VoipappzOrganizationID != "" {
				voipappzID := orgData.VoipappzOrganizationID
				org.VoipappzOrganizationID = &voipappzID
			}
			if orgData.Settings != nil {
				org.Settings = models.JSONMap(orgData.Settings)
			}
			if err := tx.Create(org).Error; err != nil {
				return fmt.Errorf("organization %q: %w", orgData.Name, err)
			}
			orgsByName[orgData.Name] = org
		}

		for _, userData := range data.Users {
			org, ok := orgsByName[userData.OrganizationName]
			if !ok {
				return fmt.Errorf("user %q references unknown organization %q", userData.Email, userData.OrganizationName)
			}
			role := models.UserRole(userData.Role)
			if !role.IsValid() {
				role = models.RoleUser
			}
			user := &models.User{
				OrganizationID: &org.ID,
				Email:          userData.Email,
				FirstName:      userData.FirstName,
				LastName:       userData.LastName,
				Role:           role,
				Active:         true,
				VoipappzUserID: userData.VoipappzUserID,
				Permissions:    models.StringList(userData.Permissions),
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("user %q: %w", userData.Email, err)
			}
			usersByEmail[userData.Email] = user
		}

		for i, itemData := range data.Items {
			org, ok := orgsByName[itemData.OrganizationName]
			if !ok {
				return fmt.Errorf("item %d references unknown organization %q", i, itemData.OrganizationName)
			}
			creator, ok := usersByEmail[itemData.CreatedByEmail]
			if !ok {
				return fmt.Errorf("item %d references unknown user %q", i, itemData.CreatedByEmail)
			}
			status := models.ItemStatus(models.NormalizeItemStatus(itemData.Status))
			if !status.IsValid() {
				status = models.ItemStatusActive
			}
			item := &models.Item{
				OrganizationID: org.ID,
				CreatedByID:    creator.ID,
				Name:           itemData.Name,
				Description:    itemData.Description,
				Category:       itemData.Category,
				Status:         status,
			}
			if err := tx.Create(item).Error; err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			if itemData.AgeDays > 0 {
				createdAt := time.Now().AddDate(0, 0, -itemData.AgeDays)
				if err := tx.Model(item).UpdateColumn("created_at", createdAt).Error; err != nil {
					return fmt.Errorf("item %d backdate: %w", i, err)
				}
			}
		}
		return nil
	})
}
