package auth

import (
	"errors"
	"fmt"
	"time"

	"crm-dashboard-backend/internal/database/models"
	apperrors "crm-dashboard-backend/internal/errors"
	"crm-dashboard-backend/internal/logger"
	"crm-dashboard-backend/internal/repository"

	"gorm.io/gorm"
)

// UserSyncService reconciles platform identities against the local user and
// organization store. It is the only code path that creates or updates User
// rows; request handlers never do.
type UserSyncService struct {
	db       *gorm.DB
	orgRepo  *repository.OrganizationRepository
	userRepo *repository.UserRepository
	log      *logger.Logger
}

// NewUserSyncService creates a user sync service
func NewUserSyncService(db *gorm.DB, orgRepo *repository.OrganizationRepository, userRepo *repository.UserRepository) *UserSyncService {
	return &UserSyncService{
		db:       db,
		orgRepo:  orgRepo,
		userRepo: userRepo,
		log:      logger.New().WithField("component", "user_sync"),
	}
}

// Sync materializes the identity as a local User, creating or updating as
// needed. orgContext, when non-nil, pins the expected tenant: an existing
// user bound to a different organization fails with ErrOrganizationMismatch
// rather than being silently reassigned. The whole reconciliation runs in
// one transaction so a failure never leaves a half-written user/organization
// pair.
func (s *UserSyncService) Sync(identity *Identity, orgContext *models.Organization) (*models.User, error) {
	if identity == nil || identity.ExternalUserID == "" {
		return nil, apperrors.NewSyncError("identity record has no external user id")
	}

	var synced *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		orgRepo := s.orgRepo.WithTx(tx)

		existing, err := userRepo.GetByVoipappzID(identity.ExternalUserID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewSyncError("user lookup failed: %v", err)
		}

		if existing != nil {
			synced, err = s.update(userRepo, orgRepo, existing, identity, orgContext)
		} else {
			synced, err = s.create(userRepo, orgRepo, identity, orgContext)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return synced, nil
}

// SyncBatch syncs identities sequentially against one fixed organization.
// The first failure stops the batch; already-synced users are returned
// alongside the error.
func (s *UserSyncService) SyncBatch(identities []Identity, org *models.Organization) ([]*models.User, error) {
	users := make([]*models.User, 0, len(identities))
	for i := range identities {
		user, err := s.Sync(&identities[i], org)
		if err != nil {
			return users, fmt.Errorf("batch sync stopped at record %d: %w", i, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *UserSyncService) update(userRepo *repository.UserRepository, orgRepo *repository.OrganizationRepository, user *models.User, identity *Identity, orgContext *models.Organization) (*models.User, error) {
	if orgContext != nil && user.OrganizationID != nil && *user.OrganizationID != orgContext.ID {
		return nil, apperrors.ErrOrganizationMismatch
	}

	s.applyIdentity(user, identity)

	org, err := s.resolveOrganization(orgRepo, identity, orgContext)
	if err != nil {
		return nil, err
	}
	if org != nil && (user.OrganizationID == nil || *user.OrganizationID != org.ID) {
		user.OrganizationID = &org.ID
		user.Organization = org
	}

	if err := userRepo.Update(user); err != nil {
		return nil, apperrors.NewSyncError("user update failed: %v", err)
	}
	return user, nil
}

func (s *UserSyncService) create(userRepo *repository.UserRepository, orgRepo *repository.OrganizationRepository, identity *Identity, orgContext *models.Organization) (*models.User, error) {
	org, err := s.resolveOrganization(orgRepo, identity, orgContext)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		VoipappzUserID: identity.ExternalUserID,
		Active:         true,
	}
	s.applyIdentity(user, identity)
	if org != nil {
		user.OrganizationID = &org.ID
		user.Organization = org
	}

	if err := userRepo.Create(user); err != nil {
		return nil, apperrors.NewSyncError("user creation failed: %v", err)
	}

	s.log.WithFields(map[string]interface{}{
		"voipappz_user_id": identity.ExternalUserID,
		"email":            identity.Email,
	}).Info("created user from platform identity")

	return user, nil
}

// applyIdentity overwrites the mutable fields from the incoming identity
func (s *UserSyncService) applyIdentity(user *models.User, identity *Identity) {
	user.Email = identity.Email
	user.FirstName = identity.FirstName
	user.LastName = identity.LastName
	if models.UserRole(identity.Role).IsValid() {
		user.Role = models.UserRole(identity.Role)
	} else {
		user.Role = models.RoleUser
	}
	user.Active = true
	user.Permissions = models.StringList(identity.Permissions)

	if user.VoipappzMetadata == nil {
		user.VoipappzMetadata = models.JSONMap{}
	}
	user.VoipappzMetadata["last_synced_at"] = time.Now().UTC().Format(time.RFC3339)
	user.VoipappzMetadata["organization_id"] = identity.OrganizationID
	user.VoipappzMetadata["organization_name"] = identity.OrganizationName
}

// resolveOrganization picks the tenant for a synced user: the explicit
// context when given, else the local organization matching the identity's
// external organization id, created on first sight. Organization creation
// failure degrades to no organization instead of failing the sync.
func (s *UserSyncService) resolveOrganization(orgRepo *repository.OrganizationRepository, identity *Identity, orgContext *models.Organization) (*models.Organization, error) {
	if orgContext != nil {
		return orgContext, nil
	}
	if identity.OrganizationID == "" {
		return nil, nil
	}

	org, err := orgRepo.GetByVoipappzID(identity.OrganizationID)
	if err == nil {
		return org, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewSyncError("organization lookup failed: %v", err)
	}

	name := identity.OrganizationName
	if name == "" {
		name = fmt.Sprintf("Organization %s", identity.OrganizationID)
	}
	voipappzOrgID := identity.OrganizationID
	org = &models.Organization{
		Name:                   name,
		Plan:                   planForRole(identity.Role),
		Active:                 true,
		VoipappzOrganizationID: &voipappzOrgID,
	}
	if err := orgRepo.Create(org); err != nil {
		s.log.WithField("voipappz_organization_id", identity.OrganizationID).
			Warnf("organization creation failed, continuing without organization: %v", err)
		return nil, nil
	}
	return org, nil
}

// planForRole derives the plan of a freshly created organization from the
// role of the user that brought it in
func planForRole(role string) models.OrganizationPlan {
	switch models.UserRole(role) {
	case models.RoleOwner:
		return models.PlanPremium
	case models.RoleAdmin:
		return models.PlanBasic
	default:
		return models.PlanFree
	}
}
