package service

import (
	"errors"
	"fmt"
	"time"

	"crm-dashboard-backend/internal/database/models"
	apperrors "crm-dashboard-backend/internal/errors"
	"crm-dashboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pagination bounds for item listings
const (
	DefaultPerPage = 25
	MaxPerPage     = 100
)

// ItemService handles business logic for items
type ItemService struct {
	repo      repository.ItemRepositoryInterface
	validator *validator.Validate
}

// NewItemService creates a new item service
func NewItemService(repo repository.ItemRepositoryInterface, validator *validator.Validate) *ItemService {
	return &ItemService{
		repo:      repo,
		validator: validator,
	}
}

// ListItemsRequest carries the full item filter surface. Preset and explicit
// date ranges are mutually exclusive; the preset wins when both are given.
type ListItemsRequest struct {
	Search     string
	Statuses   []string
	Categories []string
	DateRange  string
	StartDate  string
	EndDate    string
	AgentID    string
	Page       int
	PerPage    int
}

// CreateItemRequest represents the request to create an item
type CreateItemRequest struct {
	Name        string                 `json:"name" validate:"required,min=1,max=255"`
	Description string                 `json:"description,omitempty"`
	Category    string                 `json:"category" validate:"required"`
	Status      string                 `json:"status,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateItemRequest represents the request to update an item; nil fields are
// left untouched
type UpdateItemRequest struct {
	Name        *string                `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string                `json:"description,omitempty"`
	Category    *string                `json:"category,omitempty"`
	Status      *string                `json:"status,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ItemResponse represents the response for item operations
type ItemResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Category    string                 `json:"category"`
	Status      string                 `json:"status"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedBy   string                 `json:"created_by,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// PaginationResponse describes one page of a listing
type PaginationResponse struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	PerPage     int   `json:"per_page"`
}

// ListItemsResponse is the items listing envelope
type ListItemsResponse struct {
	Items          []ItemResponse               `json:"items"`
	Pagination     PaginationResponse           `json:"pagination"`
	FiltersApplied map[string]interface{}       `json:"filters_applied"`
	Aggregations   *repository.ItemAggregations `json:"aggregations"`
}

// List returns one filtered, paginated page of the organization's items
// plus aggregations over the whole filtered set
func (s *ItemService) List(org *models.Organization, req *ListItemsRequest) (*ListItemsResponse, error) {
	filters, filtersApplied, err := s.resolveFilters(req)
	if err != nil {
		return nil, err
	}

	page, perPage := clampPagination(req.Page, req.PerPage)
	offset := (page - 1) * perPage

	orgID := organizationID(org)
	items, total, err := s.repo.List(orgID, *filters, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	aggregations, err := s.repo.Aggregations(orgID, *filters)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate items: %w", err)
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *toItemResponse(&items[i]))
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return &ListItemsResponse{
		Items: responses,
		Pagination: PaginationResponse{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalCount:  total,
			PerPage:     perPage,
		},
		FiltersApplied: filtersApplied,
		Aggregations:   aggregations,
	}, nil
}

// Count counts the organization's items
func (s *ItemService) Count(org *models.Organization) (int64, error) {
	return s.repo.Count(organizationID(org))
}

// GetByID retrieves one item of the organization
func (s *ItemService) GetByID(org *models.Organization, id uuid.UUID) (*ItemResponse, error) {
	if org == nil {
		return nil, apperrors.ErrItemNotFound
	}
	item, err := s.repo.GetByID(org.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return toItemResponse(item), nil
}

// Create creates an item owned by the organization and attributed to the
// current user
func (s *ItemService) Create(org *models.Organization, user *models.User, req *CreateItemRequest) (*ItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("item", err.Error())
	}
	if !models.IsValidItemCategory(req.Category) {
		return nil, apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", req.Category))
	}

	status := models.ItemStatusActive
	if req.Status != "" {
		normalized := models.ItemStatus(models.NormalizeItemStatus(req.Status))
		if !normalized.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
		}
		status = normalized
	}

	item := &models.Item{
		OrganizationID: org.ID,
		CreatedByID:    user.ID,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Status:         status,
		Metadata:       models.JSONMap(req.Metadata),
	}
	if err := s.repo.Create(item); err != nil {
		return nil, apperrors.NewValidationError("item", err.Error())
	}

	item.CreatedBy = user
	return toItemResponse(item), nil
}

// Update applies a partial update to one item of the organization
func (s *ItemService) Update(org *models.Organization, id uuid.UUID, req *UpdateItemRequest) (*ItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("item", err.Error())
	}

	item, err := s.repo.GetByID(org.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		if !models.IsValidItemCategory(*req.Category) {
			return nil, apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", *req.Category))
		}
		item.Category = *req.Category
	}
	if req.Status != nil {
		normalized := models.ItemStatus(models.NormalizeItemStatus(*req.Status))
		if !normalized.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", *req.Status))
		}
		item.Status = normalized
	}
	if req.Metadata != nil {
		item.Metadata = models.JSONMap(req.Metadata)
	}

	if err := s.repo.Update(item); err != nil {
		return nil, apperrors.NewValidationError("item", err.Error())
	}
	return toItemResponse(item), nil
}

// Delete removes one item of the organization
func (s *ItemService) Delete(org *models.Organization, id uuid.UUID) error {
	if _, err := s.repo.GetByID(org.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrItemNotFound
		}
		return fmt.Errorf("failed to get item: %w", err)
	}
	return s.repo.Delete(org.ID, id)
}

// resolveFilters turns the request surface into concrete repository filters
// and the filters_applied echo for the response
func (s *ItemService) resolveFilters(req *ListItemsRequest) (*repository.ItemFilters, map[string]interface{}, error) {
	filters := &repository.ItemFilters{Search: req.Search}
	applied := map[string]interface{}{}

	if req.Search != "" {
		applied["search"] = req.Search
	}

	if len(req.Statuses) > 0 {
		statuses := make([]string, 0, len(req.Statuses))
		for _, raw := range req.Statuses {
			normalized := models.NormalizeItemStatus(raw)
			if !models.ItemStatus(normalized).IsValid() {
				return nil, nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", raw))
			}
			statuses = append(statuses, normalized)
		}
		filters.Statuses = statuses
		applied["status"] = req.Statuses
	}

	if len(req.Categories) > 0 {
		for _, category := range req.Categories {
			if !models.IsValidItemCategory(category) {
				return nil, nil, apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", category))
			}
		}
		filters.Categories = req.Categories
		applied["category"] = req.Categories
	}

	// Preset wins over an explicit range when both are supplied
	if req.DateRange != "" {
		start, end, ok := ResolveDateRangePreset(req.DateRange, time.Now())
		if !ok {
			return nil, nil, apperrors.NewValidationError("date_range", fmt.Sprintf("unknown preset %q", req.DateRange))
		}
		filters.StartDate = &start
		filters.EndDate = &end
		applied["date_range"] = req.DateRange
	} else {
		if req.StartDate != "" {
			start, err := parseTimestamp(req.StartDate)
			if err != nil {
				return nil, nil, apperrors.NewValidationError("start_date", err.Error())
			}
			filters.StartDate = &start
			applied["start_date"] = req.StartDate
		}
		if req.EndDate != "" {
			end, err := parseTimestamp(req.EndDate)
			if err != nil {
				return nil, nil, apperrors.NewValidationError("end_date", err.Error())
			}
			filters.EndDate = &end
			applied["end_date"] = req.EndDate
		}
	}

	if req.AgentID != "" {
		agentID, err := uuid.Parse(req.AgentID)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("agent_id", "must be a valid UUID")
		}
		filters.AgentID = &agentID
		applied["agent_id"] = req.AgentID
	}

	return filters, applied, nil
}

// clampPagination enforces page >= 1 and 1 <= per_page <= 100
func clampPagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// parseTimestamp accepts RFC3339 timestamps and bare dates
func parseTimestamp(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, expected RFC3339 or YYYY-MM-DD", value)
}

func organizationID(org *models.Organization) *uuid.UUID {
	if org == nil {
		return nil
	}
	return &org.ID
}

func toItemResponse(item *models.Item) *ItemResponse {
	resp := &ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Status:      string(item.Status),
		Metadata:    map[string]interface{}(item.Metadata),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.CreatedBy != nil {
		resp.CreatedBy = item.CreatedBy.DisplayName()
	}
	return resp
}
