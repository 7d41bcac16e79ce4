package repository

import (
	"time"

	"crm-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemFilters is the concrete filter set applied to the items table.
// Status values are already normalized (aliases resolved) and date ranges
// already concrete; preset resolution happens in the service layer.
type ItemFilters struct {
	Search     string
	Statuses   []string
	Categories []string
	StartDate  *time.Time
	EndDate    *time.Time
	AgentID    *uuid.UUID
}

// StatusSummary groups item counts by call outcome for one time window
type StatusSummary struct {
	Total     int64 `json:"total_calls"`
	Completed int64 `json:"completed_calls"`
	Failed    int64 `json:"failed_calls"`
	Active    int64 `json:"active_calls"`
}

// DailyStatusCount is one row of the per-day-per-status breakdown
type DailyStatusCount struct {
	Day    string `json:"day"`
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ItemAggregations summarizes a filtered item set for reporting
type ItemAggregations struct {
	ByStatus   map[string]int64 `json:"by_status"`
	ByCategory map[string]int64 `json:"by_category"`
	ByAgent    map[string]int64 `json:"by_agent"`
	// TotalDuration is a placeholder heuristic (count x fixed average),
	// not measured duration.
	TotalDuration string `json:"total_duration"`
}

// ItemRepository handles database operations for items. Every query is
// scoped to an organization first; a nil organization yields an empty
// result set, never an unscoped query.
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ItemRepository) WithTx(tx *gorm.DB) *ItemRepository {
	return &ItemRepository{db: tx}
}

// scoped returns an item query restricted to the organization. The nil
// guard is the tenant-isolation invariant: no organization, no rows.
func (r *ItemRepository) scoped(orgID *uuid.UUID) *gorm.DB {
	query := r.db.Model(&models.Item{})
	if orgID == nil {
		return query.Where("1 = 0")
	}
	return query.Where("items.organization_id = ?", *orgID)
}

func (r *ItemRepository) filtered(orgID *uuid.UUID, f ItemFilters) *gorm.DB {
	query := r.scoped(orgID)

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where("items.name ILIKE ? OR items.description ILIKE ?", pattern, pattern)
	}
	if len(f.Statuses) > 0 {
		query = query.Where("items.status IN ?", f.Statuses)
	}
	if len(f.Categories) > 0 {
		query = query.Where("items.category IN ?", f.Categories)
	}
	if f.StartDate != nil {
		query = query.Where("items.created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		query = query.Where("items.created_at <= ?", *f.EndDate)
	}
	if f.AgentID != nil {
		query = query.Where("items.created_by_id = ?", *f.AgentID)
	}

	return query
}

// Create creates a new item
func (r *ItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

// GetByID retrieves an item of the given organization. Items of other
// tenants surface as not found.
func (r *ItemRepository) GetByID(orgID uuid.UUID, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := r.db.Preload("CreatedBy").
		First(&item, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update persists item changes
func (r *ItemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

// Delete deletes an item
func (r *ItemRepository) Delete(orgID uuid.UUID, id uuid.UUID) error {
	return r.db.Delete(&models.Item{}, "id = ? AND organization_id = ?", id, orgID).Error
}

// List returns one page of filtered items plus the total match count,
// newest first
func (r *ItemRepository) List(orgID *uuid.UUID, f ItemFilters, limit, offset int) ([]models.Item, int64, error) {
	var total int64
	if err := r.filtered(orgID, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Item
	err := r.filtered(orgID, f).
		Preload("CreatedBy").
		Order("items.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Count counts all items of an organization
func (r *ItemRepository) Count(orgID *uuid.UUID) (int64, error) {
	var count int64
	err := r.scoped(orgID).Count(&count).Error
	return count, err
}

// CountByStatus counts items of an organization in one status
func (r *ItemRepository) CountByStatus(orgID *uuid.UUID, status models.ItemStatus) (int64, error) {
	var count int64
	err := r.scoped(orgID).Where("items.status = ?", string(status)).Count(&count).Error
	return count, err
}

// Recent returns the newest items of an organization with their creators
func (r *ItemRepository) Recent(orgID *uuid.UUID, limit int) ([]models.Item, error) {
	if orgID == nil {
		return []models.Item{}, nil
	}
	var items []models.Item
	err := r.db.Preload("CreatedBy").
		Where("organization_id = ?", *orgID).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// StatusSummary groups item counts by outcome within a time window
func (r *ItemRepository) StatusSummary(orgID *uuid.UUID, start, end time.Time) (*StatusSummary, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := r.scoped(orgID).
		Select("items.status AS status, COUNT(*) AS count").
		Where("items.created_at >= ? AND items.created_at <= ?", start, end).
		Group("items.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &StatusSummary{}
	for _, row := range rows {
		summary.Total += row.Count
		switch models.ItemStatus(row.Status) {
		case models.ItemStatusActive:
			summary.Active = row.Count
		case models.ItemStatusInactive:
			summary.Completed = row.Count
		case models.ItemStatusArchived:
			summary.Failed = row.Count
		}
	}
	return summary, nil
}

// DailyCounts buckets item counts by calendar day ("2006-01-02" keys)
func (r *ItemRepository) DailyCounts(orgID *uuid.UUID, start, end time.Time) (map[string]int64, error) {
	type dayCount struct {
		Day   string
		Count int64
	}
	var rows []dayCount
	err := r.scoped(orgID).
		Select("to_char(items.created_at, 'YYYY-MM-DD') AS day, COUNT(*) AS count").
		Where("items.created_at >= ? AND items.created_at <= ?", start, end).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Day] = row.Count
	}
	return counts, nil
}

// DailyStatusCounts breaks item counts down by day and status
func (r *ItemRepository) DailyStatusCounts(orgID *uuid.UUID, start, end time.Time) ([]DailyStatusCount, error) {
	var rows []DailyStatusCount
	err := r.scoped(orgID).
		Select("to_char(items.created_at, 'YYYY-MM-DD') AS day, items.status AS status, COUNT(*) AS count").
		Where("items.created_at >= ? AND items.created_at <= ?", start, end).
		Group("day, items.status").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// HourlyCounts buckets item counts by hour of day within a time window
func (r *ItemRepository) HourlyCounts(orgID *uuid.UUID, start, end time.Time) (map[int]int64, error) {
	type hourCount struct {
		Hour  int
		Count int64
	}
	var rows []hourCount
	err := r.scoped(orgID).
		Select("EXTRACT(HOUR FROM items.created_at)::int AS hour, COUNT(*) AS count").
		Where("items.created_at >= ? AND items.created_at <= ?", start, end).
		Group("hour").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.Hour] = row.Count
	}
	return counts, nil
}

// Aggregations summarizes the filtered item set for reporting
func (r *ItemRepository) Aggregations(orgID *uuid.UUID, f ItemFilters) (*ItemAggregations, error) {
	agg := &ItemAggregations{
		ByStatus:   make(map[string]int64),
		ByCategory: make(map[string]int64),
		ByAgent:    make(map[string]int64),
	}

	type keyCount struct {
		Key   string
		Count int64
	}

	var statusRows []keyCount
	err := r.filtered(orgID, f).
		Select("items.status AS key, COUNT(*) AS count").
		Group("items.status").
		Scan(&statusRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		agg.ByStatus[row.Key] = row.Count
	}

	var categoryRows []keyCount
	err = r.filtered(orgID, f).
		Select("items.category AS key, COUNT(*) AS count").
		Group("items.category").
		Scan(&categoryRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range categoryRows {
		agg.ByCategory[row.Key] = row.Count
	}

	var agentRows []keyCount
	err = r.filtered(orgID, f).
		Select("TRIM(users.first_name || ' ' || users.last_name) AS key, COUNT(*) AS count").
		Joins("JOIN users ON users.id = items.created_by_id").
		Group("users.first_name, users.last_name").
		Scan(&agentRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range agentRows {
		agg.ByAgent[row.Key] = row.Count
	}

	var total int64
	for _, count := range agg.ByStatus {
		total += count
	}
	agg.TotalDuration = EstimateTotalDuration(total)

	return agg, nil
}
