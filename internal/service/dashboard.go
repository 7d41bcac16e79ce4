package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"crm-dashboard-backend/internal/database/models"
	"crm-dashboard-backend/internal/logger"
	"crm-dashboard-backend/internal/repository"

	"github.com/google/uuid"
)

const statsCacheTTL = 5 * time.Minute

// PlatformGateway is the slice of the platform client the aggregator needs
type PlatformGateway interface {
	GetLiveCalls(filters map[string]string) (map[string]interface{}, error)
	GetAgentsStatus(organizationID string) (map[string]interface{}, error)
	GetDashboardMetrics(organizationID string) (map[string]interface{}, error)
}

// GatewayFactory builds a platform gateway authenticated with the caller's
// token
type GatewayFactory func(token string) PlatformGateway

// DashboardService composes persisted query results with optional platform
// live data into the dashboard statistics payload
type DashboardService struct {
	itemRepo   repository.ItemRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	cache      StatsCache
	newGateway GatewayFactory
	log        *logger.Logger
}

// NewDashboardService creates a dashboard service
func NewDashboardService(itemRepo repository.ItemRepositoryInterface, userRepo repository.UserRepositoryInterface, cache StatsCache, newGateway GatewayFactory) *DashboardService {
	return &DashboardService{
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		cache:      cache,
		newGateway: newGateway,
		log:        logger.New().WithField("component", "dashboard"),
	}
}

// TodaysSummary is today's call outcomes plus the derived answer rate
type TodaysSummary struct {
	TotalCalls    int64   `json:"total_calls"`
	AnsweredCalls int64   `json:"answered_calls"`
	MissedCalls   int64   `json:"missed_calls"`
	ActiveCalls   int64   `json:"active_calls"`
	AnswerRate    float64 `json:"answer_rate"`
}

// LiveMetrics is the near-real-time slice of the dashboard
type LiveMetrics struct {
	ActiveCalls     int64   `json:"active_calls"`
	AgentsOnline    int64   `json:"agents_online"`
	AverageDuration string  `json:"average_duration"`
	CallsPerHour    float64 `json:"calls_per_hour"`
}

// TimeSeries carries the day-bucketed chart data
type TimeSeries struct {
	CallsThisWeek  map[string]int64              `json:"calls_this_week"`
	CallsThisMonth map[string]int64              `json:"calls_this_month"`
	DailyBreakdown []repository.DailyStatusCount `json:"daily_breakdown"`
}

// UserMetrics summarizes the organization's agents
type UserMetrics struct {
	TotalAgents          int64 `json:"total_agents"`
	ActiveAgents         int64 `json:"active_agents"`
	AgentsWithCallsToday int64 `json:"agents_with_calls_today"`
}

// CallTrends carries the derived trend metrics
type CallTrends struct {
	WeeklyTrend  float64 `json:"weekly_trend"`
	MonthlyTrend float64 `json:"monthly_trend"`
	PeakHours    []int   `json:"peak_hours"`
}

// Analytics groups the chart and trend payloads
type Analytics struct {
	TimeSeries  TimeSeries  `json:"time_series"`
	UserMetrics UserMetrics `json:"user_metrics"`
	CallTrends  CallTrends  `json:"call_trends"`
}

// PlatformData is the pass-through platform slice of the dashboard
type PlatformData struct {
	LiveCalls         map[string]interface{} `json:"live_calls"`
	AgentStatus       map[string]interface{} `json:"agent_status"`
	RealTimeMetrics   map[string]interface{} `json:"real_time_metrics"`
	PlatformConnected bool                   `json:"platform_connected"`
	IntegrationStatus string                 `json:"integration_status"`
}

// DashboardStats is the composed dashboard snapshot
type DashboardStats struct {
	RecentCalls   []ItemResponse `json:"recent_calls"`
	TodaysSummary TodaysSummary  `json:"todays_summary"`
	LiveMetrics   LiveMetrics    `json:"live_metrics"`
	Analytics     Analytics      `json:"analytics"`
	VoipappzData  PlatformData   `json:"voipappz_data"`
}

// RecentCallProjection is the compact row pushed over the live channel
type RecentCallProjection struct {
	ID       uuid.UUID `json:"id"`
	Time     string    `json:"time"`
	Number   string    `json:"number"`
	Duration string    `json:"duration"`
	Status   string    `json:"status"`
	Agent    string    `json:"agent"`
}

// LiveSnapshot is the lightweight payload broadcast on a refresh trigger
type LiveSnapshot struct {
	ActiveCalls     int64                  `json:"active_calls"`
	TotalCallsToday int64                  `json:"total_calls_today"`
	AgentsOnline    int64                  `json:"agents_online"`
	RecentCalls     []RecentCallProjection `json:"recent_calls"`
}

// queryStats is the persisted-data portion of the dashboard, cacheable per
// organization and calendar day
type queryStats struct {
	RecentCalls   []ItemResponse `json:"recent_calls"`
	TodaysSummary TodaysSummary  `json:"todays_summary"`
	LiveMetrics   LiveMetrics    `json:"live_metrics"`
	TimeSeries    TimeSeries     `json:"time_series"`
	UserMetrics   UserMetrics    `json:"user_metrics"`
	CallTrends    CallTrends     `json:"call_trends"`
}

// Stats produces the composed dashboard snapshot for the organization. The
// persisted-data portion is memoized for a few minutes; platform live data
// is fetched fresh on every call and degrades to empty data on any failure.
func (s *DashboardService) Stats(ctx context.Context, org *models.Organization, user *models.User, token string) (*DashboardStats, error) {
	stats, err := s.cachedQueryStats(ctx, org)
	if err != nil {
		return nil, err
	}

	platform := s.fetchPlatformData(org, token)

	return &DashboardStats{
		RecentCalls:   stats.RecentCalls,
		TodaysSummary: stats.TodaysSummary,
		LiveMetrics:   stats.LiveMetrics,
		Analytics: Analytics{
			TimeSeries:  stats.TimeSeries,
			UserMetrics: stats.UserMetrics,
			CallTrends:  stats.CallTrends,
		},
		VoipappzData: platform,
	}, nil
}

// Snapshot computes the lightweight live-channel payload; never cached
func (s *DashboardService) Snapshot(org *models.Organization) (*LiveSnapshot, error) {
	if org == nil {
		return &LiveSnapshot{RecentCalls: []RecentCallProjection{}}, nil
	}
	orgID := &org.ID
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	active, err := s.itemRepo.CountByStatus(orgID, models.ItemStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active items: %w", err)
	}
	today, err := s.itemRepo.StatusSummary(orgID, dayStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize today: %w", err)
	}
	agentsOnline, err := s.userRepo.CountActiveByOrganization(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	recent, err := s.itemRepo.Recent(orgID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent items: %w", err)
	}

	projections := make([]RecentCallProjection, 0, len(recent))
	for i := range recent {
		projections = append(projections, projectRecentCall(&recent[i]))
	}

	return &LiveSnapshot{
		ActiveCalls:     active,
		TotalCallsToday: today.Total,
		AgentsOnline:    agentsOnline,
		RecentCalls:     projections,
	}, nil
}

func (s *DashboardService) cachedQueryStats(ctx context.Context, org *models.Organization) (*queryStats, error) {
	key := statsCacheKey(org)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached queryStats
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.computeQueryStats(org)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(stats); err == nil {
		s.cache.Set(ctx, key, raw, statsCacheTTL)
	}
	return stats, nil
}

func statsCacheKey(org *models.Organization) string {
	orgKey := "no_org"
	if org != nil {
		orgKey = org.ID.String()
	}
	return fmt.Sprintf("dashboard_stats/%s/%s", orgKey, time.Now().Format("2006-01-02"))
}

func (s *DashboardService) computeQueryStats(org *models.Organization) (*queryStats, error) {
	orgID := organizationID(org)
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	today, err := s.itemRepo.StatusSummary(orgID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize today: %w", err)
	}

	recent, err := s.itemRepo.Recent(orgID, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent items: %w", err)
	}
	recentResponses := make([]ItemResponse, 0, len(recent))
	for i := range recent {
		recentResponses = append(recentResponses, *toItemResponse(&recent[i]))
	}

	weekStart := startOfWeek(dayStart).AddDate(0, 0, -7)
	weekSeries, err := s.itemRepo.DailyCounts(orgID, weekStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket weekly series: %w", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	monthSeries, err := s.itemRepo.DailyCounts(orgID, monthStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket monthly series: %w", err)
	}

	thisWeekStart, thisWeekEnd, _ := ResolveDateRangePreset("this_week", now)
	breakdown, err := s.itemRepo.DailyStatusCounts(orgID, thisWeekStart, thisWeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to break down current week: %w", err)
	}
	hourly, err := s.itemRepo.HourlyCounts(orgID, thisWeekStart, thisWeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket hourly counts: %w", err)
	}

	userMetrics := UserMetrics{}
	if org != nil {
		if userMetrics.TotalAgents, err = s.userRepo.CountByOrganization(org.ID); err != nil {
			return nil, fmt.Errorf("failed to count users: %w", err)
		}
		if userMetrics.ActiveAgents, err = s.userRepo.CountActiveByOrganization(org.ID); err != nil {
			return nil, fmt.Errorf("failed to count active users: %w", err)
		}
		if userMetrics.AgentsWithCallsToday, err = s.userRepo.CountAgentsWithItemsSince(org.ID, dayStart, dayEnd); err != nil {
			return nil, fmt.Errorf("failed to count agents with calls: %w", err)
		}
	}

	activeCount, err := s.itemRepo.CountByStatus(orgID, models.ItemStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active items: %w", err)
	}

	return &queryStats{
		RecentCalls: recentResponses,
		TodaysSummary: TodaysSummary{
			TotalCalls:    today.Total,
			AnsweredCalls: today.Completed,
			MissedCalls:   today.Failed,
			ActiveCalls:   today.Active,
			AnswerRate:    AnswerRate(today.Completed, today.Total),
		},
		LiveMetrics: LiveMetrics{
			ActiveCalls:     activeCount,
			AgentsOnline:    userMetrics.ActiveAgents,
			AverageDuration: averageDuration(today.Completed),
			CallsPerHour:    CallsPerHour(today.Total, now),
		},
		TimeSeries: TimeSeries{
			CallsThisWeek:  weekSeries,
			CallsThisMonth: monthSeries,
			DailyBreakdown: breakdown,
		},
		UserMetrics: userMetrics,
		CallTrends: CallTrends{
			WeeklyTrend:  Trend(weekSeries),
			MonthlyTrend: Trend(monthSeries),
			PeakHours:    PeakHours(hourly),
		},
	}, nil
}

// fetchPlatformData pulls optional platform live data; every failure
// degrades to empty data, never to an error
func (s *DashboardService) fetchPlatformData(org *models.Organization, token string) PlatformData {
	data := PlatformData{
		LiveCalls:       map[string]interface{}{},
		AgentStatus:     map[string]interface{}{},
		RealTimeMetrics: map[string]interface{}{},
	}
	if org == nil || s.newGateway == nil {
		data.IntegrationStatus = "disconnected"
		return data
	}

	gateway := s.newGateway(token)
	platformOrgID := ""
	if org.VoipappzOrganizationID != nil {
		platformOrgID = *org.VoipappzOrganizationID
	}

	if liveCalls, err := gateway.GetLiveCalls(map[string]string{"organization_id": platformOrgID}); err != nil {
		s.log.Debugf("live calls fetch failed: %v", err)
	} else if liveCalls != nil {
		data.LiveCalls = liveCalls
	}
	if agentStatus, err := gateway.GetAgentsStatus(platformOrgID); err != nil {
		s.log.Debugf("agent status fetch failed: %v", err)
	} else if agentStatus != nil {
		data.AgentStatus = agentStatus
	}
	if metrics, err := gateway.GetDashboardMetrics(platformOrgID); err != nil {
		s.log.Debugf("dashboard metrics fetch failed: %v", err)
	} else if metrics != nil {
		data.RealTimeMetrics = metrics
	}

	data.PlatformConnected = len(data.LiveCalls) > 0 || len(data.AgentStatus) > 0
	switch {
	case data.PlatformConnected:
		data.IntegrationStatus = "connected"
	case len(data.RealTimeMetrics) > 0:
		data.IntegrationStatus = "partial"
	default:
		data.IntegrationStatus = "disconnected"
	}
	return data
}

// AnswerRate is round(100 x completed/total, 1), 0 when total is 0
func AnswerRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(completed) / float64(total) * 100)
}

// CallsPerHour is today's total divided by the hours elapsed since
// midnight (at least 1), rounded to one decimal
func CallsPerHour(totalToday int64, now time.Time) float64 {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hours := now.Sub(dayStart).Hours()
	if hours < 1 {
		hours = 1
	}
	return round1(float64(totalToday) / hours)
}

// Trend compares the average of the last up-to-3 day buckets against the
// first up-to-3, as a percentage change rounded to one decimal. Fewer than
// 2 buckets or a zero baseline yield 0.
func Trend(series map[string]int64) float64 {
	if len(series) < 2 {
		return 0
	}

	days := make([]string, 0, len(series))
	for day := range series {
		days = append(days, day)
	}
	sort.Strings(days)

	values := make([]float64, 0, len(days))
	for _, day := range days {
		values = append(values, float64(series[day]))
	}

	window := 3
	if len(values) < window {
		window = len(values)
	}

	var first, last float64
	for _, v := range values[:window] {
		first += v
	}
	for _, v := range values[len(values)-window:] {
		last += v
	}
	first /= float64(window)
	last /= float64(window)

	if first == 0 {
		return 0
	}
	return round1((last - first) / first * 100)
}

// PeakHours returns the top 3 hours of day by call count, busiest first
func PeakHours(hourly map[int]int64) []int {
	type hourCount struct {
		hour  int
		count int64
	}
	ranked := make([]hourCount, 0, len(hourly))
	for hour, count := range hourly {
		if count > 0 {
			ranked = append(ranked, hourCount{hour, count})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].hour < ranked[j].hour
	})

	top := make([]int, 0, 3)
	for _, entry := range ranked {
		if len(top) == 3 {
			break
		}
		top = append(top, entry.hour)
	}
	return top
}

// averageDuration is a deterministic placeholder until real duration
// tracking lands: "0:00" with no completed calls, a fixed 3 minutes
// otherwise
func averageDuration(completedToday int64) string {
	if completedToday == 0 {
		return "0:00"
	}
	return "3:00"
}

func projectRecentCall(item *models.Item) RecentCallProjection {
	duration := item.Description
	if duration == "" {
		duration = "00:00"
	}
	agent := "System"
	if item.CreatedBy != nil {
		agent = item.CreatedBy.Email
	}
	return RecentCallProjection{
		ID:       item.ID,
		Time:     item.CreatedAt.Format("15:04"),
		Number:   item.Name,
		Duration: duration,
		Status:   string(item.Status),
		Agent:    agent,
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
