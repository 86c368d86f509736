package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autogleam/detailing-api/internal/cache"
	domain "github.com/autogleam/detailing-api/internal/domain/appointment"
	"github.com/autogleam/detailing-api/internal/dto"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/httpresp"
	"github.com/autogleam/detailing-api/internal/middleware"
	"github.com/autogleam/detailing-api/internal/models"
	ucAppointment "github.com/autogleam/detailing-api/internal/usecase/appointment"
)

const statsCacheKey = "dashboard:stats"
const statsCacheTTL = 30 * time.Second

type DashboardHandler struct {
	db     *gorm.DB
	cache  *cache.Cache
	listUC *ucAppointment.List
}

func NewDashboardHandler(db *gorm.DB, cache *cache.Cache, listUC *ucAppointment.List) *DashboardHandler {
	return &DashboardHandler{db: db, cache: cache, listUC: listUC}
}

type dashboardStats struct {
	ClientsTotal     int64 `json:"clients_total"`
	NewClients30d    int64 `json:"new_clients_30d"`
	ServicesActive   int64 `json:"services_active"`
	TodayCount       int64 `json:"today_count"`
	TodayCompleted   int64 `json:"today_completed"`
	TodayInProgress  int64 `json:"today_in_progress"`
	TomorrowCount    int64 `json:"tomorrow_count"`
	UpcomingCount    int64 `json:"upcoming_count"`
	CompletedThisMon int64 `json:"completed_this_month"`

	RevenueThisMonth *float64 `json:"revenue_this_month"`
}

// Overview feeds the landing screen: today's and tomorrow's schedules in
// one call plus a counters block. The counters block is served from redis
// for a short window when configured; the schedule lists are always fresh.
func (h *DashboardHandler) Overview(c *gin.Context) {
	role := middleware.RoleFromContext(c)
	now := time.Now()

	today, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{
		Date: dateString(now),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", err)
		return
	}
	tomorrow, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{
		Date: dateString(now.AddDate(0, 0, 1)),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", err)
		return
	}

	for i := range today {
		dto.RedactAppointments(role, &today[i])
	}
	for i := range tomorrow {
		dto.RedactAppointments(role, &tomorrow[i])
	}

	stats, err := h.loadStats(c, now)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", err)
		return
	}
	if role == models.RoleEmployee {
		stats.RevenueThisMonth = nil
	}

	httpresp.OK(c, gin.H{
		"today":    today,
		"tomorrow": tomorrow,
		"stats":    stats,
	})
}

func (h *DashboardHandler) loadStats(c *gin.Context, now time.Time) (*dashboardStats, error) {
	ctx := c.Request.Context()

	if raw, ok := h.cache.Get(ctx, statsCacheKey); ok {
		var cached dashboardStats
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	}

	today := dateString(now)
	tomorrow := dateString(now.AddDate(0, 0, 1))
	monthStart := dateString(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	since30d := now.AddDate(0, 0, -30)

	var stats dashboardStats

	if err := h.db.Model(&models.Client{}).Count(&stats.ClientsTotal).Error; err != nil {
		return nil, err
	}
	if err := h.db.Model(&models.Client{}).
		Where("created_at >= ?", since30d).
		Count(&stats.NewClients30d).Error; err != nil {
		return nil, err
	}
	if err := h.db.Model(&models.Service{}).
		Where("is_active = ?", true).
		Count(&stats.ServicesActive).Error; err != nil {
		return nil, err
	}

	appts := func() *gorm.DB {
		return h.db.Model(&models.Appointment{})
	}
	if err := appts().Where("date = ?", today).Count(&stats.TodayCount).Error; err != nil {
		return nil, err
	}
	appts().Where("date = ? AND status = ?", today, string(domain.StatusCompleted)).Count(&stats.TodayCompleted)
	appts().Where("date = ? AND status = ?", today, string(domain.StatusInProgress)).Count(&stats.TodayInProgress)
	appts().Where("date = ?", tomorrow).Count(&stats.TomorrowCount)
	appts().Where("date >= ? AND status IN ?", today, []string{
		string(domain.StatusScheduled),
		string(domain.StatusInProgress),
	}).Count(&stats.UpcomingCount)
	appts().Where("date >= ? AND status = ?", monthStart, string(domain.StatusCompleted)).
		Count(&stats.CompletedThisMon)

	var revenue *float64
	row := h.db.Model(&models.Appointment{}).
		Select("SUM(COALESCE(price, 0) + COALESCE(extra_cost, 0))").
		Where("date >= ? AND status = ?", monthStart, string(domain.StatusCompleted)).
		Row()
	if row != nil {
		var sum *float64
		if err := row.Scan(&sum); err == nil && sum != nil {
			revenue = sum
		}
	}
	if revenue == nil {
		zero := 0.0
		revenue = &zero
	}
	stats.RevenueThisMonth = revenue

	if b, err := json.Marshal(stats); err == nil {
		h.cache.Set(ctx, statsCacheKey, string(b), statsCacheTTL)
	}

	return &stats, nil
}
