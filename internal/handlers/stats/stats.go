package stats

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/dto"
	"github.com/rewear/rewear-pos/pkg/utils"
)

const (
	defaultDays   = 30
	defaultMonths = 12
)

//go:generate mockgen -source=stats.go -destination=mocks.go -package=stats Service
type Service interface {
	DailyStats(ctx context.Context, days int) ([]domain.DailyStat, error)
	MonthlyStats(ctx context.Context, months int) ([]domain.MonthlyStat, error)
	TodayStats(ctx context.Context) (*domain.TodayStats, error)
}

type StatsHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *StatsHandler {
	return &StatsHandler{
		purchaseService: purchaseService,
	}
}

// GetDaily godoc
//
//	@Summary		Daily revenue statistics
//	@Tags			Stats
//	@Produce		json
//	@Param			days	query		int	false	"Window in days"	default(30)
//	@Success		200		{array}		dto.DailyStatsDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stats/daily [get]
func (h *StatsHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", defaultDays)
	stats, err := h.purchaseService.DailyStats(r.Context(), days)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.DailyStatsDTO, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, dto.DailyStatsDTO{Date: s.Date, Count: s.Count, Total: s.Total})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetMonthly godoc
//
//	@Summary		Monthly revenue statistics
//	@Tags			Stats
//	@Produce		json
//	@Param			months	query		int	false	"Window in months"	default(12)
//	@Success		200		{array}		dto.MonthlyStatsDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stats/monthly [get]
func (h *StatsHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	months := queryInt(r, "months", defaultMonths)
	stats, err := h.purchaseService.MonthlyStats(r.Context(), months)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.MonthlyStatsDTO, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, dto.MonthlyStatsDTO{Month: s.Month, Count: s.Count, Total: s.Total})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetToday godoc
//
//	@Summary		Today's totals
//	@Tags			Stats
//	@Produce		json
//	@Success		200	{object}	dto.TodayStatsDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/stats/today [get]
func (h *StatsHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	stats, err := h.purchaseService.TodayStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TodayStatsDTO{
		Date:           stats.Date,
		TotalPurchases: stats.TotalPurchases,
		TotalAmount:    stats.TotalAmount,
		TotalItems:     stats.TotalItems,
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
