package dto

type DailyStatsDTO struct {
	Date  string  `json:"date" example:"2025-01-31"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type MonthlyStatsDTO struct {
	Month string  `json:"month" example:"2025-01"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type TodayStatsDTO struct {
	Date           string  `json:"date"`
	TotalPurchases int     `json:"total_purchases"`
	TotalAmount    float64 `json:"total_amount"`
	TotalItems     int     `json:"total_items"`
}
