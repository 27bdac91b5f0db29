package models

import (
	"time"
)

// Периоды отчетов
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Request модели

// GetProfitReportRequest запрос на отчет о выручке за период,
// содержащий указанную дату
type GetProfitReportRequest struct {
	Period string    `json:"period"` // daily / weekly / monthly
	Date   time.Time `json:"date"`
}

// Response модели

// ServiceProfit выручка по одной услуге за период
type ServiceProfit struct {
	ServiceID    string `json:"serviceId"`
	ServiceName  string `json:"serviceName"`
	Count        int    `json:"count"`
	RevenueCents int64  `json:"revenueCents"`
}

// ProfitReportResponse отчет о выручке за период.
// Считается только по завершенным бронированиям.
type ProfitReportResponse struct {
	Period            string          `json:"period"`
	StartDate         string          `json:"startDate"` // "2026-09-15"
	EndDate           string          `json:"endDate"`
	CompletedCount    int             `json:"completedCount"`
	TotalRevenueCents int64           `json:"totalRevenueCents"`
	Services          []ServiceProfit `json:"services"`
}
