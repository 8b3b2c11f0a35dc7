package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs de las tarjetas del dashboard más la serie de ingresos mensuales.
type DashboardSummaryDTO struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"` // suma de facturas pagadas
	InvoicesSent int             `json:"invoices_sent"` // total de facturas emitidas
	PendingCount int             `json:"pending_count"`
	PaidCount    int             `json:"paid_count"`
	ClientCount  int             `json:"client_count"`

	// Serie fija Ene→Dic del año natural; meses sin ingresos reportan 0.
	MonthlyRevenue []MonthRevenueDTO `json:"monthly_revenue"`

	// Últimas 5 facturas emitidas.
	RecentInvoices []RecentInvoiceDTO `json:"recent_invoices"`
}

// MonthRevenueDTO un mes de la serie de ingresos.
type MonthRevenueDTO struct {
	Month   string          `json:"month"` // "Jan" .. "Dec"
	Revenue decimal.Decimal `json:"revenue"`
}

// RecentInvoiceDTO resumen ligero para el widget de actividad reciente.
type RecentInvoiceDTO struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	ClientName string          `json:"client_name"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	IssueDate  string          `json:"issue_date"`
	Status     string          `json:"status"`
}
