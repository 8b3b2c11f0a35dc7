package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoicer-api/internal/application/dto"
	domainbilling "github.com/tu-usuario/invoicer-api/internal/domain/billing"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
	"github.com/tu-usuario/invoicer-api/internal/domain/repository"
)

const dashboardRecentInvoices = 5 // facturas en el widget de actividad reciente

// DashboardUseCase genera el resumen del dashboard: tarjetas de KPIs, serie
// de ingresos mensuales y actividad reciente. Todo son proyecciones puras
// sobre las colecciones persistidas; nada se cachea.
type DashboardUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(invoiceRepo repository.InvoiceRepository, clientRepo repository.ClientRepository) *DashboardUseCase {
	return &DashboardUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.List("")
	if err != nil {
		return nil, err
	}

	totalRevenue := decimal.Zero
	pending, paid := 0, 0
	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			paid++
			totalRevenue = totalRevenue.Add(inv.GrandTotal)
		case entity.InvoiceStatusPending:
			pending++
		}
	}

	series := BuildMonthlySeries(invoices)
	monthly := make([]dto.MonthRevenueDTO, 0, len(series))
	for _, m := range series {
		monthly = append(monthly, dto.MonthRevenueDTO{Month: m.Label, Revenue: m.Revenue})
	}

	// invoiceRepo.List devuelve más recientes primero
	recent := make([]dto.RecentInvoiceDTO, 0, dashboardRecentInvoices)
	for _, inv := range invoices {
		if len(recent) == dashboardRecentInvoices {
			break
		}
		recent = append(recent, dto.RecentInvoiceDTO{
			ID:         inv.ID,
			Number:     inv.Number,
			ClientName: inv.ClientName,
			GrandTotal: inv.GrandTotal,
			IssueDate:  inv.IssueDate.Format("2006-01-02"),
			Status:     inv.Status,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:   domainbilling.RoundMoney(totalRevenue),
		InvoicesSent:   len(invoices),
		PendingCount:   pending,
		PaidCount:      paid,
		ClientCount:    len(clients),
		MonthlyRevenue: monthly,
		RecentInvoices: recent,
	}, nil
}
