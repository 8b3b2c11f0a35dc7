// Package analytics contiene los casos de uso del dashboard: KPIs y la serie
// de ingresos mensuales para el gráfico de barras.
package analytics

import (
	"github.com/shopspring/decimal"

	domainbilling "github.com/tu-usuario/invoicer-api/internal/domain/billing"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
)

// monthLabels etiquetas fijas Ene→Dic del año natural (no relativas al mes
// actual ni al rango de fechas de las facturas).
var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthRevenue un mes de la serie de ingresos.
type MonthRevenue struct {
	Label   string
	Revenue decimal.Decimal
}

// BuildMonthlySeries agrega las facturas pagadas en 12 cubetas mensuales
// fijas Jan→Dec. Función pura e idempotente:
//
//   - Solo contribuyen facturas con estado paid.
//   - Cada factura suma su GrandTotal a la cubeta del mes de su fecha de
//     emisión (no la de pago); varias facturas del mismo mes se acumulan.
//   - Meses sin contribuciones reportan 0.
func BuildMonthlySeries(invoices []*entity.Invoice) []MonthRevenue {
	buckets := [12]decimal.Decimal{}
	for i := range buckets {
		buckets[i] = decimal.Zero
	}
	for _, inv := range invoices {
		if inv.Status != entity.InvoiceStatusPaid {
			continue
		}
		m := int(inv.IssueDate.Month()) - 1
		buckets[m] = buckets[m].Add(inv.GrandTotal)
	}
	series := make([]MonthRevenue, 12)
	for i, label := range monthLabels {
		series[i] = MonthRevenue{Label: label, Revenue: domainbilling.RoundMoney(buckets[i])}
	}
	return series
}
