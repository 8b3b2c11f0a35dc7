package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoicer-api/internal/application/analytics"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
)

func invoiceIssued(status string, issued time.Time, total string) *entity.Invoice {
	return &entity.Invoice{
		Status:     status,
		IssueDate:  issued,
		GrandTotal: decimal.RequireFromString(total),
	}
}

// Tres facturas emitidas en marzo: 100 pagada, 50 pendiente, 200 pagada.
// La cubeta de marzo suma solo las pagadas (300); los otros 11 meses quedan en 0.
func TestBuildMonthlySeries_SoloPagadasPorMesDeEmision(t *testing.T) {
	march := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	invoices := []*entity.Invoice{
		invoiceIssued(entity.InvoiceStatusPaid, march, "100"),
		invoiceIssued(entity.InvoiceStatusPending, march, "50"),
		invoiceIssued(entity.InvoiceStatusPaid, march.AddDate(0, 0, 10), "200"),
	}

	series := analytics.BuildMonthlySeries(invoices)
	require.Len(t, series, 12)

	for i, m := range series {
		if m.Label == "Mar" {
			assert.True(t, m.Revenue.Equal(decimal.NewFromInt(300)), "marzo = %s", m.Revenue)
			continue
		}
		assert.True(t, m.Revenue.IsZero(), "mes %d (%s) = %s", i, m.Label, m.Revenue)
	}
}

func TestBuildMonthlySeries_EtiquetasFijasEneDic(t *testing.T) {
	series := analytics.BuildMonthlySeries(nil)
	require.Len(t, series, 12)

	want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, m := range series {
		assert.Equal(t, want[i], m.Label)
		assert.True(t, m.Revenue.IsZero())
	}
}

// La cubeta se elige por la fecha de emisión, no por la de pago.
func TestBuildMonthlySeries_CubetaPorEmisionNoPorPago(t *testing.T) {
	issued := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	paidAt := issued.AddDate(0, 3, 0) // pagada en abril
	inv := invoiceIssued(entity.InvoiceStatusPaid, issued, "120")
	inv.PaidAt = &paidAt

	series := analytics.BuildMonthlySeries([]*entity.Invoice{inv})

	assert.True(t, series[0].Revenue.Equal(decimal.NewFromInt(120)), "enero = %s", series[0].Revenue)
	assert.True(t, series[3].Revenue.IsZero(), "abril = %s", series[3].Revenue)
}

// Función pura: dos llamadas con la misma entrada producen salidas idénticas
// y no mutan las facturas.
func TestBuildMonthlySeries_Idempotente(t *testing.T) {
	invoices := []*entity.Invoice{
		invoiceIssued(entity.InvoiceStatusPaid, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), "10.50"),
		invoiceIssued(entity.InvoiceStatusPaid, time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC), "4.25"),
	}

	first := analytics.BuildMonthlySeries(invoices)
	second := analytics.BuildMonthlySeries(invoices)

	require.Len(t, second, 12)
	for i := range first {
		assert.Equal(t, first[i].Label, second[i].Label)
		assert.True(t, first[i].Revenue.Equal(second[i].Revenue))
	}
	assert.True(t, first[6].Revenue.Equal(decimal.RequireFromString("14.75")), "julio = %s", first[6].Revenue)
}
