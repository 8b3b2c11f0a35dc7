package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
)

func TestTaxBundle_CombinedRateSumaLosCuatro(t *testing.T) {
	tax := entity.TaxBundle{
		CGST: decimal.NewFromInt(9),
		SGST: decimal.NewFromInt(9),
		IGST: decimal.NewFromInt(18),
		Cess: decimal.RequireFromString("1.5"),
	}
	// No hay exclusividad CGST/SGST vs IGST: todo se suma
	assert.True(t, tax.CombinedRate().Equal(decimal.RequireFromString("37.5")))
}

func TestTaxBundle_BundleVacioEsCero(t *testing.T) {
	assert.True(t, entity.TaxBundle{}.CombinedRate().IsZero())
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-0008", entity.FormatInvoiceNumber(8))
	assert.Equal(t, "INV-0001", entity.FormatInvoiceNumber(1))
	assert.Equal(t, "INV-12345", entity.FormatInvoiceNumber(12345))
}
