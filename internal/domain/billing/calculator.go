// Package billing contiene los servicios de dominio puros del cálculo de
// facturas: importes por línea, totales de factura y estado de pago por
// cliente. Toda la aritmética monetaria usa decimal (nunca float64) y el
// redondeo a 2 decimales se aplica solo al agregar/presentar, nunca en
// cálculos intermedios, para no acumular error de redondeo entre líneas.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// LineAmounts desglose de una línea: base, impuesto y total.
type LineAmounts struct {
	Subtotal  decimal.Decimal // qty × precio unitario
	TaxAmount decimal.Decimal // subtotal × tasa / 100
	Total     decimal.Decimal // subtotal + impuesto
}

// ComputeLine calcula el desglose de una línea a partir de cantidad, precio
// unitario y tasa combinada en porcentaje:
//
//	subtotal  = qty × unitPrice
//	taxAmount = subtotal × ratePercent / 100
//	total     = subtotal + taxAmount
//
// Los importes se devuelven sin redondear (ver RoundMoney).
func ComputeLine(qty int64, unitPrice, ratePercent decimal.Decimal) LineAmounts {
	subtotal := decimal.NewFromInt(qty).Mul(unitPrice)
	taxAmount := subtotal.Mul(ratePercent).Div(hundred)
	return LineAmounts{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}

// InvoiceTotals totales agregados de una factura.
// Invariante: GrandTotal = Subtotal + TaxTotal, exacto.
type InvoiceTotals struct {
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
}

// SumLines agrega las líneas de una factura:
//
//	subtotal = Σ qty × precio
//	taxTotal = Σ (total línea − qty × precio)
//
// El redondeo a 2 decimales se aplica aquí, una vez sumado todo.
func SumLines(lines []entity.LineItem) InvoiceTotals {
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for _, l := range lines {
		base := decimal.NewFromInt(l.Quantity).Mul(l.UnitPrice)
		subtotal = subtotal.Add(base)
		taxTotal = taxTotal.Add(l.Total.Sub(base))
	}
	subtotal = RoundMoney(subtotal)
	taxTotal = RoundMoney(taxTotal)
	return InvoiceTotals{
		Subtotal:   subtotal,
		TaxTotal:   taxTotal,
		GrandTotal: subtotal.Add(taxTotal),
	}
}

// RoundMoney redondea un importe a 2 decimales (política de presentación y
// agregación; los cálculos intermedios no pasan por aquí).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
