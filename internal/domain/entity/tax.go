package entity

import "github.com/shopspring/decimal"

// TaxBundle agrupa los cuatro componentes de impuesto GST (India) de un producto.
// CGST y SGST son el par intraestatal simétrico, IGST el impuesto interestatal y
// Cess el recargo. Todos son porcentajes no negativos e independientes: el modelo
// no fuerza exclusividad entre el par CGST/SGST y el IGST, simplemente los suma.
type TaxBundle struct {
	CGST decimal.Decimal
	SGST decimal.Decimal
	IGST decimal.Decimal
	Cess decimal.Decimal
}

// CombinedRate devuelve la tasa combinada en porcentaje: CGST + SGST + IGST + Cess.
// No valida cota superior; un bundle que suma más de 100% es aceptado tal cual.
func (t TaxBundle) CombinedRate() decimal.Decimal {
	return t.CGST.Add(t.SGST).Add(t.IGST).Add(t.Cess)
}
