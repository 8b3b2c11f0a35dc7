package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo.
// Price es el precio unitario base (sin impuestos); Tax los porcentajes GST.
// Las líneas de factura copian precio y tasa al seleccionar el producto, por lo
// que editar el catálogo nunca altera facturas ya creadas.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta sin impuestos
	Tax         TaxBundle
	DefaultQty  int64 // cantidad sugerida al añadir la línea (mínimo 1)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceWithTax devuelve el precio unitario con la tasa combinada aplicada.
func (p Product) PriceWithTax() decimal.Decimal {
	tax := p.Price.Mul(p.Tax.CombinedRate()).Div(decimal.NewFromInt(100))
	return p.Price.Add(tax)
}
