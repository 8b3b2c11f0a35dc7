package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
// Los cuatro componentes GST son porcentajes independientes; se aceptan
// combinaciones arbitrarias (el modelo no fuerza exclusividad CGST/SGST vs IGST).
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	IGST        decimal.Decimal `json:"igst"`
	Cess        decimal.Decimal `json:"cess"`
	DefaultQty  int64           `json:"default_qty,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest = CreateProductRequest

// ProductResponse producto en respuestas. CombinedRate y PriceWithTax son
// derivados, calculados en cada lectura.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	Cess         decimal.Decimal `json:"cess"`
	DefaultQty   int64           `json:"default_qty"`
	CombinedRate decimal.Decimal `json:"combined_rate"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
}
