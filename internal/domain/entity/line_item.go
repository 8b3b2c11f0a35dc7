package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de factura.
// ProductID es la referencia al producto de origen (vacía si la línea es libre);
// Name, UnitPrice y TaxRate son copias tomadas al seleccionar el producto, no
// referencias vivas: si el producto se edita o se borra del catálogo después,
// la línea conserva sus valores.
type LineItem struct {
	ID        string
	ProductID string
	Name      string
	Quantity  int64           // entero positivo
	UnitPrice decimal.Decimal // snapshot del precio al seleccionar
	TaxRate   decimal.Decimal // tasa combinada en porcentaje, snapshot
	Total     decimal.Decimal // qty × precio × (1 + tasa/100)
}
