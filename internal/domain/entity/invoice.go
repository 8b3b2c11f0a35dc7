package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. La transición expuesta es una sola: pending → paid
// (marcar pagada estampa PaidAt). No existe operación de reversa; el borrado
// es una eliminación terminal válida desde cualquier estado.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice representa la cabecera de una factura con sus líneas embebidas.
// Las líneas son un snapshot inmutable tomado al guardar; los totales cumplen
// siempre GrandTotal = Subtotal + TaxTotal.
type Invoice struct {
	ID         string
	Number     string // consecutivo legible, ej. "INV-0008"
	ClientID   string
	ClientName string // copia del nombre al momento de facturar
	Lines      []LineItem
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	IssueDate  time.Time
	DueDate    *time.Time
	Status     string
	PaidAt     *time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FormatInvoiceNumber renderiza el consecutivo con el prefijo y relleno
// estándar: 8 → "INV-0008". Consecutivos de más de cuatro dígitos no se
// truncan: 12345 → "INV-12345".
func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("INV-%04d", n)
}
