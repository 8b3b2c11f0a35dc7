package entity

import "time"

// Estados de pago derivados de un cliente. Nunca se persisten: se recalculan
// en cada lectura a partir de sus facturas (ver billing.ResolveClientStatus).
const (
	ClientStatusPaid    = "Paid"
	ClientStatusPending = "Pending"
)

// Client representa un cliente del negocio (receptor de facturas).
type Client struct {
	ID          string
	CompanyName string
	Email       string
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
