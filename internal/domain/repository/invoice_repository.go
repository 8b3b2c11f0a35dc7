package repository

import "github.com/tu-usuario/invoicer-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// Create es append-only; Update solo se usa para la transición de estado
// pending → paid (las líneas y totales son inmutables tras crear).
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// List devuelve todas las facturas, más recientes primero.
	List() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	Delete(id string) error
}
