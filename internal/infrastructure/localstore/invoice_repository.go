package localstore

import (
	"sort"

	"github.com/tu-usuario/invoicer-api/internal/domain"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
	"github.com/tu-usuario/invoicer-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre la colección invoices.
type InvoiceRepo struct {
	s *Store
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(s *Store) *InvoiceRepo {
	return &InvoiceRepo{s: s}
}

// Create añade la factura a la colección (append-only en creación).
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	records = append(records, invoiceToRecord(invoice))
	return r.s.save(invoicesFile, records)
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return invoiceFromRecord(rec), nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve todas las facturas, más recientes primero.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Invoice, 0, len(records))
	for _, rec := range records {
		out = append(out, invoiceFromRecord(rec))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update reemplaza la factura con el mismo ID (transición de estado).
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == invoice.ID {
			records[i] = invoiceToRecord(invoice)
			return r.s.save(invoicesFile, records)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la factura (borrado explícito del usuario, cualquier estado).
func (r *InvoiceRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == id {
			records = append(records[:i], records[i+1:]...)
			return r.s.save(invoicesFile, records)
		}
	}
	return domain.ErrNotFound
}

func (r *InvoiceRepo) all() ([]invoiceRecord, error) {
	var records []invoiceRecord
	if err := r.s.load(invoicesFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}
