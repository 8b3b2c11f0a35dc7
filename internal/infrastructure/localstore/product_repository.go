package localstore

import (
	"github.com/tu-usuario/invoicer-api/internal/domain"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
	"github.com/tu-usuario/invoicer-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre la colección items.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el adaptador.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create añade el producto al catálogo.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	records = append(records, productToRecord(product))
	return r.s.save(productsFile, records)
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return productFromRecord(rec), nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve el catálogo completo en orden de alta.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(records))
	for _, rec := range records {
		out = append(out, productFromRecord(rec))
	}
	return out, nil
}

// Update reemplaza el producto con el mismo ID.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == product.ID {
			records[i] = productToRecord(product)
			return r.s.save(productsFile, records)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el producto del catálogo. Las líneas de facturas existentes
// guardan copias de nombre, precio y tasa, así que no se ven afectadas.
func (r *ProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == id {
			records = append(records[:i], records[i+1:]...)
			return r.s.save(productsFile, records)
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepo) all() ([]productRecord, error) {
	var records []productRecord
	if err := r.s.load(productsFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}
