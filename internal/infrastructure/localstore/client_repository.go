package localstore

import (
	"strings"

	"github.com/tu-usuario/invoicer-api/internal/domain"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
	"github.com/tu-usuario/invoicer-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre la colección clients.
type ClientRepo struct {
	s *Store
}

// NewClientRepository construye el adaptador.
func NewClientRepository(s *Store) *ClientRepo {
	return &ClientRepo{s: s}
}

// Create añade el cliente a la colección.
func (r *ClientRepo) Create(client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	records = append(records, clientToRecord(client))
	return r.s.save(clientsFile, records)
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return clientFromRecord(rec), nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve los clientes en orden de alta; query filtra por coincidencia
// parcial del nombre de empresa sin distinguir mayúsculas.
func (r *ClientRepo) List(query string) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]*entity.Client, 0, len(records))
	for _, rec := range records {
		if q != "" && !strings.Contains(strings.ToLower(rec.CompanyName), q) {
			continue
		}
		out = append(out, clientFromRecord(rec))
	}
	return out, nil
}

// Update reemplaza el cliente con el mismo ID.
func (r *ClientRepo) Update(client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == client.ID {
			records[i] = clientToRecord(client)
			return r.s.save(clientsFile, records)
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el cliente de la colección.
func (r *ClientRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == id {
			records = append(records[:i], records[i+1:]...)
			return r.s.save(clientsFile, records)
		}
	}
	return domain.ErrNotFound
}

func (r *ClientRepo) all() ([]clientRecord, error) {
	var records []clientRecord
	if err := r.s.load(clientsFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}
