package localstore

import (
	"strings"

	"github.com/tu-usuario/invoicer-api/internal/domain"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
	"github.com/tu-usuario/invoicer-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre la colección users.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el adaptador.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create añade el usuario a la colección.
func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	records = append(records, userToRecord(user))
	return r.s.save(usersFile, records)
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return userFromRecord(rec), nil
		}
	}
	return nil, domain.ErrNotFound
}

// FindByEmail busca por email sin distinguir mayúsculas; devuelve (nil, nil)
// si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if strings.EqualFold(rec.Email, email) {
			return userFromRecord(rec), nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario con el mismo ID.
func (r *UserRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	records, err := r.all()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == user.ID {
			records[i] = userToRecord(user)
			return r.s.save(usersFile, records)
		}
	}
	return domain.ErrNotFound
}

func (r *UserRepo) all() ([]userRecord, error) {
	var records []userRecord
	if err := r.s.load(usersFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}
