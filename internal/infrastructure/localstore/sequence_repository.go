package localstore

import (
	"github.com/tu-usuario/invoicer-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador de consecutivos de factura persistido en
// invoice_number.json. El ciclo leer-incrementar-escribir corre completo bajo
// el mutex del store, de modo que dos creaciones concurrentes nunca reciben
// el mismo consecutivo.
type SequenceRepo struct {
	s *Store
}

// NewSequenceRepository construye el adaptador.
func NewSequenceRepository(s *Store) *SequenceRepo {
	return &SequenceRepo{s: s}
}

// NextValue incrementa el contador y devuelve el nuevo valor (primera
// asignación: 1).
func (r *SequenceRepo) NextValue() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var current int64
	if err := r.s.load(counterFile, &current); err != nil {
		return 0, err
	}
	current++
	if err := r.s.save(counterFile, current); err != nil {
		return 0, err
	}
	return current, nil
}

// Current devuelve el último valor asignado sin consumir uno nuevo.
func (r *SequenceRepo) Current() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var current int64
	if err := r.s.load(counterFile, &current); err != nil {
		return 0, err
	}
	return current, nil
}
