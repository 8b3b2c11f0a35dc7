// Package localstore implementa la persistencia de la aplicación como un
// almacén de documentos JSON en disco: una colección por archivo bajo el
// directorio de datos. Cada operación es un ciclo leer-colección-completa,
// mutar en memoria y reescribir, serializado por un único mutex (el punto de
// serialización que el contador de consecutivos y las colecciones necesitan
// cuando hay más de un llamador).
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tu-usuario/invoicer-api/pkg/logger"
)

// Archivos de colección (una colección lógica por archivo).
const (
	clientsFile  = "clients.json"
	productsFile = "items.json"
	invoicesFile = "invoices.json"
	usersFile    = "users.json"
	counterFile  = "invoice_number.json"
)

// Store almacén JSON local. Crear con Open.
type Store struct {
	dir string
	mu  sync.Mutex
	log *logger.Logger
}

// Open prepara el directorio de datos y valida las colecciones existentes.
// Un archivo corrupto se reporta una sola vez aquí y la colección afectada se
// reinicia vacía; las operaciones posteriores nunca fallan por datos ilegibles.
func Open(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio de datos: %w", err)
	}
	s := &Store{dir: dir, log: log}
	for _, f := range []string{clientsFile, productsFile, invoicesFile, usersFile, counterFile} {
		s.checkCollection(f)
	}
	return s, nil
}

// checkCollection valida que el archivo sea JSON legible; si no, lo reinicia.
func (s *Store) checkCollection(file string) {
	data, err := os.ReadFile(s.path(file))
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err == nil {
		var raw json.RawMessage
		if json.Unmarshal(data, &raw) == nil {
			return
		}
		err = fmt.Errorf("JSON ilegible")
	}
	s.log.Error().Str("collection", file).Err(err).Msg("colección corrupta, se reinicia vacía")
	if rmErr := os.Remove(s.path(file)); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		s.log.Error().Str("collection", file).Err(rmErr).Msg("no se pudo reiniciar la colección")
	}
}

func (s *Store) path(file string) string {
	return filepath.Join(s.dir, file)
}

// load lee una colección completa en v. Archivo inexistente deja v en su
// valor cero; un archivo que se corrompió después de Open también se trata
// como vacío (y se registra) en lugar de fallar la operación.
func (s *Store) load(file string, v any) error {
	data, err := os.ReadFile(s.path(file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("localstore: leer %s: %w", file, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Error().Str("collection", file).Err(err).Msg("colección ilegible, se trata como vacía")
		return nil
	}
	return nil
}

// save reescribe la colección completa. Escritura a archivo temporal más
// rename para que una caída a mitad de escritura no deje la colección a medias.
func (s *Store) save(file string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: serializar %s: %w", file, err)
	}
	tmp := s.path(file) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", file, err)
	}
	if err := os.Rename(tmp, s.path(file)); err != nil {
		return fmt.Errorf("localstore: publicar %s: %w", file, err)
	}
	return nil
}
