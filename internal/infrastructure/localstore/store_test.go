package localstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoicer-api/internal/domain"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
	"github.com/tu-usuario/invoicer-api/internal/infrastructure/localstore"
	"github.com/tu-usuario/invoicer-api/pkg/logger"
)

func openStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := localstore.Open(dir, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestClientRepo_CicloCompleto(t *testing.T) {
	s, dir := openStore(t)
	repo := localstore.NewClientRepository(s)

	client := &entity.Client{
		ID:          "c1",
		CompanyName: "Acme Corp",
		Email:       "billing@acme.test",
		Phone:       "555-0100",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(client))

	// La colección sobrevive a reabrir el store (persistencia real en disco)
	s2, err := localstore.Open(dir, logger.Nop())
	require.NoError(t, err)
	repo2 := localstore.NewClientRepository(s2)

	got, err := repo2.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.CompanyName)

	// Filtro por nombre, sin distinguir mayúsculas
	list, err := repo2.List("acme")
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo2.List("globex")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo2.Delete("c1"))
	_, err = repo2.GetByID("c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceRepo_ListaMasRecientesPrimero(t *testing.T) {
	s, _ := openStore(t)
	repo := localstore.NewInvoiceRepository(s)

	base := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"vieja", "media", "nueva"} {
		require.NoError(t, repo.Create(&entity.Invoice{
			ID:         id,
			Number:     entity.FormatInvoiceNumber(int64(i + 1)),
			Status:     entity.InvoiceStatusPending,
			GrandTotal: decimal.NewFromInt(int64(i)),
			IssueDate:  base.AddDate(0, 0, i),
			CreatedAt:  base.AddDate(0, 0, i),
		}))
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "nueva", list[0].ID)
	assert.Equal(t, "vieja", list[2].ID)
}

func TestInvoiceRepo_UpdatePreservaLineas(t *testing.T) {
	s, _ := openStore(t)
	repo := localstore.NewInvoiceRepository(s)

	now := time.Now()
	inv := &entity.Invoice{
		ID:     "i1",
		Number: "INV-0001",
		Lines: []entity.LineItem{{
			ID:        "l1",
			Name:      "Servicio",
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(100),
			TaxRate:   decimal.NewFromInt(18),
			Total:     decimal.NewFromInt(236),
		}},
		Status:    entity.InvoiceStatusPending,
		IssueDate: now,
		CreatedAt: now,
	}
	require.NoError(t, repo.Create(inv))

	paidAt := now.Add(time.Hour)
	inv.Status = entity.InvoiceStatusPaid
	inv.PaidAt = &paidAt
	require.NoError(t, repo.Update(inv))

	got, err := repo.GetByID("i1")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)
	require.Len(t, got.Lines, 1)
	assert.True(t, got.Lines[0].Total.Equal(decimal.NewFromInt(236)))
}

// Contador almacenado en 7 → el siguiente consecutivo es 8 ("INV-0008") y el
// valor persistido queda en 8.
func TestSequenceRepo_ConsecutivoDesdeValorAlmacenado(t *testing.T) {
	s, dir := openStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice_number.json"), []byte("7"), 0o644))

	seq := localstore.NewSequenceRepository(s)

	next, err := seq.NextValue()
	require.NoError(t, err)
	assert.Equal(t, int64(8), next)
	assert.Equal(t, "INV-0008", entity.FormatInvoiceNumber(next))

	stored, err := seq.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(8), stored)
}

func TestSequenceRepo_PrimeraAsignacionEsUno(t *testing.T) {
	s, _ := openStore(t)
	seq := localstore.NewSequenceRepository(s)

	next, err := seq.NextValue()
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)
}

// Una colección corrupta se reinicia vacía al abrir el store en lugar de
// fallar por operación.
func TestOpen_ColeccionCorruptaSeReiniciaVacia(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.json"), []byte("{no es json"), 0o644))

	s, err := localstore.Open(dir, logger.Nop())
	require.NoError(t, err)

	repo := localstore.NewClientRepository(s)
	list, err := repo.List("")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Y la colección vuelve a ser usable
	require.NoError(t, repo.Create(&entity.Client{ID: "c1", CompanyName: "Acme", Email: "a@b.c", Phone: "1"}))
	got, err := repo.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)
}
