package billing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/invoicer-api/internal/application/billing"
	"github.com/tu-usuario/invoicer-api/internal/application/dto"
	"github.com/tu-usuario/invoicer-api/internal/domain"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
	"github.com/tu-usuario/invoicer-api/internal/infrastructure/localstore"
	"github.com/tu-usuario/invoicer-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type invoiceFixture struct {
	uc       *billing.InvoiceUseCase
	store    *localstore.Store
	clientID string
	products *localstore.ProductRepo
}

// newInvoiceFixture monta el caso de uso sobre un almacén real en un
// directorio temporal, con un cliente ya creado.
func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	store, err := localstore.Open(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	clientRepo := localstore.NewClientRepository(store)
	productRepo := localstore.NewProductRepository(store)
	invoiceRepo := localstore.NewInvoiceRepository(store)
	seqRepo := localstore.NewSequenceRepository(store)

	client := &entity.Client{
		ID:          uuid.New().String(),
		CompanyName: "Acme Corp",
		Email:       "facturacion@acme.test",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, clientRepo.Create(client))

	return &invoiceFixture{
		uc:       billing.NewInvoiceUseCase(invoiceRepo, clientRepo, productRepo, seqRepo),
		store:    store,
		clientID: client.ID,
		products: productRepo,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func freeLine(name, price, rate string, qty int64) dto.InvoiceItemRequest {
	return dto.InvoiceItemRequest{
		Name:      name,
		Quantity:  qty,
		UnitPrice: dec(price),
		TaxRate:   dec(rate),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_TotalesYConsecutivo(t *testing.T) {
	fx := newInvoiceFixture(t)

	// 2 × 100.00 al 18% combinado → 236.00
	inv, err := fx.uc.Create(dto.CreateInvoiceRequest{
		ClientID: fx.clientID,
		Items:    []dto.InvoiceItemRequest{freeLine("Servicio", "100", "18", 2)},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", inv.Number)
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	assert.Empty(t, inv.PaidAt)
	assert.True(t, inv.Subtotal.Equal(dec("200")), "subtotal: %s", inv.Subtotal)
	assert.True(t, inv.TaxTotal.Equal(dec("36")), "tax: %s", inv.TaxTotal)
	assert.True(t, inv.GrandTotal.Equal(dec("236")), "total: %s", inv.GrandTotal)

	// Invariante: subtotal + impuestos = total, también con varias líneas
	inv2, err := fx.uc.Create(dto.CreateInvoiceRequest{
		ClientID: fx.clientID,
		Items: []dto.InvoiceItemRequest{
			freeLine("Consultoría", "1234.56", "18", 3),
			freeLine("Soporte", "0.01", "28", 7),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", inv2.Number)
	assert.True(t, inv2.Subtotal.Add(inv2.TaxTotal).Equal(inv2.GrandTotal))
}

func TestInvoiceCreate_ConsecutivoRetomaContadorPersistido(t *testing.T) {
	fx := newInvoiceFixture(t)
	seqRepo := localstore.NewSequenceRepository(fx.store)

	// Simula un almacén con 7 facturas ya emitidas
	for i := 0; i < 7; i++ {
		_, err := seqRepo.NextValue()
		require.NoError(t, err)
	}

	inv, err := fx.uc.Create(dto.CreateInvoiceRequest{
		ClientID: fx.clientID,
		Items:    []dto.InvoiceItemRequest{freeLine("Servicio", "50", "18", 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-0008", inv.Number)

	current, err := seqRepo.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(8), current)
}

func TestInvoiceCreate_ValidacionesRechazan(t *testing.T) {
	fx := newInvoiceFixture(t)

	cases := []struct {
		name string
		req  dto.CreateInvoiceRequest
	}{
		{"sin cliente", dto.CreateInvoiceRequest{
			Items: []dto.InvoiceItemRequest{freeLine("X", "10", "18", 1)},
		}},
		{"sin líneas", dto.CreateInvoiceRequest{ClientID: fx.clientID}},
		{"cantidad cero", dto.CreateInvoiceRequest{
			ClientID: fx.clientID,
			Items:    []dto.InvoiceItemRequest{freeLine("X", "10", "18", 0)},
		}},
		{"cantidad negativa", dto.CreateInvoiceRequest{
			ClientID: fx.clientID,
			Items:    []dto.InvoiceItemRequest{freeLine("X", "10", "18", -2)},
		}},
		{"precio negativo", dto.CreateInvoiceRequest{
			ClientID: fx.clientID,
			Items:    []dto.InvoiceItemRequest{freeLine("X", "-10", "18", 1)},
		}},
		{"fecha de vencimiento malformada", dto.CreateInvoiceRequest{
			ClientID: fx.clientID,
			Items:    []dto.InvoiceItemRequest{freeLine("X", "10", "18", 1)},
			DueDate:  "31/12/2026",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.uc.Create(tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// El rechazo no debe consumir consecutivo ni dejar facturas a medias
	list, err := fx.uc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
	current, err := localstore.NewSequenceRepository(fx.store).Current()
	require.NoError(t, err)
	assert.Equal(t, int64(0), current)
}

func TestInvoiceCreate_ClienteInexistente(t *testing.T) {
	fx := newInvoiceFixture(t)

	_, err := fx.uc.Create(dto.CreateInvoiceRequest{
		ClientID: uuid.New().String(),
		Items:    []dto.InvoiceItemRequest{freeLine("X", "10", "18", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests snapshot de catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_SnapshotDeCatalogo(t *testing.T) {
	fx := newInvoiceFixture(t)

	product := &entity.Product{
		ID:    uuid.New().String(),
		Name:  "Licencia anual",
		Price: dec("499.99"),
		Tax: entity.TaxBundle{
			CGST: dec("9"),
			SGST: dec("9"),
		},
		DefaultQty: 1,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, fx.products.Create(product))

	inv, err := fx.uc.Create(dto.CreateInvoiceRequest{
		ClientID: fx.clientID,
		Items: []dto.InvoiceItemRequest{{
			ProductID: product.ID,
			// Los valores enviados se ignoran si el producto existe
			Name:      "otro nombre",
			Quantity:  2,
			UnitPrice: dec("1"),
			TaxRate:   dec("99"),
		}},
	})
	require.NoError(t, err)

	require.Len(t, inv.Items, 1)
	line := inv.Items[0]
	assert.Equal(t, "Licencia anual", line.Name)
	assert.True(t, line.UnitPrice.Equal(dec("499.99")))
	assert.True(t, line.TaxRate.Equal(dec("18")), "tasa combinada CGST+SGST")

	// Editar y borrar el producto después no altera la factura emitida
	product.Price = dec("999")
	product.Name = "Licencia anual v2"
	require.NoError(t, fx.products.Update(product))
	require.NoError(t, fx.products.Delete(product.ID))

	reread, err := fx.uc.GetByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Licencia anual", reread.Items[0].Name)
	assert.True(t, reread.Items[0].UnitPrice.Equal(dec("499.99")))
	assert.True(t, reread.GrandTotal.Equal(inv.GrandTotal))
}

func TestInvoiceCreate_ProductoBorradoUsaValoresEnviados(t *testing.T) {
	fx := newInvoiceFixture(t)

	inv, err := fx.uc.Create(dto.CreateInvoiceRequest{
		ClientID: fx.clientID,
		Items: []dto.InvoiceItemRequest{{
			ProductID: uuid.New().String(), // ya no existe en el catálogo
			Name:      "Línea libre",
			Quantity:  1,
			UnitPrice: dec("75.50"),
			TaxRate:   dec("12"),
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Línea libre", inv.Items[0].Name)
	assert.True(t, inv.Items[0].UnitPrice.Equal(dec("75.50")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MarkPaid
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceMarkPaid_TransicionUnidireccional(t *testing.T) {
	fx := newInvoiceFixture(t)

	inv, err := fx.uc.Create(dto.CreateInvoiceRequest{
		ClientID: fx.clientID,
		Items:    []dto.InvoiceItemRequest{freeLine("Servicio", "100", "18", 1)},
	})
	require.NoError(t, err)

	paid, err := fx.uc.MarkPaid(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
	assert.NotEmpty(t, paid.PaidAt)

	// Segunda marca: conflicto, sin cambio de estado
	_, err = fx.uc.MarkPaid(inv.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	reread, err := fx.uc.GetByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, reread.Status)
	assert.Equal(t, paid.PaidAt, reread.PaidAt)
}

func TestInvoiceMarkPaid_NoEncontrada(t *testing.T) {
	fx := newInvoiceFixture(t)

	_, err := fx.uc.MarkPaid(uuid.New().String())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceDelete(t *testing.T) {
	fx := newInvoiceFixture(t)

	inv, err := fx.uc.Create(dto.CreateInvoiceRequest{
		ClientID: fx.clientID,
		Items:    []dto.InvoiceItemRequest{freeLine("Servicio", "100", "18", 1)},
	})
	require.NoError(t, err)

	require.NoError(t, fx.uc.Delete(inv.ID))

	_, err = fx.uc.GetByID(inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Borrar no reinicia el consecutivo
	next, err := fx.uc.Create(dto.CreateInvoiceRequest{
		ClientID: fx.clientID,
		Items:    []dto.InvoiceItemRequest{freeLine("Servicio", "100", "18", 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", next.Number)
}
