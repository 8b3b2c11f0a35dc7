package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/invoicer-api/internal/domain/billing"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
)

func inv(clientID, status string) *entity.Invoice {
	return &entity.Invoice{ClientID: clientID, Status: status}
}

func TestResolveClientStatus_SinFacturasEsPending(t *testing.T) {
	assert.Equal(t, entity.ClientStatusPending, billing.ResolveClientStatus("c1", nil))

	// Facturas de otros clientes no cuentan
	otras := []*entity.Invoice{inv("c2", entity.InvoiceStatusPaid)}
	assert.Equal(t, entity.ClientStatusPending, billing.ResolveClientStatus("c1", otras))
}

// Cliente con una pagada y una pendiente → Pending.
func TestResolveClientStatus_UnaPendienteBasta(t *testing.T) {
	invoices := []*entity.Invoice{
		inv("c1", entity.InvoiceStatusPaid),
		inv("c1", entity.InvoiceStatusPending),
	}
	assert.Equal(t, entity.ClientStatusPending, billing.ResolveClientStatus("c1", invoices))
}

func TestResolveClientStatus_TodasPagadasEsPaid(t *testing.T) {
	invoices := []*entity.Invoice{
		inv("c1", entity.InvoiceStatusPaid),
		inv("c2", entity.InvoiceStatusPending), // de otro cliente, se ignora
		inv("c1", entity.InvoiceStatusPaid),
	}
	assert.Equal(t, entity.ClientStatusPaid, billing.ResolveClientStatus("c1", invoices))
}

// El resultado depende solo del subconjunto del cliente, no del orden de la
// colección de entrada.
func TestResolveClientStatus_IndependienteDelOrden(t *testing.T) {
	a := []*entity.Invoice{
		inv("c1", entity.InvoiceStatusPending),
		inv("c1", entity.InvoiceStatusPaid),
		inv("c2", entity.InvoiceStatusPaid),
	}
	b := []*entity.Invoice{a[2], a[1], a[0]}

	assert.Equal(t, billing.ResolveClientStatus("c1", a), billing.ResolveClientStatus("c1", b))
	assert.Equal(t, entity.ClientStatusPending, billing.ResolveClientStatus("c1", b))
}
