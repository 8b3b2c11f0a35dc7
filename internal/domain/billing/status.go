package billing

import "github.com/tu-usuario/invoicer-api/internal/domain/entity"

// ResolveClientStatus deriva el estado de pago agregado de un cliente a partir
// de la colección completa de facturas. Es una proyección pura: se recalcula en
// cada lectura y nunca se persiste, para que no exista una segunda fuente de
// verdad que pueda desincronizarse.
//
// Reglas:
//   - Sin facturas del cliente → Pending (cliente aún no "saldado").
//   - Alguna factura pending   → Pending.
//   - Todas pagadas            → Paid.
//
// El resultado depende solo del subconjunto filtrado, no del orden de entrada.
func ResolveClientStatus(clientID string, invoices []*entity.Invoice) string {
	seen := false
	for _, inv := range invoices {
		if inv.ClientID != clientID {
			continue
		}
		if inv.Status == entity.InvoiceStatusPending {
			return entity.ClientStatusPending
		}
		seen = true
	}
	if !seen {
		return entity.ClientStatusPending
	}
	return entity.ClientStatusPaid
}
