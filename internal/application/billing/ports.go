package billing

import (
	"context"

	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto de generación de la representación imprimible de
// una factura. client puede ser nil si el cliente fue borrado del directorio;
// el generador usa entonces la copia del nombre guardada en la factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, org entity.Organization, client *entity.Client) ([]byte, error)
}
