package billing

import (
	"context"
	"errors"

	"github.com/tu-usuario/invoicer-api/internal/domain"
	"github.com/tu-usuario/invoicer-api/internal/domain/repository"
)

// PDFUseCase genera la representación imprimible (PDF A4) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	userRepo    repository.UserRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		generator:   generator,
	}
}

// Render genera el PDF de la factura. Los datos del emisor salen de la
// organización del usuario autenticado; si el cliente fue borrado después de
// facturar se usa la copia de su nombre guardada en la factura.
func (uc *PDFUseCase) Render(ctx context.Context, invoiceID, userID string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(invoice.ClientID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, user.Organization, client)
}
