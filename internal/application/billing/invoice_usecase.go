package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/invoicer-api/internal/application/dto"
	"github.com/tu-usuario/invoicer-api/internal/domain"
	domainbilling "github.com/tu-usuario/invoicer-api/internal/domain/billing"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
	"github.com/tu-usuario/invoicer-api/internal/domain/repository"
)

const dueDateLayout = "2006-01-02"

// InvoiceUseCase casos de uso de facturas: creación (agregación de líneas,
// asignación de consecutivo), listado, marcado de pago y borrado.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	seqRepo     repository.SequenceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	seqRepo repository.SequenceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		seqRepo:     seqRepo,
	}
}

// Create construye y persiste una factura a partir de las líneas enviadas.
//
// Reglas:
//   - Cliente y al menos una línea son obligatorios (domain.ErrInvalidInput;
//     el guardado se aborta sin tocar estado previo).
//   - Cada línea con ProductID existente copia nombre, precio y tasa del
//     catálogo en ese momento; una línea libre (o cuyo producto ya no existe)
//     usa los valores enviados. La copia es definitiva: ediciones posteriores
//     del catálogo no alteran la factura.
//   - El consecutivo se toma del contador persistido (atómico) y se renderiza
//     como "INV-0008".
//   - Estado inicial siempre pending, PaidAt sin asignar.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.LineItem, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		line := entity.LineItem{
			ID:        uuid.New().String(),
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			TaxRate:   item.TaxRate,
			Quantity:  item.Quantity,
		}
		if item.ProductID != "" {
			if product, err := uc.productRepo.GetByID(item.ProductID); err == nil {
				// Snapshot del catálogo al momento de seleccionar
				line.Name = product.Name
				line.UnitPrice = product.Price
				line.TaxRate = product.Tax.CombinedRate()
			}
			// Producto ya borrado: la línea conserva los valores enviados
		}
		if line.Name == "" || line.UnitPrice.IsNegative() || line.TaxRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		line.Total = domainbilling.ComputeLine(line.Quantity, line.UnitPrice, line.TaxRate).Total
		lines = append(lines, line)
	}

	totals := domainbilling.SumLines(lines)

	var dueDate *time.Time
	if in.DueDate != "" {
		d, err := time.Parse(dueDateLayout, in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dueDate = &d
	}

	seq, err := uc.seqRepo.NextValue()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		Number:     entity.FormatInvoiceNumber(seq),
		ClientID:   client.ID,
		ClientName: client.CompanyName,
		Lines:      lines,
		Subtotal:   totals.Subtotal,
		TaxTotal:   totals.TaxTotal,
		GrandTotal: totals.GrandTotal,
		IssueDate:  now,
		DueDate:    dueDate,
		Status:     entity.InvoiceStatusPending,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// List devuelve todas las facturas, más recientes primero.
func (uc *InvoiceUseCase) List() ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// GetByID obtiene una factura.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// MarkPaid transiciona pending → paid y estampa PaidAt. Es la única
// transición de estado expuesta; marcar una factura ya pagada devuelve
// domain.ErrConflict y no hay reversa a pending.
func (uc *InvoiceUseCase) MarkPaid(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == entity.InvoiceStatusPaid {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaidAt = &now
	invoice.UpdatedAt = now
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Delete elimina una factura (válido en cualquier estado).
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.invoiceRepo.Delete(id)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		items = append(items, dto.InvoiceLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			TaxRate:   l.TaxRate,
			Total:     domainbilling.RoundMoney(l.Total),
		})
	}
	resp := &dto.InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		ClientID:   inv.ClientID,
		ClientName: inv.ClientName,
		Items:      items,
		Subtotal:   inv.Subtotal,
		TaxTotal:   inv.TaxTotal,
		GrandTotal: inv.GrandTotal,
		IssueDate:  inv.IssueDate.Format(dueDateLayout),
		Status:     inv.Status,
		Notes:      inv.Notes,
	}
	if inv.DueDate != nil {
		resp.DueDate = inv.DueDate.Format(dueDateLayout)
	}
	if inv.PaidAt != nil {
		resp.PaidAt = inv.PaidAt.Format(time.RFC3339)
	}
	return resp
}
