package dto

import "github.com/shopspring/decimal"

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id.
type UpdateClientRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
}

// ClientResponse cliente en respuestas. Status es derivado de sus facturas en
// cada lectura ("Paid" | "Pending"), nunca persistido.
type ClientResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	Status      string `json:"status"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// DueDate es opcional, formato "2006-01-02".
type CreateInvoiceRequest struct {
	ClientID string               `json:"client_id"`
	Items    []InvoiceItemRequest `json:"items"`
	DueDate  string               `json:"due_date,omitempty"`
	Notes    string               `json:"notes,omitempty"`
}

// InvoiceItemRequest línea de factura. Si ProductID referencia un producto
// existente, el servidor copia nombre, precio y tasa del catálogo; si no
// (línea libre o producto ya borrado), se usan los valores enviados.
type InvoiceItemRequest struct {
	ProductID string          `json:"product_id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price,omitempty"`
	TaxRate   decimal.Decimal `json:"tax_rate,omitempty"` // porcentaje combinado
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID         string                `json:"id"`
	Number     string                `json:"number"`
	ClientID   string                `json:"client_id"`
	ClientName string                `json:"client_name"`
	Items      []InvoiceLineResponse `json:"items"`
	Subtotal   decimal.Decimal       `json:"subtotal"`
	TaxTotal   decimal.Decimal       `json:"tax_total"`
	GrandTotal decimal.Decimal       `json:"grand_total"`
	IssueDate  string                `json:"issue_date"`
	DueDate    string                `json:"due_date,omitempty"`
	Status     string                `json:"status"`
	PaidAt     string                `json:"paid_at,omitempty"`
	Notes      string                `json:"notes,omitempty"`
}

// InvoiceLineResponse línea en la respuesta.
type InvoiceLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Total     decimal.Decimal `json:"total"`
}
