// Package billing contiene los casos de uso de facturación: clientes,
// creación y ciclo de vida de facturas, y exportación a PDF.
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

// ClientUseCase casos de uso de clientes. El estado de pago de cada cliente
// se deriva de la colección de facturas en cada lectura (proyección pura,
// nunca persistida).
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, invoiceRepo repository.InvoiceRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, invoiceRepo: invoiceRepo}
}

// Create crea un cliente. CompanyName, Email y Phone son obligatorios.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.CompanyName == "" || in.Email == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	// Recién creado no tiene facturas: Pending por definición
	return toClientResponse(client, entity.ClientStatusPending), nil
}

// List lista clientes, opcionalmente filtrados por nombre de empresa, con su
// estado de pago derivado.
func (uc *ClientUseCase) List(query string) ([]*dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List(query)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		status := domainbilling.ResolveClientStatus(c.ID, invoices)
		out = append(out, toClientResponse(c, status))
	}
	return out, nil
}

// GetByID obtiene un cliente con su estado derivado.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	return toClientResponse(client, domainbilling.ResolveClientStatus(client.ID, invoices)), nil
}

// Update actualiza los datos de contacto de un cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.CompanyName == "" || in.Email == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	client.CompanyName = in.CompanyName
	client.Email = in.Email
	client.Phone = in.Phone
	client.Address = in.Address
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	return toClientResponse(client, domainbilling.ResolveClientStatus(client.ID, invoices)), nil
}

// Delete elimina un cliente. Sus facturas históricas no se tocan: conservan
// la copia del nombre tomada al facturar.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.clientRepo.Delete(id)
}

func toClientResponse(c *entity.Client, status string) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Status:      status,
	}
}
