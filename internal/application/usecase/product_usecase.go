// Package usecase contiene los casos de uso del catálogo.
package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoicer-api/internal/application/dto"
	"github.com/tu-usuario/invoicer-api/internal/domain"
	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
	"github.com/tu-usuario/invoicer-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Nombre y precio son obligatorios; precio y
// componentes de impuesto no pueden ser negativos (no hay cota superior para
// la tasa: un bundle que suma más de 100% se acepta tal cual).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Tax: entity.TaxBundle{
			CGST: in.CGST,
			SGST: in.SGST,
			IGST: in.IGST,
			Cess: in.Cess,
		},
		DefaultQty: defaultQty(in.DefaultQty),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto del catálogo. Las líneas de facturas ya
// creadas guardan copias, así que no se ven afectadas.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Tax = entity.TaxBundle{CGST: in.CGST, SGST: in.SGST, IGST: in.IGST, Cess: in.Cess}
	product.DefaultQty = defaultQty(in.DefaultQty)
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func validateProduct(in dto.CreateProductRequest) error {
	if in.Name == "" || in.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	for _, rate := range []decimal.Decimal{in.CGST, in.SGST, in.IGST, in.Cess} {
		if rate.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func defaultQty(q int64) int64 {
	if q <= 0 {
		return 1
	}
	return q
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CGST:         p.Tax.CGST,
		SGST:         p.Tax.SGST,
		IGST:         p.Tax.IGST,
		Cess:         p.Tax.Cess,
		DefaultQty:   p.DefaultQty,
		CombinedRate: p.Tax.CombinedRate(),
		PriceWithTax: p.PriceWithTax().Round(2),
	}
}
