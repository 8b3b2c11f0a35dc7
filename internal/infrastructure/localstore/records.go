package localstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/invoicer-api/internal/domain/entity"
)

// Registros persistidos. Los nombres de campo JSON conservan el camelCase de
// las colecciones originales de la aplicación (companyName, qty, price...).

type clientRecord struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func clientToRecord(c *entity.Client) clientRecord {
	return clientRecord{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func clientFromRecord(r clientRecord) *entity.Client {
	return &entity.Client{
		ID:          r.ID,
		CompanyName: r.CompanyName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type productRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	IGST        decimal.Decimal `json:"igst"`
	Cess        decimal.Decimal `json:"cess"`
	DefaultQty  int64           `json:"defaultQty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func productToRecord(p *entity.Product) productRecord {
	return productRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CGST:        p.Tax.CGST,
		SGST:        p.Tax.SGST,
		IGST:        p.Tax.IGST,
		Cess:        p.Tax.Cess,
		DefaultQty:  p.DefaultQty,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func productFromRecord(r productRecord) *entity.Product {
	return &entity.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Tax: entity.TaxBundle{
			CGST: r.CGST,
			SGST: r.SGST,
			IGST: r.IGST,
			Cess: r.Cess,
		},
		DefaultQty: r.DefaultQty,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type lineItemRecord struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId,omitempty"`
	Name      string          `json:"name"`
	Qty       int64           `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Tax       decimal.Decimal `json:"tax"` // tasa combinada en porcentaje
	Total     decimal.Decimal `json:"total"`
}

type invoiceRecord struct {
	ID         string           `json:"id"`
	Number     string           `json:"number"`
	ClientID   string           `json:"clientId"`
	ClientName string           `json:"client"`
	Items      []lineItemRecord `json:"items"`
	Subtotal   decimal.Decimal  `json:"subtotal"`
	TaxTotal   decimal.Decimal  `json:"tax"`
	GrandTotal decimal.Decimal  `json:"total"`
	IssueDate  time.Time        `json:"date"`
	DueDate    *time.Time       `json:"dueDate,omitempty"`
	Status     string           `json:"status"`
	PaidAt     *time.Time       `json:"paidAt,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

func invoiceToRecord(inv *entity.Invoice) invoiceRecord {
	items := make([]lineItemRecord, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		items = append(items, lineItemRecord{
			ID:        l.ID,
			ProductID: l.ProductID,
			Name:      l.Name,
			Qty:       l.Quantity,
			Price:     l.UnitPrice,
			Tax:       l.TaxRate,
			Total:     l.Total,
		})
	}
	return invoiceRecord{
		ID:         inv.ID,
		Number:     inv.Number,
		ClientID:   inv.ClientID,
		ClientName: inv.ClientName,
		Items:      items,
		Subtotal:   inv.Subtotal,
		TaxTotal:   inv.TaxTotal,
		GrandTotal: inv.GrandTotal,
		IssueDate:  inv.IssueDate,
		DueDate:    inv.DueDate,
		Status:     inv.Status,
		PaidAt:     inv.PaidAt,
		Notes:      inv.Notes,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

func invoiceFromRecord(r invoiceRecord) *entity.Invoice {
	lines := make([]entity.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, entity.LineItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Qty,
			UnitPrice: item.Price,
			TaxRate:   item.Tax,
			Total:     item.Total,
		})
	}
	return &entity.Invoice{
		ID:         r.ID,
		Number:     r.Number,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Lines:      lines,
		Subtotal:   r.Subtotal,
		TaxTotal:   r.TaxTotal,
		GrandTotal: r.GrandTotal,
		IssueDate:  r.IssueDate,
		DueDate:    r.DueDate,
		Status:     r.Status,
		PaidAt:     r.PaidAt,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	OrgName      string    `json:"orgName,omitempty"`
	OrgEmail     string    `json:"orgEmail,omitempty"`
	OrgPhone     string    `json:"orgPhone,omitempty"`
	OrgAddress   string    `json:"orgAddress,omitempty"`
	OrgTaxID     string    `json:"orgTaxId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func userToRecord(u *entity.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		OrgName:      u.Organization.Name,
		OrgEmail:     u.Organization.Email,
		OrgPhone:     u.Organization.Phone,
		OrgAddress:   u.Organization.Address,
		OrgTaxID:     u.Organization.TaxID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userFromRecord(r userRecord) *entity.User {
	return &entity.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Organization: entity.Organization{
			Name:    r.OrgName,
			Email:   r.OrgEmail,
			Phone:   r.OrgPhone,
			Address: r.OrgAddress,
			TaxID:   r.OrgTaxID,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
