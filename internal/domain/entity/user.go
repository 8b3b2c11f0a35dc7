package entity

import "time"

// Organization datos del negocio emisor que aparecen en las facturas.
// Viven en el usuario (aplicación mono-empresa) y se editan desde Settings.
type Organization struct {
	Name    string
	Email   string
	Phone   string
	Address string
	TaxID   string // GSTIN del negocio
}

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Organization Organization
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
