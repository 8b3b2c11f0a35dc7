package repository

import "github.com/tu-usuario/invoicer-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// List devuelve todos los clientes; si query no es vacío filtra por
	// coincidencia parcial del nombre de empresa (sin distinguir mayúsculas).
	List(query string) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
