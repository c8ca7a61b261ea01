package dto

import "github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"

// PageMeta metadatos del sobre paginado que devuelve el backend para listados
// grandes: {data, meta:{from,to,total,last_page}}.
type PageMeta struct {
	From     int `json:"from"`
	To       int `json:"to"`
	Total    int `json:"total"`
	LastPage int `json:"last_page"`
}

// ProductPage página de productos con sus metadatos.
type ProductPage struct {
	Items []entity.Product
	Meta  PageMeta
}

// HasPrev y HasNext ayudan a la paginación de la vista.
func (p ProductPage) HasPrev(page int) bool { return page > 1 }
func (p ProductPage) HasNext(page int) bool { return page < p.Meta.LastPage }
