package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// ProductHandler listado paginado de productos y su formulario de alta/edición.
type ProductHandler struct {
	catalog *usecase.CatalogUseCase
	sess    *session.Store
}

// NewProductHandler construye el handler.
func NewProductHandler(cat *usecase.CatalogUseCase, sess *session.Store) *ProductHandler {
	return &ProductHandler{catalog: cat, sess: sess}
}

// List GET /products?page=&search=.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	search := c.Query("search")

	result, err := h.catalog.Products(c.Context(), page, search)
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	data := merge(viewData(h.sess, "Productos"), fiber.Map{
		"Page":   page,
		"Search": search,
	})
	if err != nil {
		data["Error"] = domain.UserMessage(err)
	} else {
		data["Result"] = result
	}
	return c.Render("products", data, LayoutMain)
}

// CreateForm GET /products/create.
func (h *ProductHandler) CreateForm(c *fiber.Ctx) error {
	return h.renderForm(c, 0, dto.ProductRequest{}, nil, "")
}

// EditForm GET /products/:id/edit, precargado con el producto vigente.
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/products")
	}
	p, err := h.catalog.Product(c.Context(), int64(id))
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	if err != nil {
		return c.Redirect("/products")
	}
	form := dto.ProductRequest{
		SKU:        p.SKU,
		Name:       p.Name,
		Price:      p.Price.String(),
		Stock:      fmt.Sprintf("%d", p.Stock),
		StockMin:   fmt.Sprintf("%d", p.StockMin),
		CategoryID: fmt.Sprintf("%d", p.CategoryID),
		SupplierID: fmt.Sprintf("%d", p.SupplierID),
	}
	return h.renderForm(c, int64(id), form, nil, "")
}

// Save POST /products/create y POST /products/:id/edit. Un 422 vuelve al
// formulario con los errores por campo y los valores tecleados.
func (h *ProductHandler) Save(c *fiber.Ctx) error {
	idParam, _ := c.ParamsInt("id", 0)
	id := int64(idParam)
	form := dto.ProductRequest{
		SKU:        c.FormValue("sku"),
		Name:       c.FormValue("name"),
		Price:      c.FormValue("price"),
		Stock:      c.FormValue("stock"),
		StockMin:   c.FormValue("stock_min"),
		CategoryID: c.FormValue("category_id"),
		SupplierID: c.FormValue("supplier_id"),
	}
	if err := h.catalog.SaveProduct(c.Context(), id, form); err != nil {
		if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
			return resp
		}
		return h.renderForm(c, id, form, formErrors(err), domain.UserMessage(err))
	}
	return c.Redirect("/products")
}

// Delete POST /products/:id/delete.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err == nil {
		if err := h.catalog.DeleteProduct(c.Context(), int64(id)); err != nil {
			if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
				return resp
			}
		}
	}
	return c.Redirect("/products")
}

func (h *ProductHandler) renderForm(c *fiber.Ctx, id int64, form dto.ProductRequest, errs map[string]string, errMsg string) error {
	categories, err := h.catalog.Categories(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	suppliers, err := h.catalog.Suppliers(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}

	title := "Nuevo Producto"
	if id != 0 {
		title = "Editar Producto"
	}
	return c.Render("product_form", merge(viewData(h.sess, title), fiber.Map{
		"ID":         id,
		"Form":       form,
		"Errors":     errs,
		"Error":      errMsg,
		"Categories": categories,
		"Suppliers":  suppliers,
	}), LayoutMain)
}
