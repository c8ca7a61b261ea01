package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// SupplierHandler listado de proveedores con formulario inline de alta/edición.
type SupplierHandler struct {
	catalog *usecase.CatalogUseCase
	sess    *session.Store
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(cat *usecase.CatalogUseCase, sess *session.Store) *SupplierHandler {
	return &SupplierHandler{catalog: cat, sess: sess}
}

// List GET /suppliers. ?edit=id precarga el formulario.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return h.renderList(c, dto.SupplierRequest{}, nil, "")
}

func (h *SupplierHandler) renderList(c *fiber.Ctx, form dto.SupplierRequest, errs map[string]string, errMsg string) error {
	list, err := h.catalog.Suppliers(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	if err != nil && errMsg == "" {
		errMsg = domain.UserMessage(err)
	}

	editID := int64(c.QueryInt("edit", 0))
	if editID != 0 && form.Name == "" {
		for _, s := range list {
			if s.ID == editID {
				form = dto.SupplierRequest{
					Name:    s.Name,
					Contact: s.Contact,
					Email:   s.Email,
					Phone:   s.Phone,
					Address: s.Address,
				}
				break
			}
		}
	}

	return c.Render("suppliers", merge(viewData(h.sess, "Proveedores"), fiber.Map{
		"Suppliers": list,
		"EditID":    editID,
		"Form":      form,
		"Errors":    errs,
		"Error":     errMsg,
	}), LayoutMain)
}

// Save POST /suppliers y POST /suppliers/:id.
func (h *SupplierHandler) Save(c *fiber.Ctx) error {
	idParam, _ := c.ParamsInt("id", 0)
	id := int64(idParam)
	form := dto.SupplierRequest{
		Name:    c.FormValue("name"),
		Contact: c.FormValue("contact_name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Address: c.FormValue("address"),
	}
	if err := h.catalog.SaveSupplier(c.Context(), id, form); err != nil {
		if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
			return resp
		}
		return h.renderList(c, form, formErrors(err), domain.UserMessage(err))
	}
	return c.Redirect("/suppliers")
}

// Delete POST /suppliers/:id/delete.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err == nil {
		if err := h.catalog.DeleteSupplier(c.Context(), int64(id)); err != nil {
			if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
				return resp
			}
			return h.renderList(c, dto.SupplierRequest{}, nil, domain.UserMessage(err))
		}
	}
	return c.Redirect("/suppliers")
}
