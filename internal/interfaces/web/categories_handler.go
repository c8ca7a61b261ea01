package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// CategoryHandler listado de categorías con formulario inline de alta/edición.
type CategoryHandler struct {
	catalog *usecase.CatalogUseCase
	sess    *session.Store
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(cat *usecase.CatalogUseCase, sess *session.Store) *CategoryHandler {
	return &CategoryHandler{catalog: cat, sess: sess}
}

// List GET /categories. ?edit=id precarga el formulario con esa categoría.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return h.renderList(c, dto.CategoryRequest{}, nil, "")
}

func (h *CategoryHandler) renderList(c *fiber.Ctx, form dto.CategoryRequest, errs map[string]string, errMsg string) error {
	list, err := h.catalog.Categories(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	if err != nil && errMsg == "" {
		errMsg = domain.UserMessage(err)
	}

	editID := int64(c.QueryInt("edit", 0))
	if editID != 0 && form.Name == "" {
		for _, cat := range list {
			if cat.ID == editID {
				form = dto.CategoryRequest{Name: cat.Name, Description: cat.Description}
				break
			}
		}
	}

	return c.Render("categories", merge(viewData(h.sess, "Categorías"), fiber.Map{
		"Categories": list,
		"EditID":     editID,
		"Form":       form,
		"Errors":     errs,
		"Error":      errMsg,
	}), LayoutMain)
}

// Save POST /categories y POST /categories/:id.
func (h *CategoryHandler) Save(c *fiber.Ctx) error {
	idParam, _ := c.ParamsInt("id", 0)
	id := int64(idParam)
	form := dto.CategoryRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}
	if err := h.catalog.SaveCategory(c.Context(), id, form); err != nil {
		if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
			return resp
		}
		return h.renderList(c, form, formErrors(err), domain.UserMessage(err))
	}
	return c.Redirect("/categories")
}

// Delete POST /categories/:id/delete.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err == nil {
		if err := h.catalog.DeleteCategory(c.Context(), int64(id)); err != nil {
			if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
				return resp
			}
			return h.renderList(c, dto.CategoryRequest{}, nil, domain.UserMessage(err))
		}
	}
	return c.Redirect("/categories")
}
