package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/usecase"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// UserHandler administración de usuarios. Toda la sección exige rol admin
// (RequireRole en el router).
type UserHandler struct {
	users *usecase.UserUseCase
	sess  *session.Store
}

// NewUserHandler construye el handler.
func NewUserHandler(users *usecase.UserUseCase, sess *session.Store) *UserHandler {
	return &UserHandler{users: users, sess: sess}
}

// List GET /users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	return h.renderList(c, dto.UserRequest{}, nil, "")
}

func (h *UserHandler) renderList(c *fiber.Ctx, form dto.UserRequest, errs map[string]string, errMsg string) error {
	list, err := h.users.Users(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}
	if err != nil && errMsg == "" {
		errMsg = domain.UserMessage(err)
	}

	roles, err := h.users.Roles(c.Context())
	if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
		return resp
	}

	editID := int64(c.QueryInt("edit", 0))
	if editID != 0 && form.Name == "" {
		for _, u := range list {
			if u.ID == editID {
				form = dto.UserRequest{Name: u.Name, Email: u.Email}
				if len(u.Roles) > 0 {
					form.Role = u.Roles[0].Name
				}
				break
			}
		}
	}

	return c.Render("users", merge(viewData(h.sess, "Usuarios"), fiber.Map{
		"Users":  list,
		"Roles":  roles,
		"EditID": editID,
		"Form":   form,
		"Errors": errs,
		"Error":  errMsg,
	}), LayoutMain)
}

// Save POST /users y POST /users/:id. Password vacío al editar = sin cambio.
func (h *UserHandler) Save(c *fiber.Ctx) error {
	idParam, _ := c.ParamsInt("id", 0)
	id := int64(idParam)
	form := dto.UserRequest{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Role:     c.FormValue("role"),
	}
	if err := h.users.Save(c.Context(), id, form); err != nil {
		if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
			return resp
		}
		return h.renderList(c, form, formErrors(err), domain.UserMessage(err))
	}
	return c.Redirect("/users")
}

// Delete POST /users/:id/delete.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err == nil {
		if err := h.users.Delete(c.Context(), int64(id)); err != nil {
			if handled, resp := redirectOnAuthError(c, h.sess, err); handled {
				return resp
			}
			return h.renderList(c, dto.UserRequest{}, nil, domain.UserMessage(err))
		}
	}
	return c.Redirect("/users")
}
