package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/auth"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
	"github.com/Alexander08S-C/inventario-frontend/pkg/logger"
)

// fakeAuthAPI puerto de autenticación en memoria.
type fakeAuthAPI struct {
	loginRes  *dto.LoginResponse
	loginErr  error
	logoutErr error
	logouts   int
}

func (f *fakeAuthAPI) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginRes, nil
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logouts++
	return f.logoutErr
}

func respuestaLogin() *dto.LoginResponse {
	return &dto.LoginResponse{
		User:        entity.User{ID: 1, Name: "Ana", Email: "ana@tienda.com"},
		Token:       "tok123",
		Roles:       []string{"admin"},
		Permissions: []string{"products.create"},
	}
}

func TestLogin_Exitoso_PueblaLaSesion(t *testing.T) {
	sess := session.New(nil)
	uc := auth.NewUseCase(&fakeAuthAPI{loginRes: respuestaLogin()}, sess, logger.Nop())

	err := uc.Login(context.Background(), "ana@tienda.com", "secreto")

	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "tok123", sess.Token())
	assert.True(t, sess.HasRole("admin"))
	assert.True(t, sess.HasPermission("products.create"))
}

func TestLogin_CredencialesMalas_ErrorGenerico(t *testing.T) {
	sess := session.New(nil)
	uc := auth.NewUseCase(&fakeAuthAPI{loginErr: domain.ErrUnauthorized}, sess, logger.Nop())

	err := uc.Login(context.Background(), "ana@tienda.com", "mala")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, sess.Authenticated())
}

func TestLogin_BackendCaido_MismoErrorGenerico(t *testing.T) {
	// Al usuario no se le distingue "backend caído" de "contraseña errónea"
	// en el formulario de login.
	sess := session.New(nil)
	uc := auth.NewUseCase(&fakeAuthAPI{loginErr: errors.New("conexión rechazada")}, sess, logger.Nop())

	err := uc.Login(context.Background(), "ana@tienda.com", "secreto")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogout_LimpiaLaSesion(t *testing.T) {
	sess := session.New(nil)
	api := &fakeAuthAPI{loginRes: respuestaLogin()}
	uc := auth.NewUseCase(api, sess, logger.Nop())
	require.NoError(t, uc.Login(context.Background(), "ana@tienda.com", "secreto"))

	uc.Logout(context.Background())

	assert.Equal(t, 1, api.logouts)
	assert.False(t, sess.Authenticated())
}

func TestLogout_RemotoFalla_LimpiaIgual(t *testing.T) {
	sess := session.New(nil)
	api := &fakeAuthAPI{loginRes: respuestaLogin(), logoutErr: errors.New("timeout")}
	uc := auth.NewUseCase(api, sess, logger.Nop())
	require.NoError(t, uc.Login(context.Background(), "ana@tienda.com", "secreto"))

	uc.Logout(context.Background())

	assert.False(t, sess.Authenticated(), "el logout local manda aunque el remoto falle")
}
