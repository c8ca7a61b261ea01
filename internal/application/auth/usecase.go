// Package auth casos de uso de autenticación del panel: iniciar y cerrar
// sesión contra el backend, manteniendo la sesión local como autoridad.
package auth

import (
	"context"

	"github.com/Alexander08S-C/inventario-frontend/internal/application/dto"
	"github.com/Alexander08S-C/inventario-frontend/internal/application/ports"
	"github.com/Alexander08S-C/inventario-frontend/internal/domain"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
	"github.com/Alexander08S-C/inventario-frontend/pkg/logger"
)

// UseCase login/logout sobre el puerto AuthAPI y la sesión inyectada.
type UseCase struct {
	api     ports.AuthAPI
	session *session.Store
	log     *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(api ports.AuthAPI, sess *session.Store, log *logger.Logger) *UseCase {
	return &UseCase{api: api, session: sess, log: log}
}

// Login autentica contra el backend y puebla la sesión atómicamente.
// Cualquier fallo se colapsa en ErrInvalidCredentials: al usuario nunca se le
// distingue "no existe" de "contraseña errónea".
func (uc *UseCase) Login(ctx context.Context, email, password string) error {
	res, err := uc.api.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		uc.log.Warn().Str("email", email).Err(err).Msg("login fallido")
		return domain.ErrInvalidCredentials
	}
	uc.session.SetAuth(&res.User, res.Token, res.Roles, res.Permissions)
	uc.log.Info().Str("email", email).Msg("sesión iniciada")
	return nil
}

// Logout cierra sesión. La invalidación remota es best-effort: si el backend
// no responde, la sesión local se limpia igualmente.
func (uc *UseCase) Logout(ctx context.Context) {
	if err := uc.api.Logout(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("logout remoto falló, se limpia la sesión local igualmente")
	}
	uc.session.Logout()
	uc.log.Info().Msg("sesión cerrada")
}
