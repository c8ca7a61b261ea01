package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

// memStorage almacenamiento en memoria para los tests.
type memStorage struct {
	state session.State
	ok    bool
	saves int
}

func (m *memStorage) Save(st session.State) error {
	m.state = st
	m.ok = true
	m.saves++
	return nil
}

func (m *memStorage) Load() (session.State, bool) { return m.state, m.ok }

func usuarioDePrueba() *entity.User {
	return &entity.User{ID: 1, Name: "Ana", Email: "ana@tienda.com"}
}

// tokenConExpiracion firma un JWT HS256 con el exp indicado.
func tokenConExpiracion(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := tok.SignedString([]byte("secreto-de-test"))
	require.NoError(t, err)
	return signed
}

// ──────────────────────────────────────────────────────────────────────────────
// SetAuth / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestSetAuth_PueblaLaSesion(t *testing.T) {
	s := session.New(nil)
	s.SetAuth(usuarioDePrueba(), "tok123", []string{"admin"}, []string{"products.create"})

	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok123", s.Token())
	require.NotNil(t, s.User())
	assert.Equal(t, "Ana", s.User().Name)
	assert.True(t, s.HasRole("admin"))
	assert.True(t, s.HasPermission("products.create"))
	assert.False(t, s.HasRole("vendedor"))
}

func TestSetAuth_SinToken_QuedaDesautenticada(t *testing.T) {
	s := session.New(nil)
	s.SetAuth(usuarioDePrueba(), "", []string{"admin"}, nil)

	assert.False(t, s.Authenticated(), "usuario sin token viola el invariante")
	assert.Nil(t, s.User())
	assert.False(t, s.HasRole("admin"))
}

func TestSetAuth_SinUsuario_QuedaDesautenticada(t *testing.T) {
	s := session.New(nil)
	s.SetAuth(nil, "tok123", nil, nil)

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
}

func TestLogout_LimpiaIdentidadYConservaTema(t *testing.T) {
	s := session.New(nil)
	s.ToggleDarkMode()
	s.SetAuth(usuarioDePrueba(), "tok123", []string{"admin"}, []string{"x"})

	s.Logout()

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	assert.False(t, s.HasRole("admin"))
	assert.True(t, s.DarkMode(), "la preferencia de tema sobrevive al logout")
}

// ──────────────────────────────────────────────────────────────────────────────
// DarkMode
// ──────────────────────────────────────────────────────────────────────────────

func TestToggleDarkMode_DobleToggleVuelveAlOriginal(t *testing.T) {
	s := session.New(nil)
	require.False(t, s.DarkMode())

	assert.True(t, s.ToggleDarkMode())
	assert.False(t, s.ToggleDarkMode())
	assert.False(t, s.DarkMode())
}

func TestToggleDarkMode_SinSesionTambienFunciona(t *testing.T) {
	s := session.New(nil)
	assert.False(t, s.Authenticated())
	assert.True(t, s.ToggleDarkMode())
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia y rehidratación
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_RehidrataDesdeStorage(t *testing.T) {
	mem := &memStorage{}
	previa := session.New(mem)
	previa.SetAuth(usuarioDePrueba(), "tok123", []string{"admin"}, nil)
	previa.ToggleDarkMode()

	nueva := session.New(mem)

	assert.True(t, nueva.Authenticated())
	assert.Equal(t, "tok123", nueva.Token())
	assert.True(t, nueva.HasRole("admin"))
	assert.True(t, nueva.DarkMode())
}

func TestNew_EstadoCorrupto_ArrancaVacia(t *testing.T) {
	// Token sin usuario: estado persistido que viola el invariante.
	mem := &memStorage{state: session.State{Token: "huerfano", Roles: []string{"admin"}}, ok: true}

	s := session.New(mem)

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	assert.False(t, s.HasRole("admin"))
}

func TestMutaciones_PersistenCadaVez(t *testing.T) {
	mem := &memStorage{}
	s := session.New(mem)

	s.SetAuth(usuarioDePrueba(), "tok123", nil, nil)
	s.ToggleDarkMode()
	s.Logout()

	assert.Equal(t, 3, mem.saves, "cada mutación escribe el estado completo")
}

// ──────────────────────────────────────────────────────────────────────────────
// TokenExpired
// ──────────────────────────────────────────────────────────────────────────────

func TestTokenExpired_JWTVencido(t *testing.T) {
	s := session.New(nil)
	s.SetAuth(usuarioDePrueba(), tokenConExpiracion(t, time.Now().Add(-time.Hour)), nil, nil)

	assert.True(t, s.TokenExpired())
}

func TestTokenExpired_JWTVigente(t *testing.T) {
	s := session.New(nil)
	s.SetAuth(usuarioDePrueba(), tokenConExpiracion(t, time.Now().Add(time.Hour)), nil, nil)

	assert.False(t, s.TokenExpired())
}

func TestTokenExpired_TokenOpaco_SeAsumeVigente(t *testing.T) {
	s := session.New(nil)
	s.SetAuth(usuarioDePrueba(), "token-opaco-no-jwt", nil, nil)

	assert.False(t, s.TokenExpired())
}

func TestTokenExpired_SinSesion_False(t *testing.T) {
	s := session.New(nil)
	assert.False(t, s.TokenExpired())
}

// ──────────────────────────────────────────────────────────────────────────────
// Copias defensivas
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_DevuelveCopia(t *testing.T) {
	s := session.New(nil)
	s.SetAuth(usuarioDePrueba(), "tok123", nil, nil)

	s.User().Name = "Otro"

	assert.Equal(t, "Ana", s.User().Name)
}

func TestRoles_DevuelveCopia(t *testing.T) {
	s := session.New(nil)
	s.SetAuth(usuarioDePrueba(), "tok123", []string{"admin"}, nil)

	roles := s.Roles()
	roles[0] = "mutado"

	assert.True(t, s.HasRole("admin"))
}
