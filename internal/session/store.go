// Package session mantiene la sesión del operador del panel: identidad,
// credencial bearer, roles/permisos y preferencia de tema. Es la única fuente
// de verdad que consultan el gateway y las páginas, y se persiste completa en
// cada mutación para sobrevivir reinicios del proceso.
package session

import (
	"slices"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
)

// State estado serializable de la sesión. user y token van juntos: ambos
// presentes (autenticado) o ambos ausentes.
type State struct {
	User        *entity.User `json:"user"`
	Token       string       `json:"token"`
	Roles       []string     `json:"roles"`
	Permissions []string     `json:"permissions"`
	DarkMode    bool         `json:"dark_mode"`
}

// Storage puerto de persistencia de la sesión. Load devuelve ok=false si el
// estado guardado no existe o está corrupto; la sesión arranca vacía en ese caso.
type Storage interface {
	Save(State) error
	Load() (State, bool)
}

// Store sesión del proceso. Se inyecta explícitamente a cada colaborador,
// nunca como singleton de paquete. Los lectores ven siempre un estado
// completo: cada mutación reemplaza los campos bajo el mismo lock.
type Store struct {
	mu      sync.RWMutex
	state   State
	storage Storage
}

// New construye la sesión rehidratando desde storage. storage puede ser nil
// (sesión solo en memoria, útil en tests). Un estado ausente o malformado
// deja la sesión en sus valores vacíos, nunca falla.
func New(storage Storage) *Store {
	s := &Store{storage: storage}
	if storage != nil {
		if st, ok := storage.Load(); ok {
			// No aceptar estados que violen el invariante user<->token.
			if st.User == nil || st.Token == "" {
				st.User = nil
				st.Token = ""
				st.Roles = nil
				st.Permissions = nil
			}
			s.state = st
		}
	}
	return s
}

// SetAuth reemplaza atómicamente identidad, credencial, roles y permisos.
// Si falta el usuario o el token la sesión queda desautenticada: el invariante
// "ambos o ninguno" se defiende aquí, no en los llamadores.
func (s *Store) SetAuth(user *entity.User, token string, roles, permissions []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil || token == "" {
		s.clearAuthLocked()
	} else {
		u := *user
		s.state.User = &u
		s.state.Token = token
		s.state.Roles = slices.Clone(roles)
		s.state.Permissions = slices.Clone(permissions)
	}
	s.persistLocked()
}

// Logout limpia identidad, credencial, roles y permisos. DarkMode se conserva.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearAuthLocked()
	s.persistLocked()
}

// ToggleDarkMode invierte la preferencia de tema y devuelve el valor nuevo.
// Independiente del estado de autenticación.
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DarkMode = !s.state.DarkMode
	s.persistLocked()
	return s.state.DarkMode
}

// HasRole consulta pura de pertenencia sobre los roles vigentes.
func (s *Store) HasRole(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.state.Roles, name)
}

// HasPermission consulta pura de pertenencia sobre los permisos vigentes.
func (s *Store) HasPermission(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.state.Permissions, name)
}

// Authenticated true si hay usuario y token.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User != nil && s.state.Token != ""
}

// Token credencial bearer vigente, o "" sin sesión. El gateway la lee fresca
// en cada petición, de modo que un Logout/SetAuth intermedio se respeta de inmediato.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// User copia de la identidad vigente, o nil sin sesión.
func (s *Store) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// Roles copia de los roles vigentes.
func (s *Store) Roles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Roles)
}

// DarkMode preferencia de tema vigente.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.DarkMode
}

// TokenExpired true si el token es un JWT cuyo claim exp ya pasó. El token no
// se verifica criptográficamente (eso es asunto del backend); solo se inspecciona
// para redirigir a /login antes de lanzar peticiones condenadas a 401.
// Un token ilegible u opaco se asume vigente.
func (s *Store) TokenExpired() bool {
	tok := s.Token()
	if tok == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (s *Store) clearAuthLocked() {
	s.state.User = nil
	s.state.Token = ""
	s.state.Roles = nil
	s.state.Permissions = nil
}

// persistLocked serializa el estado completo. Un fallo de escritura no
// invalida la mutación en memoria: la sesión sigue siendo válida para el
// proceso actual aunque no sobreviva un reinicio.
func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}
	_ = s.storage.Save(s.state)
}
