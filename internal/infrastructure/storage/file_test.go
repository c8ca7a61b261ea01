package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander08S-C/inventario-frontend/internal/domain/entity"
	"github.com/Alexander08S-C/inventario-frontend/internal/infrastructure/storage"
	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	fs := storage.NewFileStorage(path)

	original := session.State{
		User:     &entity.User{ID: 1, Name: "Ana", Email: "ana@tienda.com"},
		Token:    "tok123",
		Roles:    []string{"admin"},
		DarkMode: true,
	}
	require.NoError(t, fs.Save(original))

	cargado, ok := fs.Load()
	require.True(t, ok)
	assert.Equal(t, original, cargado)
}

func TestFileStorage_ArchivoAusente_OkFalse(t *testing.T) {
	fs := storage.NewFileStorage(filepath.Join(t.TempDir(), "no-existe.json"))

	_, ok := fs.Load()
	assert.False(t, ok)
}

func TestFileStorage_JSONCorrupto_OkFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	_, ok := storage.NewFileStorage(path).Load()
	assert.False(t, ok)
}

func TestFileStorage_CreaDirectoriosIntermedios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anidado", "mas", "session.json")
	fs := storage.NewFileStorage(path)

	require.NoError(t, fs.Save(session.State{DarkMode: true}))

	st, ok := fs.Load()
	require.True(t, ok)
	assert.True(t, st.DarkMode)
}

func TestFileStorage_SobrescrituraReemplazaCompleto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	fs := storage.NewFileStorage(path)

	require.NoError(t, fs.Save(session.State{Token: "viejo", User: &entity.User{ID: 1}}))
	require.NoError(t, fs.Save(session.State{DarkMode: true}))

	st, ok := fs.Load()
	require.True(t, ok)
	assert.Empty(t, st.Token)
	assert.Nil(t, st.User)
	assert.True(t, st.DarkMode)
}

func TestFileStorage_PermisosRestringidos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, storage.NewFileStorage(path).Save(session.State{Token: "tok", User: &entity.User{ID: 1}}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "el archivo de sesión guarda una credencial")
}
