// Package storage persiste la sesión del panel en un archivo JSON local,
// el equivalente al localStorage del navegador para un proceso nativo.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Alexander08S-C/inventario-frontend/internal/session"
)

var _ session.Storage = (*FileStorage)(nil)

// FileStorage guarda el estado de sesión en un archivo JSON. La escritura es
// atómica (archivo temporal + rename) para que un corte a mitad de escritura
// nunca deje un archivo truncado.
type FileStorage struct {
	path string
}

// NewFileStorage construye el almacenamiento sobre la ruta dada.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Save serializa el estado completo de la sesión.
func (f *FileStorage) Save(st session.State) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Load rehidrata el estado guardado. Archivo ausente, ilegible o con JSON
// corrupto devuelve ok=false; el llamador arranca con la sesión vacía.
func (f *FileStorage) Load() (session.State, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return session.State{}, false
	}
	var st session.State
	if err := json.Unmarshal(data, &st); err != nil {
		return session.State{}, false
	}
	return st, true
}
