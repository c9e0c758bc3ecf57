package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tu-usuario/lunch-decider/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalStore)(nil)

// LocalStore guarda archivos subidos en disco bajo un directorio raíz.
type LocalStore struct {
	baseDir string
}

// NewLocalStore construye el almacenamiento con la raíz configurada (UPLOAD_DIR).
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

// Save escribe el contenido en baseDir/path, creando los directorios que falten.
func (s *LocalStore) Save(path string, content io.Reader) error {
	full := filepath.Join(s.baseDir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("crear directorio de upload: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("crear archivo de upload: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return fmt.Errorf("escribir upload: %w", err)
	}
	return f.Close()
}
