package usecase

import (
	"io"
	"time"
)

// Clock fuente de tiempo inyectable; los filtros de "hoy" dependen de ella
// para que las pruebas no tengan que manipular el reloj real.
type Clock func() time.Time

// FileStore puerto de almacenamiento de archivos subidos.
type FileStore interface {
	Save(path string, content io.Reader) error
}
