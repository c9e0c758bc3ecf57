package upload

import (
	"errors"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnsupportedType extensión de archivo fuera de la lista permitida.
var ErrUnsupportedType = errors.New("tipo de archivo no soportado")

// allowedExtensions extensiones aceptadas para fotos y cartas del día.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
}

// BuildPath construye la ruta de guardado de un archivo subido:
//
//	uploads/<owner>/<slug(name)>-<uuid><ext>
//
// owner es la forma textual de la entidad dueña (nombre del restaurante,
// nombre del menú, etc.) y name la base para el slug del archivo. El uuid
// evita colisiones entre subidas con el mismo nombre.
// Retorna ErrUnsupportedType si la extensión no está en la lista permitida.
func BuildPath(owner, name, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}
	generated := Slugify(name) + "-" + uuid.New().String()
	return path.Join("uploads", owner, generated+ext), nil
}

// Slugify normaliza un texto a minúsculas con guiones: quita acentos
// (descomposición NFD + eliminación de marcas diacríticas) y colapsa
// cualquier secuencia no alfanumérica en un solo guion.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
