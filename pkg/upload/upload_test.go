package upload_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lunch-decider/pkg/upload"
)

// uuidPattern forma canónica de un UUID v4 en la ruta generada.
var uuidPattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

func TestBuildPath_ExtensionNoSoportada(t *testing.T) {
	_, err := upload.BuildPath("Bella Italia", "Bella Italia", "menu.docx")
	require.ErrorIs(t, err, upload.ErrUnsupportedType,
		".docx no está en la lista de extensiones permitidas")
}

func TestBuildPath_PDFAceptado(t *testing.T) {
	p, err := upload.BuildPath("Bella Italia", "Bella Italia", "menu.pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p, "uploads/Bella Italia/"),
		"la ruta debe estar namespaceada por la entidad dueña")
	assert.True(t, strings.HasSuffix(p, ".pdf"), "debe conservar la extensión")
	assert.Contains(t, p, "bella-italia-", "el nombre debe incluir el slug de la entidad")
	assert.Regexp(t, uuidPattern, p, "el nombre debe incluir un uuid fresco")
}

func TestBuildPath_RutasUnicasPorSubida(t *testing.T) {
	a, err := upload.BuildPath("Sushi Ya", "Sushi Ya", "foto.png")
	require.NoError(t, err)
	b, err := upload.BuildPath("Sushi Ya", "Sushi Ya", "foto.png")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "dos subidas con el mismo nombre no deben colisionar")
}

func TestBuildPath_ExtensionEnMayusculas(t *testing.T) {
	p, err := upload.BuildPath("Tacos El Güero", "Tacos El Güero", "FOTO.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(p, ".jpg"))
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bella Italia", "bella-italia"},
		{"Tacos El Güero", "tacos-el-guero"},
		{"Café París 2026-08-28", "cafe-paris-2026-08-28"},
		{"  --hola--  ", "hola"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, upload.Slugify(c.in), "slug de %q", c.in)
	}
}
