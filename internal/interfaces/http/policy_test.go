package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/lunch-decider/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/lunch-decider/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "lunch-decider-test"
	testExpMin    = 60
)

// buildPolicyApp construye una aplicación Fiber mínima con una ruta de
// lectura y otra de escritura detrás de las políticas indicadas.
func buildPolicyApp(policies ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{apphttp.OptionalAuthMiddleware(testJWTSecret)}, policies...)
	grp := app.Group("/resource", handlers...)
	ok := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "user_id": apphttp.GetUserID(c)})
	}
	grp.Get("/", ok)
	grp.Post("/", ok)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdminOrReadOnly
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: lectura sin token → debe pasar (HTTP 200).
func TestAdminOrReadOnly_LecturaAnonimaPermitida(t *testing.T) {
	app := buildPolicyApp(apphttp.AuthenticatedOrReadOnly(), apphttp.AdminOrReadOnly())
	resp := doRequest(t, app, http.MethodGet, "/resource/", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"las lecturas deben ser públicas")
}

// Caso 2: escritura de admin → HTTP 200.
func TestAdminOrReadOnly_AdminPuedeEscribir(t *testing.T) {
	app := buildPolicyApp(apphttp.AuthenticatedOrReadOnly(), apphttp.AdminOrReadOnly())
	resp := doRequest(t, app, http.MethodPost, "/resource/", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder escribir")
}

// Caso 3: escritura de empleado → HTTP 403 FORBIDDEN.
func TestAdminOrReadOnly_EmpleadoBloqueadoAlEscribir(t *testing.T) {
	app := buildPolicyApp(apphttp.AuthenticatedOrReadOnly(), apphttp.AdminOrReadOnly())
	resp := doRequest(t, app, http.MethodPost, "/resource/", tokenForRole(t, "employee"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"empleado no debe poder escribir en recursos de administrador")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 4: escritura sin token → HTTP 401.
func TestAdminOrReadOnly_EscrituraAnonimaRetorna401(t *testing.T) {
	app := buildPolicyApp(apphttp.AuthenticatedOrReadOnly(), apphttp.AdminOrReadOnly())
	resp := doRequest(t, app, http.MethodPost, "/resource/", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"escribir sin autenticarse debe retornar 401")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthenticatedOrReadOnly
// ──────────────────────────────────────────────────────────────────────────────

// Cualquier usuario autenticado puede escribir, sin importar el rol.
func TestAuthenticatedOrReadOnly_EmpleadoPuedeEscribir(t *testing.T) {
	app := buildPolicyApp(apphttp.AuthenticatedOrReadOnly())
	resp := doRequest(t, app, http.MethodPost, "/resource/", tokenForRole(t, "employee"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"empleado autenticado debe poder escribir")
}

func TestAuthenticatedOrReadOnly_LecturaAnonimaPermitida(t *testing.T) {
	app := buildPolicyApp(apphttp.AuthenticatedOrReadOnly())
	resp := doRequest(t, app, http.MethodGet, "/resource/", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Token presente pero inválido: aunque la lectura sea pública, un token
// malformado es 401 y no se degrada a anónimo.
func TestOptionalAuth_TokenInvalidoRetorna401(t *testing.T) {
	app := buildPolicyApp(apphttp.AuthenticatedOrReadOnly())
	resp := doRequest(t, app, http.MethodGet, "/resource/", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token inválido no debe tratarse como petición anónima")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	resp := doRequest(t, app, http.MethodGet, "/me", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg: integridad del generate/parse con role
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "employee", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "employee", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
