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

	apphttp "github.com/oficinago/oficina-api/internal/interfaces/http"
	pkgjwt "github.com/oficinago/oficina-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "oficina-api-test"
	testExpMin    = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para interpretar o JWT e carregar os locals
//   - RequireRole para autorizar o acesso
//   - Um handler dummy que devolve 200 se passar pelos middlewares
func buildTestApp(papeisPermitidos ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar erros internos nos testes
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Rota protegida: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(papeisPermitidos...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"papel": apphttp.GetPapel(c),
			})
		},
	)
	return app
}

// tokenParaPapel gera um JWT com o papel indicado.
func tokenParaPapel(t *testing.T, papel string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, papel, testIssuer, testExpMin)
	require.NoError(t, err, "deve ser gerado um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara um GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: o usuário tem o papel exigido → deve passar (HTTP 200).
func TestRequireRole_AdminAcessaRotaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenParaPapel(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin deve poder acessar rota restrita a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "a resposta deve incluir ok:true")
	assert.Equal(t, "admin", body["papel"], "o papel deve ser admin")
}

// Caso 1b: o usuário tem um dos papéis permitidos (multi-papel) → HTTP 200.
func TestRequireRole_AtendenteAcessaRotaAdminOuAtendente(t *testing.T) {
	app := buildTestApp("admin", "atendente")
	resp := doRequest(t, app, tokenParaPapel(t, "atendente"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"atendente deve poder acessar rota que permite admin ou atendente")
}

// Caso 2: o usuário tem papel diferente do exigido → HTTP 403 Forbidden.
func TestRequireRole_MecanicoBloqueadoEmRotaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenParaPapel(t, "mecanico"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"mecânico não deve poder acessar rota restrita a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
}

// Caso 2b: atendente bloqueado em rota só de mecânico → HTTP 403.
func TestRequireRole_AtendenteBloqueadoEmRotaMecanico(t *testing.T) {
	app := buildTestApp("mecanico")
	resp := doRequest(t, app, tokenParaPapel(t, "atendente"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: token sem claim de papel (emulado com papel vazio) → HTTP 401.
func TestRequireRole_TokenSemPapel_Retorna401(t *testing.T) {
	// Geramos um token com papel vazio para simular um token legado sem o claim.
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sem papel deve retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"a resposta deve indicar o código MISSING_ROLE")
}

// Caso 4: sem header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SemAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "") // sem header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes AuthMiddleware — extração de claims do token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"papel":   apphttp.GetPapel(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenParaPapel(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "admin", body["papel"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes do pkg jwt — integridade do generate/parse com papel
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ComPapel(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "mecanico", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, papel, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "mecanico", papel)
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	// Token com expiração -1 minuto (já expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}
