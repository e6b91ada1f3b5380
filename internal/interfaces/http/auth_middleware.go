package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/pkg/jwt"
)

// Locals keys para UserID e Papel no Fiber.
const (
	LocalUserID = "user_id"
	LocalPapel  = "papel"
)

// AuthMiddleware valida o Bearer Token JWT e extrai UserID e Papel para c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, papel, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalPapel, papel)
		return c.Next()
	}
}

// RequireRole restringe a rota aos papéis informados. Deve vir depois do
// AuthMiddleware.
func RequireRole(papeis ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		papel := GetPapel(c)
		if papel == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem papel de usuário"})
		}
		for _, p := range papeis {
			if papel == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado para este papel"})
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPapel devolve o papel do usuário do contexto (depois do middleware de auth).
func GetPapel(c *fiber.Ctx) string {
	v := c.Locals(LocalPapel)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
