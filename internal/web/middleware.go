package web

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/petparadise/storefront/internal/user"
)

const sessionKey = "session"

// jwtMiddleware validates the bearer token; the claims carry the session id
// and the role used for gating.
func jwtMiddleware(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
	})
}

// loadSession resolves the session id claim to its container set. A token
// whose session was evicted means the user signed out elsewhere.
func (a *App) loadSession(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing token"})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid claims"})
	}
	sessionID, _ := claims["session_id"].(string)
	set, ok := a.registry.Get(sessionID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "session expired"})
	}
	c.Locals(sessionKey, set)
	return c.Next()
}

// requireRole gates a route group on the signed-in user's role.
func requireRole(roles ...int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		set := session(c)
		u, ok := set.Auth.CurrentUser()
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "not signed in"})
		}
		for _, r := range roles {
			if u.RoleID == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "insufficient role"})
	}
}

func session(c *fiber.Ctx) *Containers {
	return c.Locals(sessionKey).(*Containers)
}

func currentUser(c *fiber.Ctx) user.User {
	u, _ := session(c).Auth.CurrentUser()
	return u
}
