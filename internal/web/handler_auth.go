package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/petparadise/storefront/internal/auth"
	"github.com/petparadise/storefront/internal/user"
)

func (a *App) signIn(c *fiber.Ctx) error {
	payload := new(auth.LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sessionID, set := a.registry.Create()
	if err := set.Auth.Login(c.Context(), *payload); err != nil {
		a.registry.Drop(sessionID)
		status := fiber.StatusUnauthorized
		if err == auth.ErrAccountLocked {
			status = fiber.StatusForbidden
		}
		return c.Status(status).JSON(fiber.Map{
			"message":       "sign in failed",
			"notifications": set.Notifier.Active(),
		})
	}

	u, _ := set.Auth.CurrentUser()
	set.hydrate(c.Context(), u)

	claims := jwt.MapClaims{
		"session_id": sessionID,
		"user_id":    u.ID,
		"email":      u.Email,
		"role":       u.RoleID,
		"exp":        time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.cfg.JWTSecret))
	if err != nil {
		a.registry.Drop(sessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token":         signed,
		"user":          u,
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) signUp(c *fiber.Ctx) error {
	payload := new(auth.RegisterRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" || payload.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing required fields"})
	}

	// Registration needs no session of its own; a throwaway container set
	// keeps the notification flow uniform.
	id, set := a.registry.Create()
	defer a.registry.Drop(id)
	if err := set.Auth.Register(c.Context(), *payload); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":       "registration failed",
			"notifications": set.Notifier.Active(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) signOut(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	sessionID, _ := claims["session_id"].(string)

	set := session(c)
	set.Auth.Logout(c.Context())
	a.registry.Drop(sessionID)
	return c.SendStatus(fiber.StatusNoContent)
}

func (a *App) me(c *fiber.Ctx) error {
	u, ok := session(c).Auth.CurrentUser()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "not signed in"})
	}
	return c.JSON(u)
}

func (a *App) updateProfile(c *fiber.Ctx) error {
	payload := new(user.UpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	set := session(c)
	if err := set.Auth.UpdateProfile(c.Context(), *payload); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":       "update failed",
			"notifications": set.Notifier.Active(),
		})
	}
	u, _ := set.Auth.CurrentUser()
	return c.JSON(fiber.Map{
		"user":          u,
		"notifications": set.Notifier.Active(),
	})
}

func (a *App) notifications(c *fiber.Ctx) error {
	return c.JSON(session(c).Notifier.Active())
}

func (a *App) dismissNotification(c *fiber.Ctx) error {
	session(c).Notifier.Dismiss(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
