package middleware

import (
	"github.com/civicgate/civic-portal/internal/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// AccessTokenCookie carries the JWT between requests, giving the portal its
// session-like login flow.
const AccessTokenCookie = "access_token"

const tokenLookup = "cookie:" + AccessTokenCookie + ",header:Authorization"

// RequireUser guards pages that need a signed-in account. Anonymous callers
// are sent to the login page, never shown a bare 401.
func RequireUser(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: tokenLookup,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Redirect("/login/", fiber.StatusFound)
		},
	})
}

// OptionalUser attaches claims when a valid token is present and lets the
// request through either way.
func OptionalUser(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: tokenLookup,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}

// AnonymousOnly keeps signed-in users away from the register and login
// pages, mirroring the home redirect they would get in the browser.
func AnonymousOnly(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: tokenLookup,
		SuccessHandler: func(c *fiber.Ctx) error {
			return c.Redirect("/home/", fiber.StatusFound)
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}
