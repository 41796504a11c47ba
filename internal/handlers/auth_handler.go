package handlers

import (
	"errors"
	"time"

	"github.com/civicgate/civic-portal/internal/config"
	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/middleware"
	"github.com/civicgate/civic-portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

const refreshTokenCookie = "refresh_token"

type AuthHandler struct {
	authService     *services.AuthService
	registryService *services.RegistryService
	cfg             *config.Config
}

func NewAuthHandler(authService *services.AuthService, registryService *services.RegistryService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, registryService: registryService, cfg: cfg}
}

// RegisterForm provides the city dropdown for the registration page.
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	cities, err := h.registryService.Cities()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"cities": cities})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{"Invalid request body"}})
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrPhoneTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.FormErrors{Errors: []string{err.Error()}})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{err.Error()}})
	}

	h.setSessionCookies(c, resp)
	return c.Redirect("/home/", fiber.StatusFound)
}

// LoginForm returns the login page context.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "login"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{"Invalid request body"}})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.FormErrors{Errors: []string{"Invalid login credentials."}})
		}
		return fiber.ErrInternalServerError
	}

	h.setSessionCookies(c, resp)
	return c.Redirect("/home/", fiber.StatusFound)
}

// Refresh rotates the refresh token and reissues the session cookies. The
// token comes from the cookie so browser clients need no request body.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	req := dto.RefreshRequest{RefreshToken: c.Cookies(refreshTokenCookie)}
	if req.RefreshToken == "" {
		if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "refresh token required"})
		}
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			c.ClearCookie(middleware.AccessTokenCookie, refreshTokenCookie)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return fiber.ErrInternalServerError
	}

	h.setSessionCookies(c, resp)
	return c.JSON(resp.User)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Cookies(refreshTokenCookie)); err != nil {
		return fiber.ErrInternalServerError
	}

	c.ClearCookie(middleware.AccessTokenCookie, refreshTokenCookie)
	return c.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) setSessionCookies(c *fiber.Ctx, resp *dto.AuthResponse) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    resp.AccessToken,
		Expires:  time.Now().Add(h.cfg.JWTAccessExpiry),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     refreshTokenCookie,
		Value:    resp.RefreshToken,
		Expires:  time.Now().Add(h.cfg.JWTRefreshExpiry),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: "Lax",
	})
}
