package handlers

import (
	"errors"

	"github.com/civicgate/civic-portal/internal/auth"
	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	authService *services.AuthService
}

func NewProfileHandler(authService *services.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusFound)
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusFound)
	}

	return c.JSON(dto.ProfileResponse{
		User:          dto.NewUserResponse(user),
		AddressStreet: user.AddressStreet,
		AddressHouse:  user.AddressHouse,
		Logo:          user.Logo,
	})
}

// Update changes the address fields, the only mutable part of a profile.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusFound)
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{"Invalid request body"}})
	}

	if _, err := h.authService.UpdateAddress(userID, req.AddressStreet, req.AddressHouse); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Redirect("/login/", fiber.StatusFound)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{err.Error()}})
	}

	return c.Redirect("/profile/", fiber.StatusFound)
}
