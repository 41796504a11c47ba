package handlers

import (
	"errors"

	"github.com/civicgate/civic-portal/internal/auth"
	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AppealHandler struct {
	appealService   *services.AppealService
	registryService *services.RegistryService
}

func NewAppealHandler(appealService *services.AppealService, registryService *services.RegistryService) *AppealHandler {
	return &AppealHandler{appealService: appealService, registryService: registryService}
}

// ListOwn shows the citizen their filed appeals.
func (h *AppealHandler) ListOwn(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusFound)
	}

	appeals, err := h.appealService.ListOwn(userID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(dto.AppealListResponse{Appeals: appeals})
}

// ListForMunicipality shows staff the appeals addressed to their
// municipality.
func (h *AppealHandler) ListForMunicipality(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusFound)
	}

	appeals, err := h.appealService.ListForMunicipality(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Redirect("/login/", fiber.StatusFound)
		}
		return fiber.ErrInternalServerError
	}
	return c.JSON(dto.AppealListResponse{Appeals: appeals})
}

func (h *AppealHandler) Answer(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusFound)
	}

	var req dto.AnswerAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{"Invalid request body"}})
	}

	answer, err := h.appealService.Answer(userID, req.AppealID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAppealNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrAlreadyAnswered),
			errors.Is(err, services.ErrAnswerRequired),
			errors.Is(err, services.ErrNoPosition):
			return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{err.Error()}})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Redirect("/login/", fiber.StatusFound)
		}
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(answer)
}

// CreateForm provides the municipality dropdown for the appeal form.
func (h *AppealHandler) CreateForm(c *fiber.Ctx) error {
	municipalities, err := h.registryService.Municipalities()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"municipalities": municipalities})
}

func (h *AppealHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusFound)
	}

	var req dto.CreateAppealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{"Invalid request body"}})
	}

	appeal, err := h.appealService.Submit(userID, &req, formPhotos(c))
	if err != nil {
		if isFormError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{err.Error()}})
		}
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(appeal)
}
