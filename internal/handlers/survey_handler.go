package handlers

import (
	"errors"

	"github.com/civicgate/civic-portal/internal/auth"
	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SurveyHandler struct {
	surveyService *services.SurveyService
}

func NewSurveyHandler(surveyService *services.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

func (h *SurveyHandler) List(c *fiber.Ctx) error {
	surveys, err := h.surveyService.List()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(dto.SurveyListResponse{Surveys: surveys})
}

func (h *SurveyHandler) SubmitAnswer(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusFound)
	}

	var req dto.SubmitSurveyAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{"Invalid request body"}})
	}

	answer, err := h.surveyService.SubmitAnswer(userID, req.SurveyID, req.ChoiceID)
	if err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrChoiceNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{err.Error()}})
		}
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(answer)
}
