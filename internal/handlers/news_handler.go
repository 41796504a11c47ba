package handlers

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/civicgate/civic-portal/internal/auth"
	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/models"
	"github.com/civicgate/civic-portal/internal/services"
	"github.com/civicgate/civic-portal/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type NewsHandler struct {
	newsService *services.NewsService
	authService *services.AuthService
}

func NewNewsHandler(newsService *services.NewsService, authService *services.AuthService) *NewsHandler {
	return &NewsHandler{newsService: newsService, authService: authService}
}

// List serves the paginated, category-filterable news feed. Two filter
// input modes: the submitted checkbox form (POST, checked means included)
// or the excepts query parameter (GET, comma-separated excluded names).
func (h *NewsHandler) List(c *fiber.Ctx) error {
	var excluded []models.NewsCategory
	if c.Method() == fiber.MethodPost {
		for _, category := range models.NewsCategories() {
			if c.FormValue(string(category)) == "" {
				excluded = append(excluded, category)
			}
		}
	} else if excepts := c.Query("excepts"); excepts != "" {
		for _, name := range strings.Split(excepts, ",") {
			excluded = append(excluded, models.NewsCategory(name))
		}
	}

	// A page value that is not a number degrades to page 1.
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		page = 1
	}

	resp, err := h.newsService.List(viewerCityID(c, h.authService), excluded, page)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(resp)
}

// CreateForm returns the category enumeration for the publish form.
func (h *NewsHandler) CreateForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": models.NewsCategories()})
}

func (h *NewsHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Redirect("/login/", fiber.StatusFound)
	}

	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{"Invalid request body"}})
	}

	news, err := h.newsService.Create(userID, &req, formPhotos(c))
	if err != nil {
		if errors.Is(err, services.ErrStaffOnly) {
			return c.Redirect("/home/", fiber.StatusFound)
		}
		if isFormError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrors{Errors: []string{err.Error()}})
		}
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(news)
}

// formPhotos extracts the uploaded "photos" files, if any.
func formPhotos(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["photos"]
}

func isFormError(err error) bool {
	return errors.Is(err, services.ErrTitleRequired) ||
		errors.Is(err, services.ErrTitleTooLong) ||
		errors.Is(err, services.ErrShortDescTooLong) ||
		errors.Is(err, services.ErrTextRequired) ||
		errors.Is(err, services.ErrUnknownCategory) ||
		errors.Is(err, services.ErrMunicipalityNotFound) ||
		errors.Is(err, storage.ErrTooManyFiles) ||
		errors.Is(err, storage.ErrFileTooLarge) ||
		errors.Is(err, storage.ErrNotAnImage)
}
