package handlers

import (
	"github.com/civicgate/civic-portal/internal/auth"
	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/models"
	"github.com/civicgate/civic-portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PagesHandler struct {
	authService *services.AuthService
	newsService *services.NewsService
}

func NewPagesHandler(authService *services.AuthService, newsService *services.NewsService) *PagesHandler {
	return &PagesHandler{authService: authService, newsService: newsService}
}

func (h *PagesHandler) Root(c *fiber.Ctx) error {
	return c.Redirect("/home/", fiber.StatusFound)
}

// Home shows the latest announcements for the viewer's city. Anonymous
// visitors see the default city.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	news, err := h.newsService.HomePreview(viewerCityID(c, h.authService))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(dto.HomeResponse{News: news})
}

func (h *PagesHandler) Map(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "map"})
}

// viewerCityID resolves the city whose news the caller should see: their
// own when signed in, the default city otherwise.
func viewerCityID(c *fiber.Ctx, authService *services.AuthService) uint {
	userID, err := auth.UserID(c)
	if err != nil {
		return models.DefaultCityID
	}
	user, err := authService.GetUser(userID)
	if err != nil {
		return models.DefaultCityID
	}
	return user.CityID
}
