package routes

import (
	"time"

	"github.com/civicgate/civic-portal/internal/config"
	"github.com/civicgate/civic-portal/internal/handlers"
	"github.com/civicgate/civic-portal/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	pagesHandler *handlers.PagesHandler,
	profileHandler *handlers.ProfileHandler,
	newsHandler *handlers.NewsHandler,
	appealHandler *handlers.AppealHandler,
	surveyHandler *handlers.SurveyHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	// Uploaded media and logos.
	app.Static("/static", "./static")

	app.Get("/", pagesHandler.Root)
	app.Get("/home/", middleware.OptionalUser(cfg), pagesHandler.Home)

	// Credential endpoints get a stricter rate limit: 10 req/min per IP.
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	app.Get("/register/", middleware.AnonymousOnly(cfg), authHandler.RegisterForm)
	app.Post("/register/", authLimiter, middleware.AnonymousOnly(cfg), authHandler.Register)
	app.Get("/login/", middleware.AnonymousOnly(cfg), authHandler.LoginForm)
	app.Post("/login/", authLimiter, middleware.AnonymousOnly(cfg), authHandler.Login)
	app.Get("/logout/", authHandler.Logout)
	app.Post("/refresh", authLimiter, authHandler.Refresh)

	app.Get("/profile/", middleware.RequireUser(cfg), profileHandler.Show)
	app.Post("/profile/", middleware.RequireUser(cfg), profileHandler.Update)

	app.Get("/news/", middleware.OptionalUser(cfg), newsHandler.List)
	app.Post("/news/", middleware.OptionalUser(cfg), newsHandler.List)

	app.Get("/map/", middleware.RequireUser(cfg), pagesHandler.Map)

	app.Get("/appeals", middleware.RequireUser(cfg), appealHandler.ListOwn)
	app.Get("/answer_appeals", middleware.RequireUser(cfg), appealHandler.ListForMunicipality)
	app.Post("/answer_appeals", middleware.RequireUser(cfg), appealHandler.Answer)
	app.Get("/create_appeal/", middleware.RequireUser(cfg), appealHandler.CreateForm)
	app.Post("/create_appeal/", middleware.RequireUser(cfg), appealHandler.Create)

	app.Get("/create_news/", middleware.RequireUser(cfg), middleware.RequireStaff(db), newsHandler.CreateForm)
	app.Post("/create_news/", middleware.RequireUser(cfg), middleware.RequireStaff(db), newsHandler.Create)

	app.Get("/surveys/", middleware.RequireUser(cfg), surveyHandler.List)
	app.Post("/surveys/answer", middleware.RequireUser(cfg), surveyHandler.SubmitAnswer)
}
