package middleware

import (
	"github.com/civicgate/civic-portal/internal/auth"
	"github.com/civicgate/civic-portal/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireStaff redirects base-tier citizens home. Must run after
// RequireUser. The gate is "not citizen", matching the portal's original
// publishing rule.
func RequireStaff(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return c.Redirect("/login/", fiber.StatusFound)
		}

		var user models.User
		if err := db.Select("id", "role").First(&user, userID).Error; err != nil {
			return c.Redirect("/login/", fiber.StatusFound)
		}

		if !user.Role.IsStaff() {
			return c.Redirect("/home/", fiber.StatusFound)
		}
		return c.Next()
	}
}
