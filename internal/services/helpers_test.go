package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/civicgate/civic-portal/internal/config"
	"github.com/civicgate/civic-portal/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different empty in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.City{},
		&models.Municipality{},
		&models.User{},
		&models.Position{},
		&models.Photo{},
		&models.News{},
		&models.Appeal{},
		&models.AppealAnswer{},
		&models.Notification{},
		&models.Survey{},
		&models.Choice{},
		&models.SurveyAnswer{},
		&models.RefreshToken{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func seedCity(t *testing.T, db *gorm.DB) models.City {
	t.Helper()
	city := models.City{Region: "Testland", Name: "Testville", Timezone: 3}
	require.NoError(t, db.Create(&city).Error)
	return city
}

func seedMunicipality(t *testing.T, db *gorm.DB, city models.City) models.Municipality {
	t.Helper()
	municipality := models.Municipality{
		Name:    "District Office",
		Address: "1 Main St",
		CityID:  &city.ID,
	}
	require.NoError(t, db.Create(&municipality).Error)
	return municipality
}

func seedUser(t *testing.T, db *gorm.DB, city models.City, role models.Role, municipalityID *uint) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Email:          fmt.Sprintf("user%d@example.com", time.Now().UnixNano()),
		Password:       string(hash),
		Name:           "Ivan",
		Surname:        "Petrov",
		Role:           role,
		AddressStreet:  "Lenina",
		AddressHouse:   "5",
		CityID:         city.ID,
		MunicipalityID: municipalityID,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// makeUploadFiles builds in-memory multipart file headers, one per declared
// content type.
func makeUploadFiles(t *testing.T, contentTypes ...string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for i, ct := range contentTypes {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photos"; filename="photo%d.jpg"`, i))
		header.Set("Content-Type", ct)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("file-content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["photos"]
}
