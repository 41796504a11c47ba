package services

import (
	"testing"

	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest(cityID uint) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:          "Anna",
		Surname:       "Ivanova",
		Sex:           "F",
		Email:         "anna@example.com",
		Password:      "long-enough",
		DateOfBirth:   "1990-04-12",
		Phone:         "+70000000001",
		AddressStreet: "Sadovaya",
		AddressHouse:  "12",
		CityID:        cityID,
	}
}

func TestRegisterCreatesCitizenAndIssuesTokens(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())
	city := seedCity(t, db)

	resp, err := svc.Register(registerRequest(city.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.RoleCitizen, resp.User.Role)

	var user models.User
	require.NoError(t, db.Where("email = ?", "anna@example.com").First(&user).Error)
	assert.Equal(t, models.DefaultUserLogo, user.Logo)
	assert.NotEqual(t, "long-enough", user.Password)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())
	city := seedCity(t, db)

	_, err := svc.Register(registerRequest(city.ID))
	require.NoError(t, err)

	dup := registerRequest(city.ID)
	dup.Phone = "+70000000002"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())
	city := seedCity(t, db)

	req := registerRequest(city.ID)
	req.Password = "short"
	_, err := svc.Register(req)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())
	city := seedCity(t, db)

	_, err := svc.Register(registerRequest(city.ID))
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "anna@example.com", Password: "long-enough"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(&dto.LoginRequest{Email: "anna@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())
	city := seedCity(t, db)

	resp, err := svc.Register(registerRequest(city.ID))
	require.NoError(t, err)

	rotated, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// The old token is revoked after use.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())
	city := seedCity(t, db)

	resp, err := svc.Register(registerRequest(city.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(resp.RefreshToken))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUpdateAddressChangesOnlyAddress(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db, testConfig())
	city := seedCity(t, db)
	user := seedUser(t, db, city, models.RoleCitizen, nil)

	updated, err := svc.UpdateAddress(user.ID, "Novaya", "7a")
	require.NoError(t, err)
	assert.Equal(t, "Novaya", updated.AddressStreet)
	assert.Equal(t, "7a", updated.AddressHouse)
	assert.Equal(t, user.Email, updated.Email)

	_, err = svc.UpdateAddress(user.ID, "", "7a")
	assert.Error(t, err)
}
