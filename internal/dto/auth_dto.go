package dto

import "github.com/civicgate/civic-portal/internal/models"

type RegisterRequest struct {
	Name          string `json:"name" form:"name"`
	Surname       string `json:"surname" form:"surname"`
	Patronymic    string `json:"patronymic" form:"patronymic"`
	Sex           string `json:"sex" form:"sex"`
	Email         string `json:"email" form:"email"`
	Password      string `json:"password" form:"password"`
	DateOfBirth   string `json:"date_of_birth" form:"date_of_birth"`
	Phone         string `json:"phone" form:"phone"`
	AddressStreet string `json:"address_street" form:"address_street"`
	AddressHouse  string `json:"address_house" form:"address_house"`
	CityID        uint   `json:"city_id" form:"city_id"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type UserResponse struct {
	ID             uint        `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name"`
	Surname        string      `json:"surname"`
	Patronymic     string      `json:"patronymic,omitempty"`
	Role           models.Role `json:"role"`
	RoleName       string      `json:"role_name"`
	CityID         uint        `json:"city_id"`
	MunicipalityID *uint       `json:"municipality_id,omitempty"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Surname:        u.Surname,
		Patronymic:     u.Patronymic,
		Role:           u.Role,
		RoleName:       u.Role.String(),
		CityID:         u.CityID,
		MunicipalityID: u.MunicipalityID,
	}
}
