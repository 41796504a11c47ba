package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultUserLogo = "static/user_logo/default.png"

// User is a portal account. Email doubles as the login identity. Staff
// accounts additionally carry a municipality.
type User struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Email          string          `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password       string          `gorm:"not null" json:"-"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	Surname        string          `gorm:"size:255;not null" json:"surname"`
	Patronymic     string          `gorm:"size:255" json:"patronymic,omitempty"`
	Sex            string          `gorm:"size:1" json:"sex,omitempty"`
	DateOfBirth    *datatypes.Date `json:"date_of_birth,omitempty"`
	Phone          *string         `gorm:"size:32;uniqueIndex" json:"phone,omitempty"`
	Role           Role            `gorm:"not null;default:1" json:"role"`
	AddressStreet  string          `gorm:"size:255;not null" json:"address_street"`
	AddressHouse   string          `gorm:"size:255;not null" json:"address_house"`
	Logo           string          `gorm:"size:255;default:'static/user_logo/default.png'" json:"logo"`
	CityID         uint            `gorm:"not null;index" json:"city_id"`
	City           City            `gorm:"foreignKey:CityID" json:"-"`
	MunicipalityID *uint           `gorm:"index" json:"municipality_id,omitempty"`
	Municipality   *Municipality   `gorm:"foreignKey:MunicipalityID" json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (u *User) FullName() string {
	if u.Patronymic == "" {
		return u.Surname + " " + u.Name
	}
	return u.Surname + " " + u.Name + " " + u.Patronymic
}
