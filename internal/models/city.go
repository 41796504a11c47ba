package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DefaultCityLogo         = "static/city_logo/default.png"
	DefaultMunicipalityLogo = "static/municipality_logo/default.png"

	// DefaultCityID is the city shown to anonymous visitors.
	DefaultCityID uint = 1
)

// City groups municipalities and scopes the news feed.
type City struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Region   string `gorm:"size:255;not null" json:"region"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Timezone int    `gorm:"not null;default:3" json:"timezone"`
	Logo     string `gorm:"size:255;default:'static/city_logo/default.png'" json:"logo"`

	Municipalities []Municipality `gorm:"foreignKey:CityID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Municipality is the local administrative body that receives appeals and
// publishes news within one city.
type Municipality struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Address      string         `gorm:"size:255;not null" json:"address"`
	ContactPhone string         `gorm:"size:255" json:"contact_phone"`
	ContactEmail string         `gorm:"size:255" json:"contact_email"`
	CreationDate datatypes.Date `json:"creation_date"`
	Logo         string         `gorm:"size:255;default:'static/municipality_logo/default.png'" json:"logo"`
	CityID       *uint          `gorm:"index" json:"city_id,omitempty"`
	City         *City          `gorm:"foreignKey:CityID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Position binds a user to a municipality's staff under a free-text role
// name. Nothing stops one user from holding several positions.
type Position struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"size:255;not null" json:"name"`
	MunicipalityID *uint         `gorm:"index" json:"municipality_id,omitempty"`
	Municipality   *Municipality `gorm:"foreignKey:MunicipalityID" json:"-"`
	UserID         *uint         `gorm:"index" json:"user_id,omitempty"`
	User           *User         `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
