package models

import "time"

// NewsCategory is the closed set of announcement categories.
type NewsCategory string

const (
	CategoryWater           NewsCategory = "water"
	CategoryLighting        NewsCategory = "lighting"
	CategoryGas             NewsCategory = "gas"
	CategoryHeating         NewsCategory = "heating"
	CategoryRepairWork      NewsCategory = "repair_work"
	CategoryWasteRemoval    NewsCategory = "waste_removal"
	CategoryStreet          NewsCategory = "street"
	CategoryCollectionSites NewsCategory = "collection_sites"
	CategoryOther           NewsCategory = "other"
)

// NewsCategories lists every category in display order.
func NewsCategories() []NewsCategory {
	return []NewsCategory{
		CategoryWater,
		CategoryLighting,
		CategoryGas,
		CategoryHeating,
		CategoryRepairWork,
		CategoryWasteRemoval,
		CategoryStreet,
		CategoryCollectionSites,
		CategoryOther,
	}
}

func (c NewsCategory) Valid() bool {
	for _, known := range NewsCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// News is a city-scoped announcement authored by municipality staff.
type News struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	CityID           uint          `gorm:"not null;index;default:1" json:"city_id"`
	City             City          `gorm:"foreignKey:CityID" json:"-"`
	Category         NewsCategory  `gorm:"size:50;not null;default:'other';index" json:"category"`
	Title            string        `gorm:"size:100;not null" json:"title"`
	ShortDescription string        `gorm:"size:210;not null" json:"short_description"`
	Text             string        `gorm:"type:text;not null" json:"text"`
	PublicationDate  time.Time     `gorm:"not null;index" json:"publication_date"`
	MunicipalityID   *uint         `gorm:"index" json:"municipality_id,omitempty"`
	Municipality     *Municipality `gorm:"foreignKey:MunicipalityID" json:"-"`
	AuthorID         *uint         `gorm:"index" json:"author_id,omitempty"`
	Author           *User         `gorm:"foreignKey:AuthorID" json:"-"`
	Photos           []Photo       `gorm:"many2many:news_photos" json:"photos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
