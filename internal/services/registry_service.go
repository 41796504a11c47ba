package services

import (
	"github.com/civicgate/civic-portal/internal/models"
	"gorm.io/gorm"
)

// RegistryService reads the geographic/organizational reference data that
// registration and appeal forms present as dropdowns.
type RegistryService struct {
	db *gorm.DB
}

func NewRegistryService(db *gorm.DB) *RegistryService {
	return &RegistryService{db: db}
}

func (s *RegistryService) Cities() ([]models.City, error) {
	var cities []models.City
	err := s.db.Order("region, name").Find(&cities).Error
	return cities, err
}

func (s *RegistryService) Municipalities() ([]models.Municipality, error) {
	var municipalities []models.Municipality
	err := s.db.Order("name").Find(&municipalities).Error
	return municipalities, err
}
