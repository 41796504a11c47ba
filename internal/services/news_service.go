package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/models"
	"github.com/civicgate/civic-portal/internal/storage"
	"gorm.io/gorm"
)

const NewsPerPage = 5

var (
	ErrStaffOnly        = errors.New("only municipality staff may publish news")
	ErrUnknownCategory  = errors.New("unknown news category")
	ErrTitleRequired    = errors.New("title is required")
	ErrTextRequired     = errors.New("text is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrShortDescTooLong = errors.New("short description is too long")
)

type NewsService struct {
	db         *gorm.DB
	uploadRoot string
}

func NewNewsService(db *gorm.DB, uploadRoot string) *NewsService {
	return &NewsService{db: db, uploadRoot: uploadRoot}
}

// List returns one page of the city's news feed with the excluded
// categories removed, newest first. Page numbers out of range clamp to the
// first or last page instead of failing.
func (s *NewsService) List(cityID uint, excluded []models.NewsCategory, page int) (*dto.NewsListResponse, error) {
	query := s.db.Model(&models.News{}).Where("city_id = ?", cityID)
	if names := categoryNames(excluded); len(names) > 0 {
		query = query.Where("category NOT IN ?", names)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	numPages := int((total + NewsPerPage - 1) / NewsPerPage)
	if numPages < 1 {
		numPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > numPages {
		page = numPages
	}

	var news []models.News
	if err := query.Preload("Photos").
		Order("publication_date DESC").
		Limit(NewsPerPage).
		Offset((page - 1) * NewsPerPage).
		Find(&news).Error; err != nil {
		return nil, err
	}

	resp := &dto.NewsListResponse{
		News:     news,
		Page:     page,
		NumPages: numPages,
		Total:    total,
	}
	if names := categoryNames(excluded); len(names) > 0 {
		resp.ExistingParams = "&excepts=" + strings.Join(names, ",")
	}
	return resp, nil
}

// HomePreview returns the latest announcements for the home page.
func (s *NewsService) HomePreview(cityID uint) ([]models.News, error) {
	var news []models.News
	err := s.db.Where("city_id = ?", cityID).
		Preload("Photos").
		Order("publication_date DESC").
		Limit(NewsPerPage).
		Find(&news).Error
	return news, err
}

// Create publishes an announcement in the author's city with the uploaded
// photos. The news row and every photo row are written in one transaction;
// one invalid file rejects the whole submission.
func (s *NewsService) Create(authorID uint, req *dto.CreateNewsRequest, files []*multipart.FileHeader) (*models.News, error) {
	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if !author.Role.IsStaff() {
		return nil, ErrStaffOnly
	}

	category := models.NewsCategory(req.Category)
	switch {
	case req.Title == "":
		return nil, ErrTitleRequired
	case len(req.Title) > 100:
		return nil, ErrTitleTooLong
	case len(req.ShortDescription) > 210:
		return nil, ErrShortDescTooLong
	case req.Text == "":
		return nil, ErrTextRequired
	case !category.Valid():
		return nil, ErrUnknownCategory
	}

	if err := storage.ValidateImages(files); err != nil {
		return nil, err
	}
	paths, err := storage.SavePhotos(s.uploadRoot, files)
	if err != nil {
		return nil, fmt.Errorf("failed to store photos: %w", err)
	}

	news := models.News{
		CityID:           author.CityID,
		Category:         category,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Text:             req.Text,
		PublicationDate:  time.Now(),
		MunicipalityID:   author.MunicipalityID,
		AuthorID:         &author.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&news).Error; err != nil {
			return err
		}
		for _, path := range paths {
			photo := models.Photo{Image: path}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
			if err := tx.Model(&news).Association("Photos").Append(&photo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to publish news: %w", err)
	}

	return &news, nil
}

func categoryNames(categories []models.NewsCategory) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if c.Valid() {
			names = append(names, string(c))
		}
	}
	return names
}
