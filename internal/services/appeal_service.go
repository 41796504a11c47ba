package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/civicgate/civic-portal/internal/dto"
	"github.com/civicgate/civic-portal/internal/models"
	"github.com/civicgate/civic-portal/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrAppealNotFound       = errors.New("appeal not found")
	ErrAlreadyAnswered      = errors.New("appeal already has an answer")
	ErrNoPosition           = errors.New("caller holds no position in their municipality")
	ErrAnswerRequired       = errors.New("answer text is required")
	ErrMunicipalityNotFound = errors.New("unknown municipality")
)

type AppealService struct {
	db         *gorm.DB
	uploadRoot string
}

func NewAppealService(db *gorm.DB, uploadRoot string) *AppealService {
	return &AppealService{db: db, uploadRoot: uploadRoot}
}

// Submit files a citizen complaint with the uploaded photos. Validation is
// all-or-nothing: one bad file and neither the appeal nor any photo row is
// written. The appeal row is created before any photo reference.
func (s *AppealService) Submit(userID uint, req *dto.CreateAppealRequest, files []*multipart.FileHeader) (*models.Appeal, error) {
	switch {
	case req.Title == "":
		return nil, ErrTitleRequired
	case len(req.Title) > 255:
		return nil, ErrTitleTooLong
	case req.Text == "":
		return nil, ErrTextRequired
	}

	if req.MunicipalityID != nil {
		var municipality models.Municipality
		if err := s.db.First(&municipality, *req.MunicipalityID).Error; err != nil {
			return nil, ErrMunicipalityNotFound
		}
	}

	if err := storage.ValidateImages(files); err != nil {
		return nil, err
	}
	paths, err := storage.SavePhotos(s.uploadRoot, files)
	if err != nil {
		return nil, fmt.Errorf("failed to store photos: %w", err)
	}

	appeal := models.Appeal{
		Title:          req.Title,
		Text:           req.Text,
		MunicipalityID: req.MunicipalityID,
		UserID:         userID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appeal).Error; err != nil {
			return err
		}
		for _, path := range paths {
			photo := models.Photo{Image: path}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
			if err := tx.Model(&appeal).Association("Photos").Append(&photo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit appeal: %w", err)
	}

	return &appeal, nil
}

// ListOwn returns the citizen's appeals with answers and photos attached.
func (s *AppealService) ListOwn(userID uint) ([]models.Appeal, error) {
	var appeals []models.Appeal
	err := s.db.Where("user_id = ?", userID).
		Preload("Photos").
		Preload("Answer").
		Order("created_at DESC").
		Find(&appeals).Error
	return appeals, err
}

// ListForMunicipality returns the appeals addressed to the caller's
// municipality. Callers without a municipality see nothing.
func (s *AppealService) ListForMunicipality(userID uint) ([]models.Appeal, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if user.MunicipalityID == nil {
		return []models.Appeal{}, nil
	}

	var appeals []models.Appeal
	err := s.db.Where("municipality_id = ?", *user.MunicipalityID).
		Preload("Photos").
		Preload("Answer").
		Order("created_at DESC").
		Find(&appeals).Error
	return appeals, err
}

// Answer records the single staff response to an appeal: flips is_answered,
// writes one AppealAnswer and one Notification row, all in one transaction.
// A second answer to an already answered appeal is rejected.
//
// The appeal id is trusted as submitted; its municipality is not checked
// against the answerer's.
func (s *AppealService) Answer(userID, appealID uint, text string) (*models.AppealAnswer, error) {
	if text == "" {
		return nil, ErrAnswerRequired
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var position models.Position
	if err := s.db.Where("municipality_id = ? AND user_id = ?", user.MunicipalityID, user.ID).
		First(&position).Error; err != nil {
		return nil, ErrNoPosition
	}

	var appeal models.Appeal
	if err := s.db.First(&appeal, appealID).Error; err != nil {
		return nil, ErrAppealNotFound
	}
	if appeal.IsAnswered {
		return nil, ErrAlreadyAnswered
	}

	answer := models.AppealAnswer{
		AppealID:   appeal.ID,
		AnswererID: &position.ID,
		Text:       text,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
		if err := tx.Model(&appeal).Update("is_answered", true).Error; err != nil {
			return err
		}
		return tx.Create(&models.Notification{AppealAnswerID: answer.ID}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to answer appeal: %w", err)
	}

	return &answer, nil
}
