package services

import (
	"errors"
	"fmt"

	"github.com/civicgate/civic-portal/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSurveyNotFound = errors.New("survey not found")
	ErrChoiceNotFound = errors.New("choice does not belong to this survey")
)

type SurveyService struct {
	db *gorm.DB
}

func NewSurveyService(db *gorm.DB) *SurveyService {
	return &SurveyService{db: db}
}

func (s *SurveyService) List() ([]models.Survey, error) {
	var surveys []models.Survey
	err := s.db.Preload("Choices").Order("pub_date DESC").Find(&surveys).Error
	return surveys, err
}

// SubmitAnswer records one user's pick. Nothing prevents the same user from
// answering the same survey again.
func (s *SurveyService) SubmitAnswer(userID, surveyID, choiceID uint) (*models.SurveyAnswer, error) {
	var survey models.Survey
	if err := s.db.First(&survey, surveyID).Error; err != nil {
		return nil, ErrSurveyNotFound
	}

	var choice models.Choice
	if err := s.db.Where("id = ? AND survey_id = ?", choiceID, surveyID).First(&choice).Error; err != nil {
		return nil, ErrChoiceNotFound
	}

	answer := models.SurveyAnswer{
		UserID:   userID,
		ChoiceID: choice.ID,
		SurveyID: survey.ID,
	}
	if err := s.db.Create(&answer).Error; err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}
	return &answer, nil
}
