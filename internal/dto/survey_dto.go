package dto

import "github.com/civicgate/civic-portal/internal/models"

type SurveyListResponse struct {
	Surveys []models.Survey `json:"surveys"`
}

type SubmitSurveyAnswerRequest struct {
	SurveyID uint `json:"survey_id" form:"survey_id"`
	ChoiceID uint `json:"choice_id" form:"choice_id"`
}
