package dto

import "github.com/civicgate/civic-portal/internal/models"

type CreateAppealRequest struct {
	Title          string `json:"title" form:"title"`
	Text           string `json:"text" form:"text"`
	MunicipalityID *uint  `json:"municipality_id" form:"municipality_id"`
}

type AnswerAppealRequest struct {
	AppealID uint   `json:"appeal_id" form:"appeal_id"`
	Answer   string `json:"answer" form:"answer"`
}

type AppealListResponse struct {
	Appeals []models.Appeal `json:"appeals"`
}
