package dto

import "github.com/civicgate/civic-portal/internal/models"

type CreateNewsRequest struct {
	Title            string `json:"title" form:"title"`
	ShortDescription string `json:"short_description" form:"short_description"`
	Text             string `json:"text" form:"text"`
	Category         string `json:"category" form:"category"`
}

type NewsListResponse struct {
	News       []models.News `json:"news"`
	Page       int           `json:"page"`
	NumPages   int           `json:"num_pages"`
	Total      int64         `json:"total"`
	// ExistingParams round-trips the exclusion set through pager links,
	// e.g. "&excepts=water,gas".
	ExistingParams string `json:"existing_params"`
}

type HomeResponse struct {
	News []models.News `json:"news"`
}
