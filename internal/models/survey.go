package models

import "time"

// Survey is a titled multiple-choice question put to citizens.
type Survey struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	PubDate      time.Time `gorm:"autoCreateTime" json:"pub_date"`

	Choices []Choice `gorm:"foreignKey:SurveyID" json:"choices"`
}

type Choice struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"size:255;not null" json:"text"`
	SurveyID uint   `gorm:"not null;index" json:"survey_id"`
}

// SurveyAnswer records one user's pick. Nothing stops the same user from
// answering the same survey twice.
type SurveyAnswer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	ChoiceID    uint      `gorm:"not null;index" json:"choice_id"`
	Choice      Choice    `gorm:"foreignKey:ChoiceID" json:"-"`
	SurveyID    uint      `gorm:"not null;index" json:"survey_id"`
	Survey      Survey    `gorm:"foreignKey:SurveyID" json:"-"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}
