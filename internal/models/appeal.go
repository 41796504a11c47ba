package models

import "time"

// Appeal is a citizen-submitted complaint awaiting one municipal answer.
type Appeal struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Title          string        `gorm:"size:255;not null" json:"title"`
	Text           string        `gorm:"type:text;not null" json:"text"`
	IsAnswered     bool          `gorm:"not null;default:false" json:"is_answered"`
	CreatedAt      time.Time     `json:"created_at"`
	MunicipalityID *uint         `gorm:"index" json:"municipality_id,omitempty"`
	Municipality   *Municipality `gorm:"foreignKey:MunicipalityID" json:"-"`
	UserID         uint          `gorm:"not null;index" json:"user_id"`
	User           User          `gorm:"foreignKey:UserID" json:"-"`
	Photos         []Photo       `gorm:"many2many:appeal_photos" json:"photos"`
	Answer         *AppealAnswer `gorm:"foreignKey:AppealID" json:"answer,omitempty"`
}

// AppealAnswer is the single staff response to an appeal. IsAnswered on the
// appeal is true iff this row exists.
type AppealAnswer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AppealID   uint      `gorm:"not null;uniqueIndex" json:"appeal_id"`
	AnswererID *uint     `gorm:"index" json:"answerer_id,omitempty"`
	Answerer   *Position `gorm:"foreignKey:AnswererID" json:"-"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification flags an unread appeal answer for its author.
type Notification struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	AppealAnswerID uint         `gorm:"not null;index" json:"appeal_answer_id"`
	AppealAnswer   AppealAnswer `gorm:"foreignKey:AppealAnswerID" json:"-"`
	IsRead         bool         `gorm:"not null;default:false" json:"is_read"`
	CreatedAt      time.Time    `json:"created_at"`
}
