package model

import (
	"time"
)

// QuizAnswer 一次测验作答记录，只追加不修改
// swagger:model QuizAnswer
type QuizAnswer struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint         `gorm:"index;not null" json:"userId"`
	PatternID    string       `gorm:"size:50;index;not null" json:"patternId"`
	QuestionType QuestionType `gorm:"size:20;not null" json:"questionType"`
	Answer       string       `gorm:"type:text" json:"answer"`
	IsCorrect    bool         `gorm:"not null" json:"isCorrect"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
