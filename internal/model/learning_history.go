package model

import (
	"time"
)

// LearningHistory 学习事件审计日志，只追加不修改
// swagger:model LearningHistory
type LearningHistory struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"userId"`
	PatternID string         `gorm:"size:50;index;not null" json:"patternId"`
	Action    LearningAction `gorm:"size:20;not null" json:"action"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
}

func (LearningHistory) TableName() string {
	return "learning_history"
}
