package model

import (
	"time"
)

// LearningProgress 记录用户对单个设计模式的学习进度
// 每个 (user_id, pattern_id) 至多一行，由唯一索引和 upsert 共同保证
// swagger:model LearningProgress
type LearningProgress struct {
	BaseModel
	UserID      uint           `gorm:"index;uniqueIndex:idx_user_pattern;not null" json:"userId"`
	PatternID   string         `gorm:"size:50;uniqueIndex:idx_user_pattern;not null" json:"patternId"`
	Status      LearningStatus `gorm:"size:20;default:'not_started'" json:"status"`
	StartedAt   *time.Time     `json:"startedAt"`
	CompletedAt *time.Time     `json:"completedAt"`
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}
