package repository

import (
	"time"

	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	DB *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

// Create 追加一条学习历史
func (r *HistoryRepository) Create(entry *model.LearningHistory) error {
	return r.DB.Create(entry).Error
}

// FindRecentByUser 按时间倒序返回最近的学习历史
func (r *HistoryRepository) FindRecentByUser(userID uint, limit int) ([]model.LearningHistory, error) {
	var rows []model.LearningHistory
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// FindSince 返回某时刻之后的全部历史，用于活动日历窗口
func (r *HistoryRepository) FindSince(userID uint, since time.Time) ([]model.LearningHistory, error) {
	var rows []model.LearningHistory
	err := r.DB.Where("user_id = ? AND created_at >= ?", userID, since).
		Find(&rows).Error
	return rows, err
}
