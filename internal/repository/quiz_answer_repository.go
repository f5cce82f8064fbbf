package repository

import (
	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
)

type QuizAnswerRepository struct {
	DB *gorm.DB
}

func NewQuizAnswerRepository(db *gorm.DB) *QuizAnswerRepository {
	return &QuizAnswerRepository{DB: db}
}

// Create 追加一条作答记录。日志是累积的，同一题重复作答各算一条
func (r *QuizAnswerRepository) Create(answer *model.QuizAnswer) error {
	return r.DB.Create(answer).Error
}

// FindByUser 按时间倒序返回作答记录，patternID 非空时按模式过滤
func (r *QuizAnswerRepository) FindByUser(userID uint, patternID string) ([]model.QuizAnswer, error) {
	var rows []model.QuizAnswer
	query := r.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if patternID != "" {
		query = query.Where("pattern_id = ?", patternID)
	}
	err := query.Find(&rows).Error
	return rows, err
}

// CountByUserAndPattern 单个模式的作答数与正确数
func (r *QuizAnswerRepository) CountByUserAndPattern(userID uint, patternID string) (total, correct int64, err error) {
	base := r.DB.Model(&model.QuizAnswer{}).
		Where("user_id = ? AND pattern_id = ?", userID, patternID)

	if err = base.Count(&total).Error; err != nil {
		return 0, 0, err
	}

	err = r.DB.Model(&model.QuizAnswer{}).
		Where("user_id = ? AND pattern_id = ? AND is_correct = ?", userID, patternID, true).
		Count(&correct).Error
	if err != nil {
		return 0, 0, err
	}

	return total, correct, nil
}
