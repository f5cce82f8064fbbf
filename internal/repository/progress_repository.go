package repository

import (
	"errors"
	"time"

	"pattern_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindAllByUser 返回该用户的全部进度行，无数据时返回空切片
func (r *ProgressRepository) FindAllByUser(userID uint) ([]model.LearningProgress, error) {
	var rows []model.LearningProgress
	err := r.DB.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// FindByUserAndPattern 查单个模式的进度行，不存在时返回 (nil, nil)
func (r *ProgressRepository) FindByUserAndPattern(userID uint, patternID string) (*model.LearningProgress, error) {
	var row model.LearningProgress
	err := r.DB.Where("user_id = ? AND pattern_id = ?", userID, patternID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert 按 (user_id, pattern_id) 唯一键插入或更新状态。
// in_progress 时写 started_at，completed 时写 completed_at，与前端进度按钮的语义一致
func (r *ProgressRepository) Upsert(userID uint, patternID string, status model.LearningStatus) (*model.LearningProgress, error) {
	now := time.Now()
	row := model.LearningProgress{
		UserID:    userID,
		PatternID: patternID,
		Status:    status,
	}

	updates := []string{"status", "updated_at"}
	switch status {
	case model.StatusInProgress:
		row.StartedAt = &now
		updates = append(updates, "started_at")
	case model.StatusCompleted:
		row.CompletedAt = &now
		updates = append(updates, "completed_at")
	}

	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "pattern_id"}},
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	return r.mustFind(userID, patternID)
}

// mustFind upsert 后回读，拿到数据库生成的 id 和时间戳
func (r *ProgressRepository) mustFind(userID uint, patternID string) (*model.LearningProgress, error) {
	var row model.LearningProgress
	err := r.DB.Where("user_id = ? AND pattern_id = ?", userID, patternID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
