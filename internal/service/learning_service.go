package service

import (
	"fmt"
	"sort"
	"time"

	"pattern_edu_backend/internal/catalog"
	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/repository"
	"pattern_edu_backend/internal/util"
	"pattern_edu_backend/pkg/logger"
	"pattern_edu_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// LearningService 学习进度、测验作答、历史与统计的业务逻辑。
// 统计始终在读取时重新计算，不缓存
type LearningService struct {
	ProgressRepo *repository.ProgressRepository
	QuizRepo     *repository.QuizAnswerRepository
	HistoryRepo  *repository.HistoryRepository
}

func NewLearningService(
	progressRepo *repository.ProgressRepository,
	quizRepo *repository.QuizAnswerRepository,
	historyRepo *repository.HistoryRepository,
) *LearningService {
	return &LearningService{
		ProgressRepo: progressRepo,
		QuizRepo:     quizRepo,
		HistoryRepo:  historyRepo,
	}
}

// ProgressWithNext 进度行加状态机允许的下一步，供前端渲染操作按钮
type ProgressWithNext struct {
	Progress    *model.LearningProgress `json:"progress"`
	NextAllowed []model.LearningStatus  `json:"nextAllowed"`
}

func (s *LearningService) GetAllProgress(userID uint) ([]model.LearningProgress, error) {
	rows, err := s.ProgressRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetch learning progress: %w", err)
	}
	if rows == nil {
		rows = []model.LearningProgress{}
	}
	return rows, nil
}

func (s *LearningService) GetProgress(userID uint, patternID string) (*ProgressWithNext, error) {
	if !catalog.Exists(patternID) {
		return nil, util.ErrPatternNotFound
	}

	row, err := s.ProgressRepo.FindByUserAndPattern(userID, patternID)
	if err != nil {
		return nil, fmt.Errorf("fetch learning progress: %w", err)
	}

	status := model.StatusNotStarted
	if row != nil {
		status = row.Status
	}

	return &ProgressWithNext{
		Progress:    row,
		NextAllowed: model.AllowedNextStatuses(status),
	}, nil
}

// UpdateProgress 写入进度并追加学习历史。
// 状态机约束由前端把关，服务端照原样记录客户端提交的状态，聚合侧不做校验
func (s *LearningService) UpdateProgress(userID uint, patternID string, status model.LearningStatus) (*model.LearningProgress, error) {
	if !catalog.Exists(patternID) {
		return nil, util.ErrPatternNotFound
	}
	if !status.Valid() {
		return nil, util.ErrInvalidStatus
	}

	row, err := s.ProgressRepo.Upsert(userID, patternID, status)
	if err != nil {
		return nil, fmt.Errorf("upsert learning progress: %w", err)
	}

	entry := &model.LearningHistory{
		UserID:    userID,
		PatternID: patternID,
		Action:    model.ActionForStatus(status),
	}
	if err := s.HistoryRepo.Create(entry); err != nil {
		// 历史是审计日志，写失败不回滚进度，记日志后继续
		logger.Log.Error("record learning history failed",
			zap.Uint("userID", userID),
			zap.String("patternID", patternID),
			zap.Error(err))
	}

	return row, nil
}

func (s *LearningService) SubmitQuizAnswer(userID uint, patternID string, questionType model.QuestionType, answer string, isCorrect bool) (*model.QuizAnswer, error) {
	if !catalog.Exists(patternID) {
		return nil, util.ErrPatternNotFound
	}
	if !questionType.Valid() {
		return nil, util.ErrInvalidQuestion
	}

	row := &model.QuizAnswer{
		UserID:       userID,
		PatternID:    patternID,
		QuestionType: questionType,
		Answer:       answer,
		IsCorrect:    isCorrect,
	}
	if err := s.QuizRepo.Create(row); err != nil {
		return nil, fmt.Errorf("record quiz answer: %w", err)
	}
	return row, nil
}

func (s *LearningService) GetQuizAnswers(userID uint, patternID string) ([]model.QuizAnswer, error) {
	if patternID != "" && !catalog.Exists(patternID) {
		return nil, util.ErrPatternNotFound
	}

	rows, err := s.QuizRepo.FindByUser(userID, patternID)
	if err != nil {
		return nil, fmt.Errorf("fetch quiz answers: %w", err)
	}
	if rows == nil {
		rows = []model.QuizAnswer{}
	}
	return rows, nil
}

// GetQuizPatternStats 单个模式的作答数与正确率，计数下推到数据库，
// 不把全部作答行拉进内存
func (s *LearningService) GetQuizPatternStats(userID uint, patternID string) (*model.PatternQuizStats, error) {
	if !catalog.Exists(patternID) {
		return nil, util.ErrPatternNotFound
	}

	total, correct, err := s.QuizRepo.CountByUserAndPattern(userID, patternID)
	if err != nil {
		return nil, fmt.Errorf("count quiz answers: %w", err)
	}

	return &model.PatternQuizStats{
		PatternID:   patternID,
		Total:       int(total),
		Correct:     int(correct),
		CorrectRate: roundRate(int(correct), int(total)),
	}, nil
}

func (s *LearningService) GetRecentHistory(userID uint, limit int) ([]model.LearningHistory, error) {
	if limit <= 0 {
		limit = util.DefaultHistoryLimit
	}

	rows, err := s.HistoryRepo.FindRecentByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch learning history: %w", err)
	}
	if rows == nil {
		rows = []model.LearningHistory{}
	}
	return rows, nil
}

// GetLearningStats 取三类记录后做纯聚合。任一次读取失败则整体失败，
// 不返回可能被误读为"还没开始学"的零值统计
func (s *LearningService) GetLearningStats(userID uint) (*model.LearningStats, error) {
	progressRows, err := s.ProgressRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("fetch learning progress: %w", err)
	}

	quizRows, err := s.QuizRepo.FindByUser(userID, "")
	if err != nil {
		return nil, fmt.Errorf("fetch quiz answers: %w", err)
	}

	history, err := s.HistoryRepo.FindRecentByUser(userID, util.StatsRecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch learning history: %w", err)
	}
	if history == nil {
		history = []model.LearningHistory{}
	}

	start := time.Now()
	stats := ComputeLearningStats(catalog.All(), progressRows, quizRows)
	monitoring.StatsComputeDuration.Observe(time.Since(start).Seconds())

	stats.RecentActivity = history
	return &stats, nil
}

// GetActivityData 活动日历数据，按日期升序返回
func (s *LearningService) GetActivityData(userID uint, days int) ([]model.ActivityData, error) {
	if days <= 0 {
		days = util.DefaultActivityWindow
	}

	now := time.Now()
	since := now.UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)

	rows, err := s.HistoryRepo.FindSince(userID, since)
	if err != nil {
		return nil, fmt.Errorf("fetch activity history: %w", err)
	}

	data := ComputeActivityData(rows, days, now)
	sort.Slice(data, func(i, j int) bool { return data[i].Date < data[j].Date })
	return data, nil
}
