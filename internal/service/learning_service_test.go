package service

import (
	"os"
	"path/filepath"
	"testing"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/repository"
	"pattern_edu_backend/internal/util"
	"pattern_edu_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newLearningService(t *testing.T) *LearningService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.LearningProgress{},
		&model.QuizAnswer{},
		&model.LearningHistory{},
	))

	return NewLearningService(
		repository.NewProgressRepository(db),
		repository.NewQuizAnswerRepository(db),
		repository.NewHistoryRepository(db),
	)
}

func TestUpdateProgress(t *testing.T) {
	s := newLearningService(t)

	row, err := s.UpdateProgress(1, "singleton", model.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, row.Status)
	assert.NotNil(t, row.StartedAt)

	// 进度更新附带历史记录，动作由目标状态决定
	history, err := s.GetRecentHistory(1, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, model.ActionStart, history[0].Action)

	_, err = s.UpdateProgress(1, "singleton", model.StatusCompleted)
	require.NoError(t, err)

	history, err = s.GetRecentHistory(1, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func TestUpdateProgressValidation(t *testing.T) {
	s := newLearningService(t)

	_, err := s.UpdateProgress(1, "no-such-pattern", model.StatusInProgress)
	assert.ErrorIs(t, err, util.ErrPatternNotFound)

	_, err = s.UpdateProgress(1, "singleton", model.LearningStatus("done"))
	assert.ErrorIs(t, err, util.ErrInvalidStatus)
}

func TestGetProgress(t *testing.T) {
	s := newLearningService(t)

	_, err := s.GetProgress(1, "no-such-pattern")
	assert.ErrorIs(t, err, util.ErrPatternNotFound)

	// 还没有进度行：progress 为空，下一步是开始学习
	result, err := s.GetProgress(1, "observer")
	require.NoError(t, err)
	assert.Nil(t, result.Progress)
	assert.Equal(t, []model.LearningStatus{model.StatusInProgress}, result.NextAllowed)

	_, err = s.UpdateProgress(1, "observer", model.StatusInProgress)
	require.NoError(t, err)

	result, err = s.GetProgress(1, "observer")
	require.NoError(t, err)
	require.NotNil(t, result.Progress)
	assert.Equal(t, []model.LearningStatus{model.StatusCompleted, model.StatusNotStarted}, result.NextAllowed)
}

func TestGetAllProgressEmpty(t *testing.T) {
	s := newLearningService(t)

	rows, err := s.GetAllProgress(1)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSubmitQuizAnswer(t *testing.T) {
	s := newLearningService(t)

	row, err := s.SubmitQuizAnswer(1, "singleton", model.QuestionImplementation, "my answer", true)
	require.NoError(t, err)
	assert.NotZero(t, row.ID)

	_, err = s.SubmitQuizAnswer(1, "no-such-pattern", model.QuestionImplementation, "", true)
	assert.ErrorIs(t, err, util.ErrPatternNotFound)

	_, err = s.SubmitQuizAnswer(1, "singleton", model.QuestionType("basic"), "", true)
	assert.ErrorIs(t, err, util.ErrInvalidQuestion)
}

func TestGetQuizAnswers(t *testing.T) {
	s := newLearningService(t)

	_, err := s.SubmitQuizAnswer(1, "singleton", model.QuestionImplementation, "a", true)
	require.NoError(t, err)
	_, err = s.SubmitQuizAnswer(1, "adapter", model.QuestionAdvanced, "b", false)
	require.NoError(t, err)

	all, err := s.GetQuizAnswers(1, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := s.GetQuizAnswers(1, "adapter")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.False(t, filtered[0].IsCorrect)

	_, err = s.GetQuizAnswers(1, "no-such-pattern")
	assert.ErrorIs(t, err, util.ErrPatternNotFound)
}

func TestGetQuizPatternStats(t *testing.T) {
	s := newLearningService(t)

	_, err := s.GetQuizPatternStats(1, "no-such-pattern")
	assert.ErrorIs(t, err, util.ErrPatternNotFound)

	// 还没作答：全零但模式 slug 照常返回
	empty, err := s.GetQuizPatternStats(1, "singleton")
	require.NoError(t, err)
	assert.Equal(t, &model.PatternQuizStats{PatternID: "singleton"}, empty)

	_, err = s.SubmitQuizAnswer(1, "singleton", model.QuestionImplementation, "a", true)
	require.NoError(t, err)
	_, err = s.SubmitQuizAnswer(1, "singleton", model.QuestionAdvanced, "b", true)
	require.NoError(t, err)
	_, err = s.SubmitQuizAnswer(1, "singleton", model.QuestionImplementation, "c", false)
	require.NoError(t, err)
	// 其他模式、其他用户的作答不计入
	_, err = s.SubmitQuizAnswer(1, "adapter", model.QuestionImplementation, "d", true)
	require.NoError(t, err)
	_, err = s.SubmitQuizAnswer(2, "singleton", model.QuestionImplementation, "e", false)
	require.NoError(t, err)

	stats, err := s.GetQuizPatternStats(1, "singleton")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Correct)
	assert.Equal(t, 67, stats.CorrectRate)
}

func TestGetLearningStats(t *testing.T) {
	s := newLearningService(t)

	_, err := s.UpdateProgress(1, "singleton", model.StatusCompleted)
	require.NoError(t, err)
	_, err = s.UpdateProgress(1, "adapter", model.StatusInProgress)
	require.NoError(t, err)
	_, err = s.SubmitQuizAnswer(1, "singleton", model.QuestionImplementation, "a", true)
	require.NoError(t, err)
	_, err = s.SubmitQuizAnswer(1, "singleton", model.QuestionAdvanced, "b", false)
	require.NoError(t, err)

	stats, err := s.GetLearningStats(1)
	require.NoError(t, err)

	assert.Equal(t, 22, stats.TotalPatterns)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 1, stats.InProgressCount)
	assert.Equal(t, 20, stats.NotStartedCount)
	assert.Equal(t, 5, stats.CompletionRate) // 1/22 → 5

	assert.Equal(t, 1, stats.CategoryStats.Creational.Completed)
	assert.Equal(t, 1, stats.CategoryStats.Structural.InProgress)
	assert.Equal(t, 10, stats.CategoryStats.Behavioral.NotStarted)

	assert.Equal(t, 2, stats.QuizStats.TotalAnswers)
	assert.Equal(t, 1, stats.QuizStats.CorrectAnswers)
	assert.Equal(t, 50, stats.QuizStats.CorrectRate)

	// 进度更新产生的历史出现在最近活动里
	assert.Len(t, stats.RecentActivity, 2)

	// 另一个用户看到的是干净的统计
	other, err := s.GetLearningStats(2)
	require.NoError(t, err)
	assert.Equal(t, 0, other.CompletedCount)
	assert.Equal(t, 22, other.NotStartedCount)
}

func TestGetActivityData(t *testing.T) {
	s := newLearningService(t)

	_, err := s.UpdateProgress(1, "singleton", model.StatusInProgress)
	require.NoError(t, err)
	_, err = s.UpdateProgress(1, "adapter", model.StatusInProgress)
	require.NoError(t, err)

	data, err := s.GetActivityData(1, 0)
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, 2, data[0].Count)

	// 日期升序
	for i := 1; i < len(data); i++ {
		assert.Less(t, data[i-1].Date, data[i].Date)
	}
}
