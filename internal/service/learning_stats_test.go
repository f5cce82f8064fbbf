package service

import (
	"testing"
	"time"

	"pattern_edu_backend/internal/catalog"
	"pattern_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPatterns() []model.Pattern {
	return []model.Pattern{
		{ID: "singleton", Name: "Singleton", Category: model.CategoryCreational},
		{ID: "builder", Name: "Builder", Category: model.CategoryCreational},
		{ID: "adapter", Name: "Adapter", Category: model.CategoryStructural},
		{ID: "observer", Name: "Observer", Category: model.CategoryBehavioral},
	}
}

func TestComputeLearningStats(t *testing.T) {
	patterns := testPatterns()
	progress := []model.LearningProgress{
		{UserID: 1, PatternID: "singleton", Status: model.StatusCompleted},
		{UserID: 1, PatternID: "adapter", Status: model.StatusInProgress},
	}

	stats := ComputeLearningStats(patterns, progress, nil)

	assert.Equal(t, 4, stats.TotalPatterns)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 1, stats.InProgressCount)
	assert.Equal(t, 2, stats.NotStartedCount)
	assert.Equal(t, 25, stats.CompletionRate)
	assert.Equal(t, 1, stats.CategoryStats.Creational.Completed)
	assert.Equal(t, 1, stats.CategoryStats.Structural.InProgress)
}

// 三个计数之和必须等于目录大小，无论进度表里有什么
func TestComputeLearningStatsSumInvariant(t *testing.T) {
	patterns := testPatterns()
	cases := []struct {
		name     string
		progress []model.LearningProgress
	}{
		{"无进度", nil},
		{"部分进度", []model.LearningProgress{
			{PatternID: "singleton", Status: model.StatusInProgress},
		}},
		{"全部完成", []model.LearningProgress{
			{PatternID: "singleton", Status: model.StatusCompleted},
			{PatternID: "builder", Status: model.StatusCompleted},
			{PatternID: "adapter", Status: model.StatusCompleted},
			{PatternID: "observer", Status: model.StatusCompleted},
		}},
		{"含目录外的孤儿行", []model.LearningProgress{
			{PatternID: "singleton", Status: model.StatusCompleted},
			{PatternID: "no-such-pattern", Status: model.StatusCompleted},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stats := ComputeLearningStats(patterns, tc.progress, nil)
			assert.Equal(t, stats.TotalPatterns,
				stats.CompletedCount+stats.InProgressCount+stats.NotStartedCount)
		})
	}
}

// 目录外的 pattern_id 进度行不计入任何桶
func TestComputeLearningStatsIgnoresOrphanRows(t *testing.T) {
	patterns := testPatterns()
	progress := []model.LearningProgress{
		{PatternID: "deleted-pattern", Status: model.StatusCompleted},
	}

	stats := ComputeLearningStats(patterns, progress, nil)

	assert.Equal(t, 0, stats.CompletedCount)
	assert.Equal(t, 4, stats.NotStartedCount)
}

func TestComputeLearningStatsEmptyCatalog(t *testing.T) {
	stats := ComputeLearningStats(nil, nil, nil)

	assert.Equal(t, 0, stats.TotalPatterns)
	assert.Equal(t, 0, stats.CompletionRate)
	assert.Equal(t, 0, stats.QuizStats.CorrectRate)
}

// 完成率四舍五入：1/3 → 33，2/3 → 67
func TestCompletionRateRounding(t *testing.T) {
	patterns := []model.Pattern{
		{ID: "a", Category: model.CategoryCreational},
		{ID: "b", Category: model.CategoryCreational},
		{ID: "c", Category: model.CategoryCreational},
	}

	one := ComputeLearningStats(patterns, []model.LearningProgress{
		{PatternID: "a", Status: model.StatusCompleted},
	}, nil)
	assert.Equal(t, 33, one.CompletionRate)

	two := ComputeLearningStats(patterns, []model.LearningProgress{
		{PatternID: "a", Status: model.StatusCompleted},
		{PatternID: "b", Status: model.StatusCompleted},
	}, nil)
	assert.Equal(t, 67, two.CompletionRate)
}

func TestComputeCategoryStats(t *testing.T) {
	progress := []model.LearningProgress{
		{PatternID: "singleton", Status: model.StatusCompleted},
		{PatternID: "factory-method", Status: model.StatusInProgress},
		{PatternID: "adapter", Status: model.StatusCompleted},
	}

	stats := ComputeCategoryStats(catalog.All(), progress)

	assert.Equal(t, model.CategoryProgress{Total: 5, Completed: 1, InProgress: 1, NotStarted: 3}, stats.Creational)
	assert.Equal(t, model.CategoryProgress{Total: 7, Completed: 1, NotStarted: 6}, stats.Structural)
	assert.Equal(t, model.CategoryProgress{Total: 10, NotStarted: 10}, stats.Behavioral)
}

func TestComputeQuizStats(t *testing.T) {
	answers := []model.QuizAnswer{
		{PatternID: "singleton", IsCorrect: true},
		{PatternID: "adapter", IsCorrect: false},
		{PatternID: "singleton", IsCorrect: true},
	}

	stats := ComputeQuizStats(answers)

	assert.Equal(t, 3, stats.TotalAnswers)
	assert.Equal(t, 2, stats.CorrectAnswers)
	assert.Equal(t, 67, stats.CorrectRate)

	// byPattern 按首次出现顺序
	require.Len(t, stats.ByPattern, 2)
	assert.Equal(t, model.PatternQuizStats{PatternID: "singleton", Total: 2, Correct: 2, CorrectRate: 100}, stats.ByPattern[0])
	assert.Equal(t, model.PatternQuizStats{PatternID: "adapter", Total: 1, Correct: 0, CorrectRate: 0}, stats.ByPattern[1])
}

func TestComputeQuizStatsEmpty(t *testing.T) {
	stats := ComputeQuizStats(nil)

	assert.Equal(t, 0, stats.TotalAnswers)
	assert.Equal(t, 0, stats.CorrectRate)
	assert.NotNil(t, stats.ByPattern)
	assert.Empty(t, stats.ByPattern)
}

func TestComputeActivityData(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	history := []model.LearningHistory{
		{CreatedAt: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2024, 1, 15, 22, 30, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2024, 1, 16, 0, 0, 1, 0, time.UTC)},
	}

	result := ComputeActivityData(history, 365, now)

	counts := make(map[string]int)
	for _, d := range result {
		counts[d.Date] = d.Count
	}
	assert.Equal(t, map[string]int{"2024-01-15": 2, "2024-01-16": 1}, counts)
}

// 按 UTC 日历日分桶：本地时区不影响结果
func TestComputeActivityDataUsesUTC(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+8", 8*3600)
	history := []model.LearningHistory{
		// 当地 1 月 16 日 02:00，UTC 还是 1 月 15 日
		{CreatedAt: time.Date(2024, 1, 16, 2, 0, 0, 0, loc)},
	}

	result := ComputeActivityData(history, 365, now)

	require.Len(t, result, 1)
	assert.Equal(t, "2024-01-15", result[0].Date)
}

func TestComputeActivityDataWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	history := []model.LearningHistory{
		{CreatedAt: now.AddDate(0, 0, -400)}, // 窗口外
		{CreatedAt: now.AddDate(0, 0, -10)},
	}

	result := ComputeActivityData(history, 365, now)

	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].Count)
}

func TestComputeActivityDataEmpty(t *testing.T) {
	result := ComputeActivityData(nil, 365, time.Now())
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

// 纯函数：同样输入算两遍，结果一致且不改动入参
func TestComputeLearningStatsIdempotent(t *testing.T) {
	patterns := testPatterns()
	progress := []model.LearningProgress{
		{PatternID: "singleton", Status: model.StatusCompleted},
	}
	quiz := []model.QuizAnswer{
		{PatternID: "singleton", IsCorrect: true},
	}

	first := ComputeLearningStats(patterns, progress, quiz)
	second := ComputeLearningStats(patterns, progress, quiz)

	assert.Equal(t, first, second)
	assert.Equal(t, model.StatusCompleted, progress[0].Status)
}

func TestRoundRate(t *testing.T) {
	assert.Equal(t, 0, roundRate(0, 0))
	assert.Equal(t, 0, roundRate(5, 0))
	assert.Equal(t, 50, roundRate(1, 2))
	assert.Equal(t, 33, roundRate(1, 3))
	assert.Equal(t, 67, roundRate(2, 3))
	assert.Equal(t, 100, roundRate(3, 3))
}
