package service

import (
	"math"
	"time"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"
)

// 本文件是统计聚合的纯函数部分：无 I/O、不修改入参、对任意输入总是有结果。
// 前置条件：progressRows 中每个 pattern_id 至多一行（由 learning_progress 表的
// 唯一索引和 upsert 保证）；若被违反，后写入 map 的行生效。
// pattern_id 不在目录里的进度行不计入任何桶。

// ComputeLearningStats 汇总整体学习进度和测验统计。
// 三个计数按目录逐个模式分类得出，保证
// completedCount + inProgressCount + notStartedCount == totalPatterns 恒成立
func ComputeLearningStats(patterns []model.Pattern, progressRows []model.LearningProgress, quizRows []model.QuizAnswer) model.LearningStats {
	byPattern := progressByPattern(progressRows)

	stats := model.LearningStats{
		TotalPatterns: len(patterns),
		QuizStats:     ComputeQuizStats(quizRows),
	}

	for _, p := range patterns {
		switch statusOf(byPattern, p.ID) {
		case model.StatusCompleted:
			stats.CompletedCount++
		case model.StatusInProgress:
			stats.InProgressCount++
		default:
			stats.NotStartedCount++
		}
	}

	stats.CompletionRate = roundRate(stats.CompletedCount, stats.TotalPatterns)
	stats.CategoryStats = ComputeCategoryStats(patterns, progressRows)

	return stats
}

// ComputeCategoryStats 按分类做同样的分桶。没有模式的分类保持全零
func ComputeCategoryStats(patterns []model.Pattern, progressRows []model.LearningProgress) model.CategoryStats {
	byPattern := progressByPattern(progressRows)

	var stats model.CategoryStats
	for _, p := range patterns {
		bucket := stats.Bucket(p.Category)
		if bucket == nil {
			continue
		}

		bucket.Total++
		switch statusOf(byPattern, p.ID) {
		case model.StatusCompleted:
			bucket.Completed++
		case model.StatusInProgress:
			bucket.InProgress++
		default:
			bucket.NotStarted++
		}
	}

	return stats
}

// ComputeQuizStats 汇总作答正确率。同一模式重复作答全部计入，不去重；
// byPattern 的顺序是各模式在作答记录里首次出现的顺序
func ComputeQuizStats(quizRows []model.QuizAnswer) model.QuizStats {
	stats := model.QuizStats{
		TotalAnswers: len(quizRows),
		ByPattern:    []model.PatternQuizStats{},
	}

	index := make(map[string]int, 8)
	for _, a := range quizRows {
		if a.IsCorrect {
			stats.CorrectAnswers++
		}

		i, ok := index[a.PatternID]
		if !ok {
			i = len(stats.ByPattern)
			index[a.PatternID] = i
			stats.ByPattern = append(stats.ByPattern, model.PatternQuizStats{PatternID: a.PatternID})
		}
		stats.ByPattern[i].Total++
		if a.IsCorrect {
			stats.ByPattern[i].Correct++
		}
	}

	stats.CorrectRate = roundRate(stats.CorrectAnswers, stats.TotalAnswers)
	for i := range stats.ByPattern {
		stats.ByPattern[i].CorrectRate = roundRate(stats.ByPattern[i].Correct, stats.ByPattern[i].Total)
	}

	return stats
}

// ComputeActivityData 把窗口内的历史按 UTC 日历日分桶。
// 窗口起点是 now 往前 windowDays 天的 UTC 零点；输出是稀疏的，只含有事件的日期，
// 顺序不保证，由调用方排序
func ComputeActivityData(historyRows []model.LearningHistory, windowDays int, now time.Time) []model.ActivityData {
	start := now.UTC().AddDate(0, 0, -windowDays).Truncate(24 * time.Hour)

	counts := make(map[string]int)
	for _, h := range historyRows {
		t := h.CreatedAt.UTC()
		if t.Before(start) {
			continue
		}
		counts[t.Format(util.DateFormat)]++
	}

	result := make([]model.ActivityData, 0, len(counts))
	for date, count := range counts {
		result = append(result, model.ActivityData{Date: date, Count: count})
	}
	return result
}

func progressByPattern(rows []model.LearningProgress) map[string]model.LearningStatus {
	m := make(map[string]model.LearningStatus, len(rows))
	for _, row := range rows {
		m[row.PatternID] = row.Status
	}
	return m
}

func statusOf(byPattern map[string]model.LearningStatus, patternID string) model.LearningStatus {
	if s, ok := byPattern[patternID]; ok {
		return s
	}
	return model.StatusNotStarted
}

// roundRate 四舍五入的百分比，total 为 0 时返回 0
func roundRate(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
