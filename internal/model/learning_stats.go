package model

// 统计结构均为派生数据：每次读取时由三张表的行重新计算，不落库

// swagger:model LearningStats
type LearningStats struct {
	TotalPatterns   int               `json:"totalPatterns"`
	CompletedCount  int               `json:"completedCount"`
	InProgressCount int               `json:"inProgressCount"`
	NotStartedCount int               `json:"notStartedCount"`
	CompletionRate  int               `json:"completionRate"` // 0-100
	CategoryStats   CategoryStats     `json:"categoryStats"`
	QuizStats       QuizStats         `json:"quizStats"`
	RecentActivity  []LearningHistory `json:"recentActivity"`
}

// swagger:model CategoryStats
type CategoryStats struct {
	Creational CategoryProgress `json:"creational"`
	Structural CategoryProgress `json:"structural"`
	Behavioral CategoryProgress `json:"behavioral"`
}

// Bucket 按分类取出对应的桶
func (s *CategoryStats) Bucket(c PatternCategory) *CategoryProgress {
	switch c {
	case CategoryCreational:
		return &s.Creational
	case CategoryStructural:
		return &s.Structural
	case CategoryBehavioral:
		return &s.Behavioral
	}
	return nil
}

// swagger:model CategoryProgress
type CategoryProgress struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	NotStarted int `json:"notStarted"`
}

// swagger:model QuizStats
type QuizStats struct {
	TotalAnswers   int                `json:"totalAnswers"`
	CorrectAnswers int                `json:"correctAnswers"`
	CorrectRate    int                `json:"correctRate"` // 0-100
	ByPattern      []PatternQuizStats `json:"byPattern"`
}

// swagger:model PatternQuizStats
type PatternQuizStats struct {
	PatternID   string `json:"patternId"`
	Total       int    `json:"total"`
	Correct     int    `json:"correct"`
	CorrectRate int    `json:"correctRate"`
}

// ActivityData 某一天（UTC 日历日）的学习事件数
// swagger:model ActivityData
type ActivityData struct {
	Date  string `json:"date"` // 2006-01-02
	Count int    `json:"count"`
}
