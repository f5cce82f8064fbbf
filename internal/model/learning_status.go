package model

// LearningStatus 用户对某个模式的学习状态
type LearningStatus string

const (
	StatusNotStarted LearningStatus = "not_started"
	StatusInProgress LearningStatus = "in_progress"
	StatusCompleted  LearningStatus = "completed"
)

func (s LearningStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// AllowedNextStatuses 状态机允许的下一步状态。
// not_started → in_progress（开始学习）
// in_progress → completed（完成）/ not_started（重置）
// completed   → in_progress（重新学习）
func AllowedNextStatuses(s LearningStatus) []LearningStatus {
	switch s {
	case StatusNotStarted:
		return []LearningStatus{StatusInProgress}
	case StatusInProgress:
		return []LearningStatus{StatusCompleted, StatusNotStarted}
	case StatusCompleted:
		return []LearningStatus{StatusInProgress}
	}
	return nil
}

// LearningAction 学习历史中的动作类型
type LearningAction string

const (
	ActionView     LearningAction = "view"
	ActionStart    LearningAction = "start"
	ActionComplete LearningAction = "complete"
)

// ActionForStatus 状态变更对应记录的历史动作
func ActionForStatus(s LearningStatus) LearningAction {
	switch s {
	case StatusInProgress:
		return ActionStart
	case StatusCompleted:
		return ActionComplete
	}
	return ActionView
}

// QuestionType 测验题目类型
type QuestionType string

const (
	QuestionImplementation QuestionType = "implementation"
	QuestionAdvanced       QuestionType = "advanced"
)

func (t QuestionType) Valid() bool {
	return t == QuestionImplementation || t == QuestionAdvanced
}
