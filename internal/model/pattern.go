package model

// PatternCategory GoF 三大分类
type PatternCategory string

const (
	CategoryCreational PatternCategory = "creational"
	CategoryStructural PatternCategory = "structural"
	CategoryBehavioral PatternCategory = "behavioral"
)

func (c PatternCategory) Valid() bool {
	switch c {
	case CategoryCreational, CategoryStructural, CategoryBehavioral:
		return true
	}
	return false
}

// Categories 固定的分类顺序，用于统计输出
var Categories = []PatternCategory{CategoryCreational, CategoryStructural, CategoryBehavioral}

// Pattern 设计模式目录条目，构建期固定，运行期只读
// swagger:model Pattern
type Pattern struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    PatternCategory `json:"category"`
	Description string          `json:"description"`
	Difficulty  int             `json:"difficulty"` // 1-3
}

// PatternDetail 目录条目加讲义正文
// swagger:model PatternDetail
type PatternDetail struct {
	Pattern
	Content string `json:"content"`
}
