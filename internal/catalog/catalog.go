package catalog

import (
	"strings"

	"pattern_edu_backend/internal/model"
)

// patterns 设计模式目录（22 个），构建期固定
var patterns = []model.Pattern{
	// 创建型
	{ID: "singleton", Name: "Singleton", Category: model.CategoryCreational, Description: "保证一个类只有一个实例，并提供全局访问点。", Difficulty: 1},
	{ID: "factory-method", Name: "Factory Method", Category: model.CategoryCreational, Description: "将对象的创建延迟到子类决定。", Difficulty: 2},
	{ID: "abstract-factory", Name: "Abstract Factory", Category: model.CategoryCreational, Description: "创建一族相关对象而无需指定具体类。", Difficulty: 3},
	{ID: "builder", Name: "Builder", Category: model.CategoryCreational, Description: "分步骤构建复杂对象。", Difficulty: 2},
	{ID: "prototype", Name: "Prototype", Category: model.CategoryCreational, Description: "通过克隆已有对象来创建新对象。", Difficulty: 2},

	// 结构型
	{ID: "adapter", Name: "Adapter", Category: model.CategoryStructural, Description: "把一个接口转换成另一个接口。", Difficulty: 2},
	{ID: "bridge", Name: "Bridge", Category: model.CategoryStructural, Description: "将抽象与实现分离，使两者可独立变化。", Difficulty: 3},
	{ID: "composite", Name: "Composite", Category: model.CategoryStructural, Description: "将对象组合成树形结构统一处理。", Difficulty: 2},
	{ID: "decorator", Name: "Decorator", Category: model.CategoryStructural, Description: "动态地给对象附加职责。", Difficulty: 2},
	{ID: "facade", Name: "Facade", Category: model.CategoryStructural, Description: "为子系统提供一个简化的统一接口。", Difficulty: 1},
	{ID: "flyweight", Name: "Flyweight", Category: model.CategoryStructural, Description: "高效共享大量细粒度对象的公共部分。", Difficulty: 3},
	{ID: "proxy", Name: "Proxy", Category: model.CategoryStructural, Description: "控制对另一个对象的访问。", Difficulty: 2},

	// 行为型
	{ID: "chain-of-responsibility", Name: "Chain of Responsibility", Category: model.CategoryBehavioral, Description: "沿处理者链传递请求。", Difficulty: 3},
	{ID: "command", Name: "Command", Category: model.CategoryBehavioral, Description: "把请求封装成对象。", Difficulty: 2},
	{ID: "iterator", Name: "Iterator", Category: model.CategoryBehavioral, Description: "顺序访问聚合中的元素。", Difficulty: 1},
	{ID: "mediator", Name: "Mediator", Category: model.CategoryBehavioral, Description: "用中介者减少对象间的直接依赖。", Difficulty: 3},
	{ID: "memento", Name: "Memento", Category: model.CategoryBehavioral, Description: "在不破坏封装的前提下保存对象状态。", Difficulty: 3},
	{ID: "observer", Name: "Observer", Category: model.CategoryBehavioral, Description: "状态变化时通知所有依赖对象。", Difficulty: 1},
	{ID: "state", Name: "State", Category: model.CategoryBehavioral, Description: "根据内部状态改变对象行为。", Difficulty: 2},
	{ID: "strategy", Name: "Strategy", Category: model.CategoryBehavioral, Description: "封装可互换的算法族。", Difficulty: 1},
	{ID: "template-method", Name: "Template Method", Category: model.CategoryBehavioral, Description: "定义算法骨架，细节留给子类。", Difficulty: 2},
	{ID: "visitor", Name: "Visitor", Category: model.CategoryBehavioral, Description: "把操作从对象结构中分离出来。", Difficulty: 3},
}

var byID = func() map[string]model.Pattern {
	m := make(map[string]model.Pattern, len(patterns))
	for _, p := range patterns {
		m[p.ID] = p
	}
	return m
}()

// All 返回完整目录（调用方不得修改返回切片）
func All() []model.Pattern {
	return patterns
}

// ByID 按 slug 查找模式，找不到返回 false
func ByID(id string) (model.Pattern, bool) {
	p, ok := byID[id]
	return p, ok
}

// Exists 目录中是否存在该 slug
func Exists(id string) bool {
	_, ok := byID[id]
	return ok
}

// Search 按名称或描述做大小写不敏感的子串匹配，空查询返回全部
func Search(query string) []model.Pattern {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return patterns
	}

	var result []model.Pattern
	for _, p := range patterns {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			result = append(result, p)
		}
	}
	return result
}

// FilterByCategory 按分类筛选
func FilterByCategory(c model.PatternCategory) []model.Pattern {
	var result []model.Pattern
	for _, p := range patterns {
		if p.Category == c {
			result = append(result, p)
		}
	}
	return result
}

// CountByCategory 各分类的模式数量
func CountByCategory() map[model.PatternCategory]int {
	counts := make(map[model.PatternCategory]int, len(model.Categories))
	for _, p := range patterns {
		counts[p.Category]++
	}
	return counts
}
