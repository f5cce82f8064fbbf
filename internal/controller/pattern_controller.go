package controller

import (
	"errors"

	"pattern_edu_backend/internal/catalog"
	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PatternController struct {
	ContentService  *service.ContentService
	LearningService *service.LearningService
}

func NewPatternController(contentService *service.ContentService, learningService *service.LearningService) *PatternController {
	return &PatternController{
		ContentService:  contentService,
		LearningService: learningService,
	}
}

// @Summary 模式目录
// @Description 获取设计模式目录，支持关键字搜索和分类过滤
// @Tags 模式
// @Produce json
// @Param q query string false "搜索关键字"
// @Param category query string false "分类 creational/structural/behavioral"
// @Success 200 {object} util.Response
// @Router /api/patterns [get]
func (c *PatternController) ListPatterns(ctx *gin.Context) {
	patterns := catalog.Search(ctx.Query("q"))

	if raw := ctx.Query("category"); raw != "" {
		category := model.PatternCategory(raw)
		if !category.Valid() {
			util.BadRequest(ctx, "invalid category")
			return
		}
		filtered := make([]model.Pattern, 0, len(patterns))
		for _, p := range patterns {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		patterns = filtered
	}

	util.Success(ctx, patterns)
}

// @Summary 模式详情
// @Description 获取单个模式的目录信息和讲义正文；已登录用户附带本人进度
// @Tags 模式
// @Produce json
// @Param id path string true "模式 slug"
// @Success 200 {object} util.Response
// @Router /api/patterns/{id} [get]
func (c *PatternController) GetPattern(ctx *gin.Context) {
	id := ctx.Param("id")

	detail, err := c.ContentService.GetPatternDetail(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrPatternNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	// 游客只拿内容，登录用户带上进度
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Success(ctx, gin.H{"pattern": detail})
		return
	}

	progress, err := c.LearningService.GetProgress(claims.UserID, id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"pattern":  detail,
		"progress": progress,
	})
}
