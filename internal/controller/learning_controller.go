package controller

import (
	"errors"
	"strconv"

	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

type UpdateProgressRequest struct {
	Status model.LearningStatus `json:"status" binding:"required"`
}

type QuizAnswerRequest struct {
	QuestionType model.QuestionType `json:"questionType" binding:"required"`
	Answer       string             `json:"answer" binding:"required"`
	IsCorrect    bool               `json:"isCorrect"`
}

// @Summary 全部学习进度
// @Description 获取当前用户全部模式的进度行
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/learning/progress [get]
func (c *LearningController) GetAllProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	rows, err := c.LearningService.GetAllProgress(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary 单个模式进度
// @Description 获取某个模式的进度及允许的下一步状态
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Param patternId path string true "模式 slug"
// @Success 200 {object} util.Response
// @Router /api/learning/progress/{patternId} [get]
func (c *LearningController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.LearningService.GetProgress(user.UserID, ctx.Param("patternId"))
	if err != nil {
		if errors.Is(err, util.ErrPatternNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 更新学习进度
// @Description 写入某个模式的学习状态并记录学习历史
// @Tags 学习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param patternId path string true "模式 slug"
// @Param body body UpdateProgressRequest true "目标状态"
// @Success 200 {object} util.Response
// @Router /api/learning/progress/{patternId} [put]
func (c *LearningController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	row, err := c.LearningService.UpdateProgress(user.UserID, ctx.Param("patternId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPatternNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidStatus):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, row)
}

// @Summary 提交测验作答
// @Description 记录一次测验作答（只追加）
// @Tags 学习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param patternId path string true "模式 slug"
// @Param body body QuizAnswerRequest true "作答内容"
// @Success 201 {object} util.Response
// @Router /api/learning/quiz/{patternId} [post]
func (c *LearningController) SubmitQuizAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuizAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	row, err := c.LearningService.SubmitQuizAnswer(user.UserID, ctx.Param("patternId"), req.QuestionType, req.Answer, req.IsCorrect)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPatternNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidQuestion):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, row)
}

// @Summary 测验作答历史
// @Description 按时间倒序返回作答记录，可按模式过滤
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Param patternId query string false "模式 slug"
// @Success 200 {object} util.Response
// @Router /api/learning/quiz-answers [get]
func (c *LearningController) GetQuizAnswers(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	rows, err := c.LearningService.GetQuizAnswers(user.UserID, ctx.Query("patternId"))
	if err != nil {
		if errors.Is(err, util.ErrPatternNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary 单个模式的测验统计
// @Description 某个模式的作答总数、正确数与正确率
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Param patternId path string true "模式 slug"
// @Success 200 {object} util.Response
// @Router /api/learning/quiz/{patternId}/stats [get]
func (c *LearningController) GetQuizPatternStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.LearningService.GetQuizPatternStats(user.UserID, ctx.Param("patternId"))
	if err != nil {
		if errors.Is(err, util.ErrPatternNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary 学习历史
// @Description 按时间倒序返回最近的学习事件
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数上限，默认50"
// @Success 200 {object} util.Response
// @Router /api/learning/history [get]
func (c *LearningController) GetHistory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	rows, err := c.LearningService.GetRecentHistory(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary 学习统计
// @Description 整体进度、分类进度、测验正确率与最近活动
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/learning/stats [get]
func (c *LearningController) GetStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.LearningService.GetLearningStats(user.UserID)
	if err != nil {
		// 读失败时不返回零值统计，避免被误读为"还没开始学"
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary 活动日历
// @Description 按天统计窗口期内的学习事件数
// @Tags 学习
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "窗口天数，默认365"
// @Success 200 {object} util.Response
// @Router /api/learning/activity [get]
func (c *LearningController) GetActivity(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "0"))

	data, err := c.LearningService.GetActivityData(user.UserID, days)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, data)
}
