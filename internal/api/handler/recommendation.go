package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zhangyi-cn/toursim/internal/api/middleware"
	"github.com/Zhangyi-cn/toursim/internal/pkg/response"
	"github.com/Zhangyi-cn/toursim/internal/service"
)

type RecommendationHandler struct {
	recommendationService *service.RecommendationService
	hotService            *service.HotService
}

func NewRecommendationHandler(
	recommendationService *service.RecommendationService,
	hotService *service.HotService,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		hotService:            hotService,
	}
}

// Get 获取个性化推荐
// GET /api/v1/recommendations?limit=10
func (h *RecommendationHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, err := h.recommendationService.GetUserRecommendations(userID, limit)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "获取推荐成功", items)
}

// Hot 获取热门榜单
// GET /api/v1/recommendations/hot?type=all&limit=10
func (h *RecommendationHandler) Hot(c *gin.Context) {
	itemType := c.DefaultQuery("type", "all")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := h.hotService.HotList(itemType, limit)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "获取热门推荐成功", resp)
}

// Today 获取今日推荐(5分钟缓存)
// GET /api/v1/recommendations/today
func (h *RecommendationHandler) Today(c *gin.Context) {
	resp, err := h.hotService.TodayPicks(c.Request.Context())
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "获取今日推荐成功", resp)
}
