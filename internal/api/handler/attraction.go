package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zhangyi-cn/toursim/internal/api/middleware"
	"github.com/Zhangyi-cn/toursim/internal/pkg/response"
	"github.com/Zhangyi-cn/toursim/internal/service"
)

type AttractionHandler struct {
	attractionService *service.AttractionService
}

func NewAttractionHandler(attractionService *service.AttractionService) *AttractionHandler {
	return &AttractionHandler{
		attractionService: attractionService,
	}
}

// Get 获取景点详情(浏览数加一)
// GET /api/v1/attractions/:id
func (h *AttractionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的景点ID")
		return
	}

	var userID *int64
	if uid, ok := middleware.GetUserID(c); ok {
		userID = &uid
	}

	detail, err := h.attractionService.GetDetail(id, userID)
	if err != nil {
		if err == service.ErrTargetNotFound {
			response.NotFoundError(c, err.Error())
		} else {
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, detail)
}
