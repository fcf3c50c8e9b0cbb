package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Zhangyi-cn/toursim/internal/api/middleware"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/pkg/response"
	"github.com/Zhangyi-cn/toursim/internal/service"
)

type BehaviorHandler struct {
	behaviorService *service.BehaviorService
}

func NewBehaviorHandler(behaviorService *service.BehaviorService) *BehaviorHandler {
	return &BehaviorHandler{
		behaviorService: behaviorService,
	}
}

// Record 上报用户行为
// POST /api/v1/behaviors
func (h *BehaviorHandler) Record(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.RecordBehaviorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "参数不完整")
		return
	}

	behavior, err := h.behaviorService.Record(userID, &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		switch err {
		case service.ErrInvalidBehaviorType, service.ErrInvalidTargetType:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, behavior)
}
