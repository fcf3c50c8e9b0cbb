package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zhangyi-cn/toursim/internal/api/middleware"
	"github.com/Zhangyi-cn/toursim/internal/model"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/pkg/response"
	"github.com/Zhangyi-cn/toursim/internal/service"
)

type InteractionHandler struct {
	interactionService *service.InteractionService
}

func NewInteractionHandler(interactionService *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
	}
}

// ToggleLike 切换点赞状态
// POST /api/v1/interactions/likes
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "参数不完整")
		return
	}

	active, count, err := h.interactionService.Toggle(userID, req.TargetID, req.TargetType, model.KindLike)
	if err != nil {
		switch err {
		case service.ErrInvalidTargetType:
			response.ParamError(c, err.Error())
		case service.ErrTargetNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "操作成功", dto.LikeToggleResponse{
		IsLiked: active,
		Count:   count,
	})
}

// ToggleCollection 切换收藏状态
// POST /api/v1/interactions/collections
func (h *InteractionHandler) ToggleCollection(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "参数不完整")
		return
	}

	active, count, err := h.interactionService.Toggle(userID, req.TargetID, req.TargetType, model.KindCollection)
	if err != nil {
		switch err {
		case service.ErrInvalidTargetType:
			response.ParamError(c, err.Error())
		case service.ErrTargetNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "操作成功", dto.CollectionToggleResponse{
		IsCollected: active,
		Count:       count,
	})
}

// LikeStatus 批量查询点赞状态
// POST /api/v1/interactions/likes/status
func (h *InteractionHandler) LikeStatus(c *gin.Context) {
	h.batchStatus(c, model.KindLike)
}

// CollectionStatus 批量查询收藏状态
// POST /api/v1/interactions/collections/status
func (h *InteractionHandler) CollectionStatus(c *gin.Context) {
	h.batchStatus(c, model.KindCollection)
}

func (h *InteractionHandler) batchStatus(c *gin.Context, kind model.InteractionKind) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.BatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "参数不完整")
		return
	}

	status, err := h.interactionService.BatchState(userID, req.TargetType, req.TargetIDs, kind)
	if err != nil {
		if err == service.ErrInvalidTargetType {
			response.ParamError(c, err.Error())
		} else {
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, dto.BatchStatusResponse{Status: status})
}

// MyLikes 我点赞过的目标ID列表
// GET /api/v1/user/likes?target_type=attraction&page=1&page_size=10
func (h *InteractionHandler) MyLikes(c *gin.Context) {
	h.listUserTargets(c, model.KindLike)
}

// MyCollections 我收藏过的目标ID列表
// GET /api/v1/user/collections?target_type=attraction&page=1&page_size=10
func (h *InteractionHandler) MyCollections(c *gin.Context) {
	h.listUserTargets(c, model.KindCollection)
}

func (h *InteractionHandler) listUserTargets(c *gin.Context, kind model.InteractionKind) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	targetType := c.DefaultQuery("target_type", "attraction")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	ids, total, err := h.interactionService.ListUserTargets(userID, targetType, kind, page, pageSize)
	if err != nil {
		if err == service.ErrInvalidTargetType {
			response.ParamError(c, err.Error())
		} else {
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessPage(c, total, page, pageSize, ids)
}
