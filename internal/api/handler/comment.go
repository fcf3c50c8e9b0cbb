package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zhangyi-cn/toursim/internal/api/middleware"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/pkg/response"
	"github.com/Zhangyi-cn/toursim/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// List 获取目标下的评论列表
// GET /api/v1/comments?target_type=attraction&target_id=1&page=1&page_size=20
func (h *CommentHandler) List(c *gin.Context) {
	targetType := c.Query("target_type")
	targetID, err := strconv.ParseInt(c.Query("target_id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的目标ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	// 登录用户标记点赞状态
	var userID *int64
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	items, total, err := h.commentService.List(targetType, targetID, userID, page, pageSize)
	if err != nil {
		if err == service.ErrInvalidTargetType {
			response.ParamError(c, err.Error())
		} else {
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessPage(c, total, page, pageSize, items)
}

// Create 发表评论
// POST /api/v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "参数不完整")
		return
	}

	item, err := h.commentService.Create(userID, &req)
	if err != nil {
		switch err {
		case service.ErrInvalidTargetType, service.ErrParentMismatch:
			response.ParamError(c, err.Error())
		case service.ErrTargetNotFound, service.ErrParentNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "评论成功", item)
}

// Delete 删除评论
// DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的评论ID")
		return
	}

	if err := h.commentService.Delete(userID, commentID); err != nil {
		switch err {
		case service.ErrCommentNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrCommentPermission:
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
