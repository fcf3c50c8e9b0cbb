package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/model"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/repository"
)

var (
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrCommentPermission = errors.New("无权操作此评论")
	ErrParentNotFound    = errors.New("父评论不存在")
	ErrParentMismatch    = errors.New("父评论不属于该目标")
)

// CommentService 评论：一级回复 + 目标实体上的冗余评论数
type CommentService struct {
	commentRepo        *repository.CommentRepository
	contentRepo        *repository.ContentRepository
	userRepo           *repository.UserRepository
	interactionService *InteractionService
	cfg                *config.Config
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	contentRepo *repository.ContentRepository,
	userRepo *repository.UserRepository,
	interactionService *InteractionService,
	cfg *config.Config,
) *CommentService {
	return &CommentService{
		commentRepo:        commentRepo,
		contentRepo:        contentRepo,
		userRepo:           userRepo,
		interactionService: interactionService,
		cfg:                cfg,
	}
}

// Create 发表评论
func (s *CommentService) Create(userID int64, req *dto.CreateCommentRequest) (*dto.CommentItem, error) {
	t, ok := model.ParseTargetType(req.TargetType)
	if !ok || !t.Commentable() {
		return nil, ErrInvalidTargetType
	}

	// 目标必须存在
	if _, err := s.contentRepo.GetBrief(t, req.TargetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	// 如果是回复，验证父评论
	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}

		if parent.TargetType != string(t) || parent.TargetID != req.TargetID {
			return nil, ErrParentMismatch
		}

		// 只支持一级回复
		if parent.ParentID != nil {
			req.ParentID = parent.ParentID
		}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		UserID:     userID,
		TargetType: string(t),
		TargetID:   req.TargetID,
		ParentID:   req.ParentID,
		Content:    req.Content,
		Status:     1,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// 增加目标的评论数
	if err := s.contentRepo.IncrementCommentCount(t, req.TargetID, 1); err != nil {
		return nil, err
	}

	return &dto.CommentItem{
		ID:       comment.ID,
		ParentID: comment.ParentID,
		Content:  comment.Content,
		User: &dto.CommentUser{
			ID:       user.ID,
			Nickname: user.Nickname,
			Avatar:   user.Avatar,
		},
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Delete 删除评论(连带回复)，同步减少目标的评论数
func (s *CommentService) Delete(userID, commentID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != userID {
		return ErrCommentPermission
	}

	deletedReplies, _ := s.commentRepo.DeleteByParentID(commentID)

	if err := s.commentRepo.Delete(commentID); err != nil {
		return err
	}

	t, _ := model.ParseTargetType(comment.TargetType)
	totalDeleted := 1 + int(deletedReplies)
	return s.contentRepo.IncrementCommentCount(t, comment.TargetID, -totalDeleted)
}

// List 获取目标下的评论(一级评论分页，回复全量带出)。
// userID 非空时批量标记当前用户的点赞状态
func (s *CommentService) List(targetType string, targetID int64, userID *int64, page, pageSize int) ([]*dto.CommentItem, int64, error) {
	t, ok := model.ParseTargetType(targetType)
	if !ok || !t.Commentable() {
		return nil, 0, ErrInvalidTargetType
	}

	comments, total, err := s.commentRepo.ListTopLevel(t, targetID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	parentIDs := make([]int64, len(comments))
	for i, c := range comments {
		parentIDs[i] = c.ID
	}
	replies, err := s.commentRepo.ListReplies(parentIDs)
	if err != nil {
		return nil, 0, err
	}

	// 一次 IN 查询标记整页评论的点赞状态
	liked := map[int64]bool{}
	if userID != nil {
		allIDs := make([]int64, 0, len(comments)+len(replies))
		allIDs = append(allIDs, parentIDs...)
		for _, reply := range replies {
			allIDs = append(allIDs, reply.ID)
		}
		liked, err = s.interactionService.BatchState(*userID, string(model.TargetComment), allIDs, model.KindLike)
		if err != nil {
			return nil, 0, err
		}
	}

	replyItems := make(map[int64][]*dto.CommentItem)
	for _, reply := range replies {
		item := buildCommentItem(reply, liked)
		replyItems[*reply.ParentID] = append(replyItems[*reply.ParentID], item)
	}

	items := make([]*dto.CommentItem, len(comments))
	for i, c := range comments {
		item := buildCommentItem(c, liked)
		item.Replies = replyItems[c.ID]
		items[i] = item
	}
	return items, total, nil
}

func buildCommentItem(c *model.Comment, liked map[int64]bool) *dto.CommentItem {
	item := &dto.CommentItem{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		LikeCount: c.LikeCount,
		IsLiked:   liked[c.ID],
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.User != nil {
		item.User = &dto.CommentUser{
			ID:       c.User.ID,
			Nickname: c.User.Nickname,
			Avatar:   c.User.Avatar,
		}
	}
	return item
}
