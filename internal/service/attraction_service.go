package service

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/model"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/repository"
)

// AttractionService 景点读取面：详情读取顺带加浏览数、落行为日志
type AttractionService struct {
	contentRepo        *repository.ContentRepository
	behaviorService    *BehaviorService
	interactionService *InteractionService
	cfg                *config.Config
}

func NewAttractionService(
	contentRepo *repository.ContentRepository,
	behaviorService *BehaviorService,
	interactionService *InteractionService,
	cfg *config.Config,
) *AttractionService {
	return &AttractionService{
		contentRepo:        contentRepo,
		behaviorService:    behaviorService,
		interactionService: interactionService,
		cfg:                cfg,
	}
}

// GetDetail 获取景点详情。浏览数同步加一；
// 登录用户的浏览行为尽力而为地落日志，失败不影响本次读取
func (s *AttractionService) GetDetail(id int64, userID *int64) (*dto.AttractionDetail, error) {
	attraction, err := s.contentRepo.GetAttraction(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}
	if attraction.Status != 1 {
		return nil, ErrTargetNotFound
	}

	if err := s.contentRepo.IncrementViewCount(model.TargetAttraction, id); err != nil {
		log.Printf("Failed to increment view count for attraction %d: %v", id, err)
	}

	detail := &dto.AttractionDetail{
		ID:              attraction.ID,
		Name:            attraction.Name,
		CoverImage:      attraction.CoverImage,
		Description:     attraction.Description,
		Address:         attraction.Address,
		ViewCount:       attraction.ViewCount + 1,
		LikeCount:       attraction.LikeCount,
		CollectionCount: attraction.CollectionCount,
		CommentCount:    attraction.CommentCount,
		CreatedAt:       attraction.CreatedAt.Format(time.RFC3339),
	}

	if userID != nil {
		s.behaviorService.RecordQuiet(*userID, model.BehaviorView, string(model.TargetAttraction), id)

		liked, err := s.interactionService.BatchState(*userID, string(model.TargetAttraction), []int64{id}, model.KindLike)
		if err == nil {
			detail.IsLiked = liked[id]
		}
		collected, err := s.interactionService.BatchState(*userID, string(model.TargetAttraction), []int64{id}, model.KindCollection)
		if err == nil {
			detail.IsCollected = collected[id]
		}
	}

	return detail, nil
}
