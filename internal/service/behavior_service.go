package service

import (
	"errors"
	"log"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/model"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/repository"
)

var (
	ErrInvalidBehaviorType = errors.New("行为类型不合法")
)

// BehaviorService 用户行为日志，推荐和热度的特征来源
type BehaviorService struct {
	behaviorRepo *repository.BehaviorRepository
	cfg          *config.Config
}

func NewBehaviorService(behaviorRepo *repository.BehaviorRepository, cfg *config.Config) *BehaviorService {
	return &BehaviorService{
		behaviorRepo: behaviorRepo,
		cfg:          cfg,
	}
}

// Record 记录一条用户行为。每次调用都是一条新记录，重复浏览不合并
func (s *BehaviorService) Record(userID int64, req *dto.RecordBehaviorRequest, ip, userAgent string) (*model.UserBehavior, error) {
	if !model.ValidBehaviorType(req.BehaviorType) {
		return nil, ErrInvalidBehaviorType
	}
	if _, ok := model.ParseTargetType(req.TargetType); !ok {
		return nil, ErrInvalidTargetType
	}

	duration := req.Duration
	if duration < 0 {
		duration = 0
	}

	behavior := &model.UserBehavior{
		UserID:       userID,
		BehaviorType: req.BehaviorType,
		TargetType:   req.TargetType,
		TargetID:     req.TargetID,
		Duration:     duration,
		IP:           ip,
		UserAgent:    userAgent,
	}
	if err := s.behaviorRepo.Create(behavior); err != nil {
		return nil, err
	}
	return behavior, nil
}

// RecordQuiet 尽力而为地记录行为：失败只打日志，绝不影响触发它的主流程
func (s *BehaviorService) RecordQuiet(userID int64, behaviorType int, targetType string, targetID int64) {
	req := &dto.RecordBehaviorRequest{
		BehaviorType: behaviorType,
		TargetType:   targetType,
		TargetID:     targetID,
	}
	if _, err := s.Record(userID, req, "", ""); err != nil {
		log.Printf("Failed to record behavior (user=%d type=%d target=%s/%d): %v",
			userID, behaviorType, targetType, targetID, err)
	}
}
