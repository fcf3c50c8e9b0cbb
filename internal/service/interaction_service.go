package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/model"
	"github.com/Zhangyi-cn/toursim/internal/repository"
)

var (
	ErrInvalidTargetType = errors.New("目标类型不合法")
	ErrTargetNotFound    = errors.New("目标不存在")
)

// InteractionService 点赞/收藏的切换与批量查询。
// 记录与冗余计数的原子性由 InteractionRepository 的事务保证；
// Toggle 本身是先查后做，并发重复操作由唯一约束兜底收敛为幂等结果。
type InteractionService struct {
	interactionRepo *repository.InteractionRepository
	contentRepo     *repository.ContentRepository
	cfg             *config.Config
}

func NewInteractionService(
	interactionRepo *repository.InteractionRepository,
	contentRepo *repository.ContentRepository,
	cfg *config.Config,
) *InteractionService {
	return &InteractionService{
		interactionRepo: interactionRepo,
		contentRepo:     contentRepo,
		cfg:             cfg,
	}
}

// resolveTarget 校验目标类型/互动种类并确认目标存在
func (s *InteractionService) resolveTarget(targetID int64, targetType string, kind model.InteractionKind) (model.TargetType, error) {
	t, ok := model.ParseTargetType(targetType)
	if !ok || !kind.Supports(t) {
		return "", ErrInvalidTargetType
	}

	if _, err := s.contentRepo.GetBrief(t, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrTargetNotFound
		}
		return "", err
	}
	return t, nil
}

// Toggle 切换互动状态，返回切换后的状态和最新计数
func (s *InteractionService) Toggle(userID, targetID int64, targetType string, kind model.InteractionKind) (bool, int64, error) {
	t, err := s.resolveTarget(targetID, targetType, kind)
	if err != nil {
		return false, 0, err
	}

	exists, err := s.interactionRepo.Exists(userID, targetID, t, kind)
	if err != nil {
		return false, 0, err
	}

	var active bool
	if exists {
		// 已有记录则取消；并发下记录可能已被删掉，Remove 返回 false 也按取消处理
		if _, err := s.interactionRepo.Remove(userID, targetID, t, kind); err != nil {
			return false, 0, err
		}
		active = false
	} else {
		// 乐观插入，重复插入被唯一约束拦下时同样视为已点上
		if _, err := s.interactionRepo.Add(userID, targetID, t, kind); err != nil {
			if errors.Is(err, repository.ErrTargetNotFound) {
				return false, 0, ErrTargetNotFound
			}
			return false, 0, err
		}
		active = true
	}

	count, err := s.interactionRepo.Count(targetID, t, kind)
	if err != nil {
		return false, 0, err
	}
	return active, count, nil
}

// Add 添加互动，已存在时返回 (false, 当前计数)，不报错
func (s *InteractionService) Add(userID, targetID int64, targetType string, kind model.InteractionKind) (bool, int64, error) {
	t, err := s.resolveTarget(targetID, targetType, kind)
	if err != nil {
		return false, 0, err
	}

	created, err := s.interactionRepo.Add(userID, targetID, t, kind)
	if err != nil {
		if errors.Is(err, repository.ErrTargetNotFound) {
			return false, 0, ErrTargetNotFound
		}
		return false, 0, err
	}

	count, err := s.interactionRepo.Count(targetID, t, kind)
	if err != nil {
		return false, 0, err
	}
	return created, count, nil
}

// Remove 取消互动，记录不存在时返回 (false, 当前计数)，不报错
func (s *InteractionService) Remove(userID, targetID int64, targetType string, kind model.InteractionKind) (bool, int64, error) {
	t, err := s.resolveTarget(targetID, targetType, kind)
	if err != nil {
		return false, 0, err
	}

	removed, err := s.interactionRepo.Remove(userID, targetID, t, kind)
	if err != nil {
		return false, 0, err
	}

	count, err := s.interactionRepo.Count(targetID, t, kind)
	if err != nil {
		return false, 0, err
	}
	return removed, count, nil
}

// Count 统计某目标的互动数(数记录表，对账口径)
func (s *InteractionService) Count(targetID int64, targetType string, kind model.InteractionKind) (int64, error) {
	t, ok := model.ParseTargetType(targetType)
	if !ok || !kind.Supports(t) {
		return 0, ErrInvalidTargetType
	}
	return s.interactionRepo.Count(targetID, t, kind)
}

// BatchState 批量查询用户对一批目标的互动状态(单条 IN 查询)
func (s *InteractionService) BatchState(userID int64, targetType string, targetIDs []int64, kind model.InteractionKind) (map[int64]bool, error) {
	t, ok := model.ParseTargetType(targetType)
	if !ok || !kind.Supports(t) {
		return nil, ErrInvalidTargetType
	}
	return s.interactionRepo.BatchState(userID, t, targetIDs, kind)
}

// ListUserTargets 用户点赞/收藏过的目标ID列表
func (s *InteractionService) ListUserTargets(userID int64, targetType string, kind model.InteractionKind, page, pageSize int) ([]int64, int64, error) {
	t, ok := model.ParseTargetType(targetType)
	if !ok || !kind.Supports(t) {
		return nil, 0, ErrInvalidTargetType
	}
	return s.interactionRepo.ListUserTargets(userID, t, kind, page, pageSize)
}
