package repository

import (
	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/internal/model"
)

// BehaviorRepository 用户行为日志，只追加
type BehaviorRepository struct {
	db *gorm.DB
}

func NewBehaviorRepository(db *gorm.DB) *BehaviorRepository {
	return &BehaviorRepository{db: db}
}

// Create 追加一条行为记录，重复上报就是多条记录，不做合并
func (r *BehaviorRepository) Create(behavior *model.UserBehavior) error {
	return r.db.Create(behavior).Error
}

// CountByUser 统计用户行为数量
func (r *BehaviorRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserBehavior{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ListByTargetType 取某目标类型下的全部行为(协同过滤建矩阵用)
func (r *BehaviorRepository) ListByTargetType(targetType model.TargetType) ([]*model.UserBehavior, error) {
	var behaviors []*model.UserBehavior
	err := r.db.Where("target_type = ?", string(targetType)).Find(&behaviors).Error
	return behaviors, err
}

// ListUserTargetIDs 取用户在某目标类型下交互过的目标ID(去重)
func (r *BehaviorRepository) ListUserTargetIDs(userID int64, targetType model.TargetType) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.UserBehavior{}).
		Where("user_id = ? AND target_type = ?", userID, string(targetType)).
		Distinct().
		Pluck("target_id", &ids).Error
	return ids, err
}
