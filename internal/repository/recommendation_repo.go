package repository

import (
	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/internal/model"
)

// RecommendationRepository 推荐结果物化表
type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// ListActive 取用户当前有效的推荐，按分数倒序
func (r *RecommendationRepository) ListActive(userID int64, targetType model.TargetType, limit int) ([]*model.Recommendation, error) {
	var recs []*model.Recommendation
	err := r.db.Where("user_id = ? AND target_type = ? AND status = ?", userID, string(targetType), model.RecommendationActive).
		Order("score DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

// CountActive 统计用户当前有效推荐条数
func (r *RecommendationRepository) CountActive(userID int64, targetType model.TargetType) (int64, error) {
	var count int64
	err := r.db.Model(&model.Recommendation{}).
		Where("user_id = ? AND target_type = ? AND status = ?", userID, string(targetType), model.RecommendationActive).
		Count(&count).Error
	return count, err
}

// ReplaceForUser 整体替换用户某类型下的推荐：同一事务内先删后插，不做增量合并
func (r *RecommendationRepository) ReplaceForUser(userID int64, targetType model.TargetType, recs []*model.Recommendation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND target_type = ?", userID, string(targetType)).
			Delete(&model.Recommendation{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.Create(&recs).Error
	})
}
