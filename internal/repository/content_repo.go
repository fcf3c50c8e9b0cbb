package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/internal/model"
)

// TargetBrief 目标实体公共字段投影，互动校验和计数对账用
type TargetBrief struct {
	ID              int64
	Status          int
	ViewCount       int64
	LikeCount       int64
	CollectionCount int64
	CommentCount    int64
}

// HotCandidate 参与热度排序的候选条目(各内容表的统一投影)
type HotCandidate struct {
	ID              int64
	Title           string
	CoverImage      string
	ViewCount       int64
	LikeCount       int64
	CollectionCount int64
	CreatedAt       time.Time
}

// ContentRepository 内容实体(景点/攻略/游记/评论)的按类型读写。
// 类型到表/列的解析集中在 model.TargetType，这里不做分支判断。
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// GetBrief 按类型取目标实体的公共字段，不存在返回 gorm.ErrRecordNotFound
func (r *ContentRepository) GetBrief(targetType model.TargetType, id int64) (*TargetBrief, error) {
	sel := "id, status, like_count"
	if targetType.HasViewCount() {
		sel += ", view_count"
	}
	if targetType.Collectable() {
		sel += ", collection_count"
	}
	if targetType.Commentable() {
		sel += ", comment_count"
	}

	var brief TargetBrief
	err := r.db.Table(targetType.Table()).Select(sel).Where("id = ?", id).Take(&brief).Error
	if err != nil {
		return nil, err
	}
	return &brief, nil
}

// GetAttraction 获取景点
func (r *ContentRepository) GetAttraction(id int64) (*model.Attraction, error) {
	var attraction model.Attraction
	err := r.db.First(&attraction, id).Error
	if err != nil {
		return nil, err
	}
	return &attraction, nil
}

// GetAttractionsByIDs 按ID批量获取景点
func (r *ContentRepository) GetAttractionsByIDs(ids []int64) (map[int64]*model.Attraction, error) {
	result := make(map[int64]*model.Attraction, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var attractions []*model.Attraction
	if err := r.db.Where("id IN ?", ids).Find(&attractions).Error; err != nil {
		return nil, err
	}
	for _, a := range attractions {
		result[a.ID] = a
	}
	return result, nil
}

// IncrementViewCount 增加浏览数
func (r *ContentRepository) IncrementViewCount(targetType model.TargetType, id int64) error {
	if !targetType.HasViewCount() {
		return nil
	}
	return r.db.Table(targetType.Table()).Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

// IncrementCommentCount 增加/减少评论数(下限为0)
func (r *ContentRepository) IncrementCommentCount(targetType model.TargetType, id int64, delta int) error {
	if !targetType.Commentable() {
		return nil
	}
	if delta >= 0 {
		return r.db.Table(targetType.Table()).Where("id = ?", id).
			Update("comment_count", gorm.Expr("comment_count + ?", delta)).Error
	}
	expr := fmt.Sprintf("CASE WHEN comment_count > %d THEN comment_count - %d ELSE 0 END", -delta, -delta)
	return r.db.Table(targetType.Table()).Where("id = ?", id).
		Update("comment_count", gorm.Expr(expr)).Error
}

// ListHotCandidates 取热度排序候选页：上架内容按浏览量截断，打分在内存里做
func (r *ContentRepository) ListHotCandidates(targetType model.TargetType, limit int) ([]*HotCandidate, error) {
	sel := fmt.Sprintf("id, %s AS title, cover_image, view_count, like_count, collection_count, created_at",
		targetType.TitleColumn())

	var candidates []*HotCandidate
	err := r.db.Table(targetType.Table()).
		Select(sel).
		Where("status = ?", 1).
		Order("view_count DESC").
		Limit(limit).
		Find(&candidates).Error
	return candidates, err
}

// ListTopAttractions 按加权和取上架景点(确定性排序，默认推荐用，不含抖动项)
func (r *ContentRepository) ListTopAttractions(viewWeight, likeWeight, collectWeight float64, limit int) ([]*model.Attraction, error) {
	order := fmt.Sprintf("(view_count * %v + like_count * %v + collection_count * %v) DESC, id ASC",
		viewWeight, likeWeight, collectWeight)

	var attractions []*model.Attraction
	err := r.db.Where("status = ?", 1).Order(order).Limit(limit).Find(&attractions).Error
	return attractions, err
}
