package repository

import (
	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 按ID获取评论
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete 删除评论
func (r *CommentRepository) Delete(id int64) error {
	return r.db.Delete(&model.Comment{}, id).Error
}

// DeleteByParentID 删除某评论下的全部回复，返回删除数量
func (r *CommentRepository) DeleteByParentID(parentID int64) (int64, error) {
	res := r.db.Where("parent_id = ?", parentID).Delete(&model.Comment{})
	return res.RowsAffected, res.Error
}

// ListTopLevel 获取目标下的一级评论(分页，带作者)
func (r *CommentRepository) ListTopLevel(targetType model.TargetType, targetID int64, page, pageSize int) ([]*model.Comment, int64, error) {
	var total int64
	query := r.db.Model(&model.Comment{}).
		Where("target_type = ? AND target_id = ? AND parent_id IS NULL", string(targetType), targetID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*model.Comment
	offset := (page - 1) * pageSize
	err := query.Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&comments).Error
	return comments, total, err
}

// ListReplies 获取一批一级评论下的全部回复(带作者)
func (r *CommentRepository) ListReplies(parentIDs []int64) ([]*model.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var replies []*model.Comment
	err := r.db.Preload("User").
		Where("parent_id IN ?", parentIDs).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}
