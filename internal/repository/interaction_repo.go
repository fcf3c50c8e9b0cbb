package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/internal/model"
)

var (
	// ErrTargetNotFound 互动目标不存在(记录与计数在同一事务内，目标缺失则整体回滚)
	ErrTargetNotFound = errors.New("目标不存在")

	errAlreadyExists = errors.New("interaction exists")
	errNoRecord      = errors.New("interaction missing")
)

// InteractionRepository 点赞/收藏的通用存储：互动记录 + 目标实体上的冗余计数。
// 记录插入/删除与计数更新始终在同一事务内提交。
type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Exists 检查互动记录是否存在
func (r *InteractionRepository) Exists(userID, targetID int64, targetType model.TargetType, kind model.InteractionKind) (bool, error) {
	var count int64
	err := r.db.Table(kind.TableName()).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType.Code(), targetID).
		Count(&count).Error
	return count > 0, err
}

// Add 添加互动记录并加一冗余计数。
// 乐观插入：不先查重，唯一约束冲突视为"已存在"，返回 (false, nil)。
// 目标实体不存在时整个事务回滚，返回 ErrTargetNotFound。
func (r *InteractionRepository) Add(userID, targetID int64, targetType model.TargetType, kind model.InteractionKind) (bool, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := createRecord(tx, kind, userID, targetID, targetType); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errAlreadyExists
			}
			return err
		}

		col := kind.CounterColumn()
		res := tx.Table(targetType.Table()).
			Where("id = ?", targetID).
			Update(col, gorm.Expr(col+" + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTargetNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove 删除互动记录并减一冗余计数(下限为0)。
// 记录不存在时返回 (false, nil)。
func (r *InteractionRepository) Remove(userID, targetID int64, targetType model.TargetType, kind model.InteractionKind) (bool, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType.Code(), targetID).
			Delete(recordModel(kind))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNoRecord
		}

		col := kind.CounterColumn()
		expr := fmt.Sprintf("CASE WHEN %s > 0 THEN %s - 1 ELSE 0 END", col, col)
		return tx.Table(targetType.Table()).
			Where("id = ?", targetID).
			Update(col, gorm.Expr(expr)).Error
	})
	if err != nil {
		if errors.Is(err, errNoRecord) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Count 统计某目标的互动数量(直接数记录表，对账用，稳态下应与冗余计数一致)
func (r *InteractionRepository) Count(targetID int64, targetType model.TargetType, kind model.InteractionKind) (int64, error) {
	var count int64
	err := r.db.Table(kind.TableName()).
		Where("target_type = ? AND target_id = ?", targetType.Code(), targetID).
		Count(&count).Error
	return count, err
}

// BatchState 批量查询用户对一批目标的互动状态，单条 IN 查询，避免 N+1
func (r *InteractionRepository) BatchState(userID int64, targetType model.TargetType, targetIDs []int64, kind model.InteractionKind) (map[int64]bool, error) {
	state := make(map[int64]bool, len(targetIDs))
	for _, id := range targetIDs {
		state[id] = false
	}
	if len(targetIDs) == 0 {
		return state, nil
	}

	var marked []int64
	err := r.db.Table(kind.TableName()).
		Where("user_id = ? AND target_type = ? AND target_id IN ?", userID, targetType.Code(), targetIDs).
		Pluck("target_id", &marked).Error
	if err != nil {
		return nil, err
	}

	for _, id := range marked {
		state[id] = true
	}
	return state, nil
}

// ListUserTargets 获取用户点赞/收藏过的目标ID列表(按时间倒序分页)
func (r *InteractionRepository) ListUserTargets(userID int64, targetType model.TargetType, kind model.InteractionKind, page, pageSize int) ([]int64, int64, error) {
	var total int64
	var ids []int64

	query := r.db.Table(kind.TableName()).
		Where("user_id = ? AND target_type = ?", userID, targetType.Code())

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Pluck("target_id", &ids).Error
	return ids, total, err
}

func createRecord(tx *gorm.DB, kind model.InteractionKind, userID, targetID int64, targetType model.TargetType) error {
	if kind == model.KindCollection {
		return tx.Create(&model.Collection{
			UserID:     userID,
			TargetType: targetType.Code(),
			TargetID:   targetID,
		}).Error
	}
	return tx.Create(&model.Like{
		UserID:     userID,
		TargetType: targetType.Code(),
		TargetID:   targetID,
	}).Error
}

func recordModel(kind model.InteractionKind) interface{} {
	if kind == model.KindCollection {
		return &model.Collection{}
	}
	return &model.Like{}
}
