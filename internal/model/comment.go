package model

import (
	"time"
)

type Comment struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	TargetType string    `gorm:"size:20;not null;index:idx_comment_target,priority:1" json:"target_type"` // attraction/guide/note
	TargetID   int64     `gorm:"not null;index:idx_comment_target,priority:2" json:"target_id"`
	ParentID   *int64    `gorm:"index" json:"parent_id,omitempty"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	LikeCount  int64     `gorm:"not null;default:0" json:"like_count"`
	Status     int       `gorm:"not null;default:1" json:"status"` // 1 正常, 0 隐藏
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 关联
	User    *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Replies []*Comment `gorm:"-" json:"replies,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
