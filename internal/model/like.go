package model

import (
	"time"
)

// Like 点赞记录，(user_id, target_type, target_id) 唯一
// target_type 存旧版数字编码(1景点,2攻略,3游记,4评论)
type Like struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:uix_like_user_target,priority:1" json:"user_id"`
	TargetType int       `gorm:"not null;uniqueIndex:uix_like_user_target,priority:2" json:"target_type"`
	TargetID   int64     `gorm:"not null;uniqueIndex:uix_like_user_target,priority:3;index" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
