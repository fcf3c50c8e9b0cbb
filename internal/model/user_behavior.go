package model

import (
	"time"
)

// 行为类型(1浏览,2搜索,3点击,4停留,5分享)
const (
	BehaviorView   = 1
	BehaviorSearch = 2
	BehaviorClick  = 3
	BehaviorDwell  = 4
	BehaviorShare  = 5
)

// UserBehavior 用户行为记录，只追加不修改
type UserBehavior struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	UserID       int64     `gorm:"not null;index" json:"user_id"`
	BehaviorType int       `gorm:"not null" json:"behavior_type"`
	TargetType   string    `gorm:"size:50;not null;index" json:"target_type"`
	TargetID     int64     `gorm:"not null" json:"target_id"`
	Duration     int       `gorm:"not null;default:0" json:"duration"` // 停留时长(秒)
	IP           string    `gorm:"size:50" json:"ip"`
	UserAgent    string    `gorm:"size:255" json:"user_agent"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (UserBehavior) TableName() string {
	return "user_behaviors"
}

// ValidBehaviorType 行为类型是否合法
func ValidBehaviorType(behaviorType int) bool {
	return behaviorType >= BehaviorView && behaviorType <= BehaviorShare
}

// BehaviorTypeText 行为类型文本
func BehaviorTypeText(behaviorType int) string {
	switch behaviorType {
	case BehaviorView:
		return "浏览"
	case BehaviorSearch:
		return "搜索"
	case BehaviorClick:
		return "点击"
	case BehaviorDwell:
		return "停留"
	case BehaviorShare:
		return "分享"
	default:
		return "未知"
	}
}
