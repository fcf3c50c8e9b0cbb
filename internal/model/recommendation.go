package model

import (
	"time"
)

// 推荐记录状态
const (
	RecommendationActive     = 1 // 有效
	RecommendationSuperseded = 0 // 已被新一轮推荐替换
)

// Recommendation 推荐结果物化表，(user_id, target_type) 下的有效行即当前推荐列表
type Recommendation struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"not null;index:idx_rec_user_type,priority:1" json:"user_id"`
	TargetType string    `gorm:"size:20;not null;index:idx_rec_user_type,priority:2" json:"target_type"`
	TargetID   int64     `gorm:"not null" json:"target_id"`
	Score      float64   `gorm:"not null;default:0" json:"score"`
	Reason     string    `gorm:"size:100" json:"reason"`
	Status     int       `gorm:"not null;default:1" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
