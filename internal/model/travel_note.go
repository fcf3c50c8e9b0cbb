package model

import (
	"time"
)

type TravelNote struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	UserID          int64     `gorm:"not null;index" json:"user_id"`
	Title           string    `gorm:"size:100;not null" json:"title"`
	CoverImage      string    `gorm:"size:255" json:"cover_image"`
	Content         string    `gorm:"type:text" json:"content"`
	Status          int       `gorm:"not null;default:1;index" json:"status"` // 1 发布, 0 下架
	ViewCount       int64     `gorm:"not null;default:0" json:"view_count"`
	LikeCount       int64     `gorm:"not null;default:0" json:"like_count"`
	CollectionCount int64     `gorm:"not null;default:0" json:"collection_count"`
	CommentCount    int64     `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (TravelNote) TableName() string {
	return "travel_notes"
}
