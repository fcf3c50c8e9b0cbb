package model

import (
	"time"
)

type Attraction struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	CoverImage      string    `gorm:"size:255" json:"cover_image"`
	Description     string    `gorm:"type:text" json:"description"`
	Address         string    `gorm:"size:255" json:"address"`
	Status          int       `gorm:"not null;default:1;index" json:"status"` // 1 上架, 0 下架
	ViewCount       int64     `gorm:"not null;default:0" json:"view_count"`
	LikeCount       int64     `gorm:"not null;default:0" json:"like_count"`
	CollectionCount int64     `gorm:"not null;default:0" json:"collection_count"`
	CommentCount    int64     `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Attraction) TableName() string {
	return "attractions"
}
