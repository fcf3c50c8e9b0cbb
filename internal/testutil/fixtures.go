package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Zhangyi-cn/toursim/internal/model"
)

var fixtureSeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&fixtureSeq, 1)
}

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	seq := nextSeq()
	user := &model.User{
		Username: fmt.Sprintf("testuser_%d", seq),
		Nickname: fmt.Sprintf("用户%d", seq),
		Status:   1,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithUsername 设置用户名
func WithUsername(username string) func(*model.User) {
	return func(u *model.User) {
		u.Username = username
	}
}

// TestAttraction 创建测试景点
func TestAttraction(t *testing.T, db *gorm.DB, opts ...func(*model.Attraction)) *model.Attraction {
	t.Helper()

	attraction := &model.Attraction{
		Name:        fmt.Sprintf("Test Attraction %d", nextSeq()),
		Description: "测试景点描述",
		Status:      1,
	}

	for _, opt := range opts {
		opt(attraction)
	}

	if err := db.Create(attraction).Error; err != nil {
		t.Fatalf("Failed to create test attraction: %v", err)
	}

	return attraction
}

// WithAttractionStatus 设置景点上下架状态
func WithAttractionStatus(status int) func(*model.Attraction) {
	return func(a *model.Attraction) {
		a.Status = status
	}
}

// WithAttractionCounters 设置景点计数器
func WithAttractionCounters(view, like, collect int64) func(*model.Attraction) {
	return func(a *model.Attraction) {
		a.ViewCount = view
		a.LikeCount = like
		a.CollectionCount = collect
	}
}

// WithAttractionCreatedAt 设置景点创建时间
func WithAttractionCreatedAt(createdAt time.Time) func(*model.Attraction) {
	return func(a *model.Attraction) {
		a.CreatedAt = createdAt
	}
}

// TestGuide 创建测试攻略
func TestGuide(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.TravelGuide)) *model.TravelGuide {
	t.Helper()

	guide := &model.TravelGuide{
		UserID: userID,
		Title:  fmt.Sprintf("Test Guide %d", nextSeq()),
		Status: 1,
	}

	for _, opt := range opts {
		opt(guide)
	}

	if err := db.Create(guide).Error; err != nil {
		t.Fatalf("Failed to create test guide: %v", err)
	}

	return guide
}

// WithGuideCounters 设置攻略计数器
func WithGuideCounters(view, like, collect int64) func(*model.TravelGuide) {
	return func(g *model.TravelGuide) {
		g.ViewCount = view
		g.LikeCount = like
		g.CollectionCount = collect
	}
}

// TestNote 创建测试游记
func TestNote(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.TravelNote)) *model.TravelNote {
	t.Helper()

	note := &model.TravelNote{
		UserID: userID,
		Title:  fmt.Sprintf("Test Note %d", nextSeq()),
		Status: 1,
	}

	for _, opt := range opts {
		opt(note)
	}

	if err := db.Create(note).Error; err != nil {
		t.Fatalf("Failed to create test note: %v", err)
	}

	return note
}

// WithNoteCounters 设置游记计数器
func WithNoteCounters(view, like, collect int64) func(*model.TravelNote) {
	return func(n *model.TravelNote) {
		n.ViewCount = view
		n.LikeCount = like
		n.CollectionCount = collect
	}
}

// TestComment 创建测试评论
func TestComment(t *testing.T, db *gorm.DB, userID int64, targetType string, targetID int64, opts ...func(*model.Comment)) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
		Content:    fmt.Sprintf("测试评论 %d", nextSeq()),
		Status:     1,
	}

	for _, opt := range opts {
		opt(comment)
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return comment
}

// WithParent 设置父评论
func WithParent(parentID int64) func(*model.Comment) {
	return func(c *model.Comment) {
		c.ParentID = &parentID
	}
}

// TestBehavior 创建测试行为记录
func TestBehavior(t *testing.T, db *gorm.DB, userID int64, behaviorType int, targetType string, targetID int64) *model.UserBehavior {
	t.Helper()

	behavior := &model.UserBehavior{
		UserID:       userID,
		BehaviorType: behaviorType,
		TargetType:   targetType,
		TargetID:     targetID,
	}

	if err := db.Create(behavior).Error; err != nil {
		t.Fatalf("Failed to create test behavior: %v", err)
	}

	return behavior
}
