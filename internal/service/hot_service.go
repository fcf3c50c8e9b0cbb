package service

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/model"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/pkg/cache"
	"github.com/Zhangyi-cn/toursim/internal/repository"
)

const (
	// 7天内的新内容热度加成
	recencyWindow = 7 * 24 * time.Hour
	recencyBoost  = 1.2

	todayCacheKey = "recommend:today"
)

// JitterFunc 热度抖动项。线上每次请求取 [0.9, 1.1) 的随机数，
// 测试注入常数 1.0 即可得到确定性排序
type JitterFunc func() float64

func defaultJitter() float64 {
	return 0.9 + rand.Float64()*0.2
}

// HotService 热度榜单：加权计数和 × 新鲜度加成 × 随机抖动。
// 榜单顺序在数据不变时也不保证稳定，抖动就是为了别让头部固化
type HotService struct {
	contentRepo *repository.ContentRepository
	cache       *cache.Cache
	cfg         *config.Config
	jitter      JitterFunc
}

// NewHotService 创建热度服务，jitter 传 nil 用默认随机抖动
func NewHotService(contentRepo *repository.ContentRepository, c *cache.Cache, cfg *config.Config, jitter JitterFunc) *HotService {
	if jitter == nil {
		jitter = defaultJitter
	}
	return &HotService{
		contentRepo: contentRepo,
		cache:       c,
		cfg:         cfg,
		jitter:      jitter,
	}
}

// rawScore 抖动前的热度分：加权计数和乘新鲜度系数
func (s *HotService) rawScore(c *repository.HotCandidate, targetType model.TargetType, now time.Time) float64 {
	w := s.cfg.Recommend.HotWeightFor(string(targetType))
	score := w.View*float64(c.ViewCount) + w.Like*float64(c.LikeCount) + w.Collect*float64(c.CollectionCount)
	if now.Sub(c.CreatedAt) < recencyWindow {
		score *= recencyBoost
	}
	return score
}

// rankForType 对某类型内容做热度排序，取前 limit 条
func (s *HotService) rankForType(targetType model.TargetType, limit int) ([]*dto.HotItem, error) {
	candidates, err := s.contentRepo.ListHotCandidates(targetType, s.cfg.Recommend.CandidatePoolSize())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	type scored struct {
		candidate *repository.HotCandidate
		score     float64
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{candidate: c, score: s.rawScore(c, targetType, now) * s.jitter()}
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	items := make([]*dto.HotItem, len(ranked))
	for i, r := range ranked {
		items[i] = &dto.HotItem{
			ID:              r.candidate.ID,
			Title:           r.candidate.Title,
			CoverImage:      r.candidate.CoverImage,
			ViewCount:       r.candidate.ViewCount,
			LikeCount:       r.candidate.LikeCount,
			CollectionCount: r.candidate.CollectionCount,
			CreatedAt:       r.candidate.CreatedAt.Format(time.RFC3339),
		}
	}
	return items, nil
}

// HotList 热门榜单。itemType 为 attraction/guide/note/all
func (s *HotService) HotList(itemType string, limit int) (*dto.HotListResponse, error) {
	limit = s.cfg.Recommend.ClampLimit(limit)
	resp := &dto.HotListResponse{}

	if itemType == "attraction" || itemType == "all" {
		items, err := s.rankForType(model.TargetAttraction, limit)
		if err != nil {
			return nil, err
		}
		resp.Attractions = items
	}
	if itemType == "guide" || itemType == "all" {
		items, err := s.rankForType(model.TargetGuide, limit)
		if err != nil {
			return nil, err
		}
		resp.Guides = items
	}
	if itemType == "note" || itemType == "all" {
		items, err := s.rankForType(model.TargetNote, limit)
		if err != nil {
			return nil, err
		}
		resp.Notes = items
	}
	return resp, nil
}

// TodayPicks 今日推荐：同热榜口径，每类取固定条数，结果缓存5分钟，
// 高频轮询下不至于每次都全量打分
func (s *HotService) TodayPicks(ctx context.Context) (*dto.TodayResponse, error) {
	if s.cache != nil {
		var cached dto.TodayResponse
		hit, err := s.cache.GetJSON(ctx, todayCacheKey, &cached)
		if err != nil {
			log.Printf("Failed to read today picks cache: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

	limit := s.cfg.Recommend.TodayPickLimit()
	attractions, err := s.rankForType(model.TargetAttraction, limit)
	if err != nil {
		return nil, err
	}
	guides, err := s.rankForType(model.TargetGuide, limit)
	if err != nil {
		return nil, err
	}
	notes, err := s.rankForType(model.TargetNote, limit)
	if err != nil {
		return nil, err
	}

	resp := &dto.TodayResponse{
		Attractions: attractions,
		Guides:      guides,
		Notes:       notes,
	}

	if s.cache != nil {
		ttl := time.Duration(s.cfg.Recommend.TodayCacheSeconds()) * time.Second
		if err := s.cache.SetJSON(ctx, todayCacheKey, resp, ttl); err != nil {
			log.Printf("Failed to write today picks cache: %v", err)
		}
	}
	return resp, nil
}
