package service

import (
	"log"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/model"
	"github.com/Zhangyi-cn/toursim/internal/model/dto"
	"github.com/Zhangyi-cn/toursim/internal/repository"
)

// 推荐理由
const (
	ReasonSimilarUsers = "基于相似用户的推荐"
	ReasonPreference   = "根据你的偏好推荐"
)

// RecommendationService 个性化推荐。
// 路径链：协同过滤 -> 热门兜底；任何一步失败都落到下一步，
// 推荐生成永远不把"数据不足"当错误抛给调用方。
// 结果物化到 recommendations 表，读侧发现缓存条数不够时才惰性重建。
type RecommendationService struct {
	recommendationRepo *repository.RecommendationRepository
	behaviorRepo       *repository.BehaviorRepository
	contentRepo        *repository.ContentRepository
	cf                 *CollaborativeFilter
	cfg                *config.Config
}

func NewRecommendationService(
	recommendationRepo *repository.RecommendationRepository,
	behaviorRepo *repository.BehaviorRepository,
	contentRepo *repository.ContentRepository,
	cf *CollaborativeFilter,
	cfg *config.Config,
) *RecommendationService {
	return &RecommendationService{
		recommendationRepo: recommendationRepo,
		behaviorRepo:       behaviorRepo,
		contentRepo:        contentRepo,
		cf:                 cf,
		cfg:                cfg,
	}
}

// GetUserRecommendations 获取用户的景点推荐列表。
// 缓存的有效推荐不足 limit 条时先重新生成再查询
func (s *RecommendationService) GetUserRecommendations(userID int64, limit int) ([]*dto.RecommendItem, error) {
	limit = s.cfg.Recommend.ClampLimit(limit)

	recs, err := s.recommendationRepo.ListActive(userID, model.TargetAttraction, limit)
	if err != nil {
		return nil, err
	}

	if len(recs) < limit {
		if err := s.Generate(userID); err != nil {
			// 生成失败不影响读取，已有多少返回多少
			log.Printf("Failed to generate recommendations for user %d: %v", userID, err)
		}
		recs, err = s.recommendationRepo.ListActive(userID, model.TargetAttraction, limit)
		if err != nil {
			return nil, err
		}
	}

	return s.assemble(recs)
}

// Generate 重新生成用户的景点推荐：同一事务内整体替换旧结果
func (s *RecommendationService) Generate(userID int64) error {
	behaviorCount, err := s.behaviorRepo.CountByUser(userID)
	if err != nil {
		return err
	}

	var recs []*model.Recommendation
	if behaviorCount > 0 {
		recs = s.buildFromCF(userID)
	}
	if len(recs) == 0 {
		recs, err = s.buildByPopularity(userID)
		if err != nil {
			return err
		}
	}

	return s.recommendationRepo.ReplaceForUser(userID, model.TargetAttraction, recs)
}

// buildFromCF 协同过滤路径。出错或结果为空都返回 nil，让上层走兜底
func (s *RecommendationService) buildFromCF(userID int64) []*model.Recommendation {
	items, err := s.cf.Recommend(userID, s.cfg.Recommend.ClampLimit(0))
	if err != nil {
		log.Printf("Collaborative filtering failed for user %d: %v", userID, err)
		return nil
	}
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.TargetID
	}
	attractions, err := s.contentRepo.GetAttractionsByIDs(ids)
	if err != nil {
		log.Printf("Failed to load attractions for CF result: %v", err)
		return nil
	}

	score := s.cfg.Recommend.StartScore()
	step := s.cfg.Recommend.StepScore()

	recs := make([]*model.Recommendation, 0, len(items))
	for _, item := range items {
		// 下架/删除的景点不进推荐
		attraction, ok := attractions[item.TargetID]
		if !ok || attraction.Status != 1 {
			continue
		}
		recs = append(recs, &model.Recommendation{
			UserID:     userID,
			TargetType: string(model.TargetAttraction),
			TargetID:   item.TargetID,
			Score:      score,
			Reason:     ReasonSimilarUsers,
			Status:     model.RecommendationActive,
		})
		score -= step
	}
	return recs
}

// buildByPopularity 兜底路径：按加权热度取上架景点，确定性排序(无抖动)
func (s *RecommendationService) buildByPopularity(userID int64) ([]*model.Recommendation, error) {
	w := s.cfg.Recommend.HotWeightFor(string(model.TargetAttraction))
	attractions, err := s.contentRepo.ListTopAttractions(w.View, w.Like, w.Collect, s.cfg.Recommend.ClampLimit(0))
	if err != nil {
		return nil, err
	}

	score := s.cfg.Recommend.StartScore()
	step := s.cfg.Recommend.StepScore()

	recs := make([]*model.Recommendation, 0, len(attractions))
	for _, attraction := range attractions {
		recs = append(recs, &model.Recommendation{
			UserID:     userID,
			TargetType: string(model.TargetAttraction),
			TargetID:   attraction.ID,
			Score:      score,
			Reason:     ReasonPreference,
			Status:     model.RecommendationActive,
		})
		score -= step
	}
	return recs, nil
}

// assemble 把推荐行装配成返回条目，过滤掉已下架的景点
func (s *RecommendationService) assemble(recs []*model.Recommendation) ([]*dto.RecommendItem, error) {
	ids := make([]int64, len(recs))
	for i, rec := range recs {
		ids[i] = rec.TargetID
	}
	attractions, err := s.contentRepo.GetAttractionsByIDs(ids)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.RecommendItem, 0, len(recs))
	for _, rec := range recs {
		attraction, ok := attractions[rec.TargetID]
		if !ok || attraction.Status != 1 {
			continue
		}

		description := attraction.Description
		if runes := []rune(description); len(runes) > 100 {
			description = string(runes[:100])
		}

		items = append(items, &dto.RecommendItem{
			ID:              attraction.ID,
			Type:            string(model.TargetAttraction),
			Title:           attraction.Name,
			CoverImage:      attraction.CoverImage,
			Description:     description,
			ViewCount:       attraction.ViewCount,
			LikeCount:       attraction.LikeCount,
			CollectionCount: attraction.CollectionCount,
			Score:           rec.Score,
		})
	}
	return items, nil
}
