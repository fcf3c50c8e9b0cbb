package service

import (
	"math"
	"sort"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/model"
	"github.com/Zhangyi-cn/toursim/internal/repository"
)

// ScoredItem 协同过滤产出的候选景点
type ScoredItem struct {
	TargetID int64
	Score    float64
}

// CollaborativeFilter 基于用户的协同过滤：
// 用行为日志构建 用户×景点 权重矩阵，余弦相似度找相近用户，
// 相似度加权累加对方的交互权重得到候选分
type CollaborativeFilter struct {
	behaviorRepo *repository.BehaviorRepository
	cfg          *config.Config
}

func NewCollaborativeFilter(behaviorRepo *repository.BehaviorRepository, cfg *config.Config) *CollaborativeFilter {
	return &CollaborativeFilter{
		behaviorRepo: behaviorRepo,
		cfg:          cfg,
	}
}

// buildMatrix 构建 用户->景点->权重 矩阵。
// 同一格子被多种行为命中时权重累加
func (cf *CollaborativeFilter) buildMatrix() (map[int64]map[int64]float64, error) {
	behaviors, err := cf.behaviorRepo.ListByTargetType(model.TargetAttraction)
	if err != nil {
		return nil, err
	}

	matrix := make(map[int64]map[int64]float64)
	for _, b := range behaviors {
		row, ok := matrix[b.UserID]
		if !ok {
			row = make(map[int64]float64)
			matrix[b.UserID] = row
		}
		row[b.TargetID] += cf.cfg.Recommend.BehaviorWeightFor(b.BehaviorType)
	}
	return matrix, nil
}

// Recommend 为用户生成候选景点。
// 用户不在矩阵里(无景点行为)时返回空，交由上层走兜底路径
func (cf *CollaborativeFilter) Recommend(userID int64, limit int) ([]ScoredItem, error) {
	matrix, err := cf.buildMatrix()
	if err != nil {
		return nil, err
	}

	userRow, ok := matrix[userID]
	if !ok {
		return nil, nil
	}

	scores := make(map[int64]float64)
	for otherID, otherRow := range matrix {
		if otherID == userID {
			continue
		}
		sim := cosine(userRow, otherRow)
		if sim <= 0 {
			continue
		}
		for itemID, weight := range otherRow {
			// 已交互过的不再推荐
			if _, seen := userRow[itemID]; seen {
				continue
			}
			scores[itemID] += sim * weight
		}
	}

	items := make([]ScoredItem, 0, len(scores))
	for itemID, score := range scores {
		if score > 0 {
			items = append(items, ScoredItem{TargetID: itemID, Score: score})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].TargetID < items[j].TargetID
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// cosine 稀疏向量余弦相似度
func cosine(a, b map[int64]float64) float64 {
	var dot float64
	for k, av := range a {
		if bv, ok := b[k]; ok {
			dot += av * bv
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (norm(a) * norm(b))
}

func norm(v map[int64]float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
