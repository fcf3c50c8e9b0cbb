package dto

// ToggleRequest 切换点赞/收藏状态
type ToggleRequest struct {
	TargetID   int64  `json:"target_id" binding:"required"`
	TargetType string `json:"target_type" binding:"required"`
}

// LikeToggleResponse 点赞切换结果
type LikeToggleResponse struct {
	IsLiked bool  `json:"is_liked"`
	Count   int64 `json:"count"`
}

// CollectionToggleResponse 收藏切换结果
type CollectionToggleResponse struct {
	IsCollected bool  `json:"is_collected"`
	Count       int64 `json:"count"`
}

// BatchStatusRequest 批量查询互动状态(同一目标类型下的一批ID)
type BatchStatusRequest struct {
	TargetType string  `json:"target_type" binding:"required"`
	TargetIDs  []int64 `json:"target_ids" binding:"required"`
}

// BatchStatusResponse 批量互动状态，target_id -> 是否已点赞/收藏
type BatchStatusResponse struct {
	Status map[int64]bool `json:"status"`
}
