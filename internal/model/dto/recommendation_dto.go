package dto

// RecommendItem 个性化推荐条目
type RecommendItem struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type"`
	Title           string  `json:"title"`
	CoverImage      string  `json:"cover_image"`
	Description     string  `json:"description,omitempty"`
	ViewCount       int64   `json:"view_count"`
	LikeCount       int64   `json:"like_count"`
	CollectionCount int64   `json:"collection_count"`
	Score           float64 `json:"score"`
}

// HotItem 热门榜单条目
type HotItem struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	CoverImage      string `json:"cover_image"`
	ViewCount       int64  `json:"view_count"`
	LikeCount       int64  `json:"like_count"`
	CollectionCount int64  `json:"collection_count"`
	CreatedAt       string `json:"created_at"`
}

// HotListResponse 热门榜单，按类型分组
type HotListResponse struct {
	Attractions []*HotItem `json:"attractions,omitempty"`
	Guides      []*HotItem `json:"guides,omitempty"`
	Notes       []*HotItem `json:"notes,omitempty"`
}

// TodayResponse 今日推荐(同热榜口径，带缓存)
type TodayResponse struct {
	Attractions []*HotItem `json:"attractions"`
	Guides      []*HotItem `json:"guides"`
	Notes       []*HotItem `json:"notes"`
}
