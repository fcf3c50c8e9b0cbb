package dto

// AttractionDetail 景点详情
type AttractionDetail struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	CoverImage      string `json:"cover_image"`
	Description     string `json:"description"`
	Address         string `json:"address"`
	ViewCount       int64  `json:"view_count"`
	LikeCount       int64  `json:"like_count"`
	CollectionCount int64  `json:"collection_count"`
	CommentCount    int64  `json:"comment_count"`
	IsLiked         bool   `json:"is_liked"`
	IsCollected     bool   `json:"is_collected"`
	CreatedAt       string `json:"created_at"`
}
