package dto

// CreateCommentRequest 发表评论
type CreateCommentRequest struct {
	TargetType string `json:"target_type" binding:"required"`
	TargetID   int64  `json:"target_id" binding:"required"`
	ParentID   *int64 `json:"parent_id"`
	Content    string `json:"content" binding:"required"`
}

// CommentUser 评论作者信息
type CommentUser struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// CommentItem 评论条目
type CommentItem struct {
	ID        int64          `json:"id"`
	ParentID  *int64         `json:"parent_id,omitempty"`
	Content   string         `json:"content"`
	LikeCount int64          `json:"like_count"`
	IsLiked   bool           `json:"is_liked"`
	User      *CommentUser   `json:"user,omitempty"`
	CreatedAt string         `json:"created_at"`
	Replies   []*CommentItem `json:"replies,omitempty"`
}
