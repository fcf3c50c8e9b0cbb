package dto

// RecordBehaviorRequest 上报用户行为
type RecordBehaviorRequest struct {
	BehaviorType int    `json:"behavior_type" binding:"required"`
	TargetType   string `json:"target_type" binding:"required"`
	TargetID     int64  `json:"target_id" binding:"required"`
	Duration     int    `json:"duration"`
}
