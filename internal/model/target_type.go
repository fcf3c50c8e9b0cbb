package model

// TargetType 互动目标类型
type TargetType string

const (
	TargetAttraction TargetType = "attraction"
	TargetGuide      TargetType = "guide"
	TargetNote       TargetType = "note"
	TargetComment    TargetType = "comment"
)

// targetMeta 目标类型元信息：实体表、旧版数字编码、标题列、支持的计数列
// 所有按类型分派的逻辑统一走这张表，避免到处写 if/switch
type targetMeta struct {
	Code         int    // 旧版数字编码(1景点,2攻略,3游记,4评论)
	Table        string // 实体表名
	TitleColumn  string // 标题列(景点用 name，其余用 title)
	Collectable  bool   // 是否支持收藏
	Commentable  bool   // 是否支持评论
	HasViewCount bool   // 是否有浏览数列
}

var targetMetas = map[TargetType]targetMeta{
	TargetAttraction: {Code: 1, Table: "attractions", TitleColumn: "name", Collectable: true, Commentable: true, HasViewCount: true},
	TargetGuide:      {Code: 2, Table: "travel_guides", TitleColumn: "title", Collectable: true, Commentable: true, HasViewCount: true},
	TargetNote:       {Code: 3, Table: "travel_notes", TitleColumn: "title", Collectable: true, Commentable: true, HasViewCount: true},
	TargetComment:    {Code: 4, Table: "comments", TitleColumn: "content", Collectable: false, Commentable: false, HasViewCount: false},
}

// ParseTargetType 解析目标类型字符串
func ParseTargetType(s string) (TargetType, bool) {
	t := TargetType(s)
	_, ok := targetMetas[t]
	return t, ok
}

// TargetTypeFromCode 根据旧版数字编码解析目标类型
func TargetTypeFromCode(code int) (TargetType, bool) {
	for t, meta := range targetMetas {
		if meta.Code == code {
			return t, true
		}
	}
	return "", false
}

// Valid 目标类型是否合法
func (t TargetType) Valid() bool {
	_, ok := targetMetas[t]
	return ok
}

// Code 旧版数字编码
func (t TargetType) Code() int {
	return targetMetas[t].Code
}

// Table 实体表名
func (t TargetType) Table() string {
	return targetMetas[t].Table
}

// TitleColumn 标题列名
func (t TargetType) TitleColumn() string {
	return targetMetas[t].TitleColumn
}

// Collectable 是否支持收藏
func (t TargetType) Collectable() bool {
	return targetMetas[t].Collectable
}

// Commentable 是否支持评论
func (t TargetType) Commentable() bool {
	return targetMetas[t].Commentable
}

// HasViewCount 是否有浏览数列
func (t TargetType) HasViewCount() bool {
	return targetMetas[t].HasViewCount
}

// InteractionKind 互动种类(点赞/收藏)
type InteractionKind string

const (
	KindLike       InteractionKind = "like"
	KindCollection InteractionKind = "collection"
)

// TableName 互动记录表名
func (k InteractionKind) TableName() string {
	if k == KindCollection {
		return "collections"
	}
	return "likes"
}

// CounterColumn 目标实体上对应的冗余计数列
func (k InteractionKind) CounterColumn() string {
	if k == KindCollection {
		return "collection_count"
	}
	return "like_count"
}

// Supports 该目标类型是否支持此互动(评论只支持点赞)
func (k InteractionKind) Supports(t TargetType) bool {
	if !t.Valid() {
		return false
	}
	if k == KindCollection {
		return t.Collectable()
	}
	return true
}
