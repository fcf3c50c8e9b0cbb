package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Recommend RecommendConfig `mapstructure:"recommend"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// HotWeight 热度权重(加权和的三个系数)
type HotWeight struct {
	View    float64 `mapstructure:"view"`
	Like    float64 `mapstructure:"like"`
	Collect float64 `mapstructure:"collect"`
}

// RecommendConfig 推荐/热度相关参数，全部可缺省
type RecommendConfig struct {
	DefaultLimit    int                  `mapstructure:"default_limit"`    // 推荐列表默认条数
	MaxLimit        int                  `mapstructure:"max_limit"`        // 推荐列表最大条数
	CandidatePool   int                  `mapstructure:"candidate_pool"`   // 热度排序候选页大小
	TodayLimit      int                  `mapstructure:"today_limit"`      // 今日推荐每类条数
	TodayCacheTTL   int                  `mapstructure:"today_cache_ttl"`  // 今日推荐缓存时长(秒)
	ScoreStart      float64              `mapstructure:"score_start"`      // 推荐分数起始值
	ScoreStep       float64              `mapstructure:"score_step"`       // 推荐分数递减步长
	HotWeights      map[string]HotWeight `mapstructure:"hot_weights"`      // 按目标类型的热度权重
	BehaviorWeights map[string]float64   `mapstructure:"behavior_weights"` // 协同过滤行为权重(键为行为类型编码)
}

// 缺省热度权重
var defaultHotWeights = map[string]HotWeight{
	"attraction": {View: 0.4, Like: 0.3, Collect: 0.3},
	"guide":      {View: 0.6, Like: 0.4, Collect: 0},
	"note":       {View: 0.4, Like: 0.3, Collect: 0.3},
}

// 缺省协同过滤行为权重(1浏览,2收藏,3点赞,4评论，沿用旧系统编码)
var defaultBehaviorWeights = map[int]float64{
	1: 1.0,
	2: 2.0,
	3: 3.0,
	4: 2.0,
}

// HotWeightFor 取某目标类型的热度权重，未配置时用缺省值
func (c RecommendConfig) HotWeightFor(targetType string) HotWeight {
	if w, ok := c.HotWeights[targetType]; ok {
		return w
	}
	return defaultHotWeights[targetType]
}

// BehaviorWeightFor 取某行为类型的协同过滤权重，未配置时用缺省值，未知行为按 1.0
func (c RecommendConfig) BehaviorWeightFor(behaviorType int) float64 {
	if c.BehaviorWeights != nil {
		if w, ok := c.BehaviorWeights[strconv.Itoa(behaviorType)]; ok {
			return w
		}
	}
	if w, ok := defaultBehaviorWeights[behaviorType]; ok {
		return w
	}
	return 1.0
}

// ClampLimit 归一化请求条数
func (c RecommendConfig) ClampLimit(limit int) int {
	def := c.DefaultLimit
	if def <= 0 {
		def = 10
	}
	max := c.MaxLimit
	if max <= 0 {
		max = 50
	}
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// CandidatePoolSize 热度排序候选页大小
func (c RecommendConfig) CandidatePoolSize() int {
	if c.CandidatePool > 0 {
		return c.CandidatePool
	}
	return 200
}

// TodayPickLimit 今日推荐每类条数
func (c RecommendConfig) TodayPickLimit() int {
	if c.TodayLimit > 0 {
		return c.TodayLimit
	}
	return 5
}

// TodayCacheSeconds 今日推荐缓存时长(秒)
func (c RecommendConfig) TodayCacheSeconds() int {
	if c.TodayCacheTTL > 0 {
		return c.TodayCacheTTL
	}
	return 300
}

// StartScore 推荐分数起始值
func (c RecommendConfig) StartScore() float64 {
	if c.ScoreStart > 0 {
		return c.ScoreStart
	}
	return 5.0
}

// StepScore 推荐分数递减步长
func (c RecommendConfig) StepScore() float64 {
	if c.ScoreStep > 0 {
		return c.ScoreStep
	}
	return 0.3
}

func Load(configPath string) (*Config, error) {
	// 优先尝试读取 config.local.yaml（包含真实密钥，不提交到git）
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	// 检查 config.local.yaml 是否存在
	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// 环境变量覆盖
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
