package main

import (
	"fmt"
	"log"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/api"
	"github.com/Zhangyi-cn/toursim/internal/api/handler"
	"github.com/Zhangyi-cn/toursim/internal/database"
	"github.com/Zhangyi-cn/toursim/internal/pkg/cache"
	"github.com/Zhangyi-cn/toursim/internal/repository"
	"github.com/Zhangyi-cn/toursim/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	redisCache := cache.New(rdb)

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	contentRepo := repository.NewContentRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	behaviorRepo := repository.NewBehaviorRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// 初始化 Service
	interactionService := service.NewInteractionService(interactionRepo, contentRepo, cfg)
	behaviorService := service.NewBehaviorService(behaviorRepo, cfg)
	hotService := service.NewHotService(contentRepo, redisCache, cfg, nil)
	cf := service.NewCollaborativeFilter(behaviorRepo, cfg)
	recommendationService := service.NewRecommendationService(recommendationRepo, behaviorRepo, contentRepo, cf, cfg)
	commentService := service.NewCommentService(commentRepo, contentRepo, userRepo, interactionService, cfg)
	attractionService := service.NewAttractionService(contentRepo, behaviorService, interactionService, cfg)

	// 初始化 Handler
	interactionHandler := handler.NewInteractionHandler(interactionService)
	behaviorHandler := handler.NewBehaviorHandler(behaviorService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, hotService)
	commentHandler := handler.NewCommentHandler(commentService)
	attractionHandler := handler.NewAttractionHandler(attractionService)

	// 初始化 Router
	router := api.NewRouter(
		interactionHandler,
		behaviorHandler,
		recommendationHandler,
		commentHandler,
		attractionHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
