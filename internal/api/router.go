package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Zhangyi-cn/toursim/config"
	"github.com/Zhangyi-cn/toursim/internal/api/handler"
	"github.com/Zhangyi-cn/toursim/internal/api/middleware"
)

type Router struct {
	interactionHandler    *handler.InteractionHandler
	behaviorHandler       *handler.BehaviorHandler
	recommendationHandler *handler.RecommendationHandler
	commentHandler        *handler.CommentHandler
	attractionHandler     *handler.AttractionHandler
	cfg                   *config.Config
}

func NewRouter(
	interactionHandler *handler.InteractionHandler,
	behaviorHandler *handler.BehaviorHandler,
	recommendationHandler *handler.RecommendationHandler,
	commentHandler *handler.CommentHandler,
	attractionHandler *handler.AttractionHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		interactionHandler:    interactionHandler,
		behaviorHandler:       behaviorHandler,
		recommendationHandler: recommendationHandler,
		commentHandler:        commentHandler,
		attractionHandler:     attractionHandler,
		cfg:                   cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// 公开接口 - 推荐榜单
		recommend := api.Group("/recommendations")
		{
			recommend.GET("/hot", r.recommendationHandler.Hot)
			recommend.GET("/today", r.recommendationHandler.Today)
		}

		// 公开接口 - 景点详情（可选认证，登录后标记点赞/收藏状态并记浏览行为）
		attractions := api.Group("/attractions")
		attractions.Use(middleware.OptionalAuth(r.cfg.JWT.Secret))
		{
			attractions.GET("/:id", r.attractionHandler.Get)
		}

		// 评论 - 公开读取（可选认证）
		commentsPublic := api.Group("/comments")
		commentsPublic.Use(middleware.OptionalAuth(r.cfg.JWT.Secret))
		{
			commentsPublic.GET("", r.commentHandler.List)
		}

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			// 个性化推荐
			authenticated.GET("/recommendations", r.recommendationHandler.Get)

			// 点赞/收藏
			interactions := authenticated.Group("/interactions")
			{
				interactions.POST("/likes", r.interactionHandler.ToggleLike)
				interactions.POST("/likes/status", r.interactionHandler.LikeStatus)
				interactions.POST("/collections", r.interactionHandler.ToggleCollection)
				interactions.POST("/collections/status", r.interactionHandler.CollectionStatus)
			}

			// 我的点赞/收藏
			user := authenticated.Group("/user")
			{
				user.GET("/likes", r.interactionHandler.MyLikes)
				user.GET("/collections", r.interactionHandler.MyCollections)
			}

			// 行为上报
			authenticated.POST("/behaviors", r.behaviorHandler.Record)

			// 评论
			authenticated.POST("/comments", r.commentHandler.Create)
			authenticated.DELETE("/comments/:id", r.commentHandler.Delete)
		}
	}

	return engine
}
