package handlers

import (
	"log/slog"

	"nc-news/helper"
	"nc-news/middleware"
	"nc-news/services"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Articles services.ArticleService
	Comments services.CommentService
	Topics   services.TopicService
	Users    services.UserService
}

type RouterConfig struct {
	AllowOrigins []string
}

// NewRouter wires every endpoint of the API. Unmatched routes answer 404 {"msg": "Not Found"}.
func NewRouter(svc Services, cfg RouterConfig, logger *slog.Logger) *gin.Engine {
	h := helper.NewHTTPHelper(logger)

	articleHandler := NewArticleHandler(svc.Articles, h)
	commentHandler := NewCommentHandler(svc.Comments, h)
	topicHandler := NewTopicHandler(svc.Topics, h)
	userHandler := NewUserHandler(svc.Users, h)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(h),
		middleware.CORS(cfg.AllowOrigins),
	)

	router.GET("/health", HealthCheck)

	api := router.Group("/api")
	{
		api.GET("", GetEndpoints)
		api.GET("/topics", topicHandler.GetTopics)
		api.GET("/users", userHandler.GetUsers)

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/:article_id", articleHandler.GetArticle)
			articles.PATCH("/:article_id", articleHandler.UpdateArticleVotes)
			articles.GET("/:article_id/comments", commentHandler.GetCommentsByArticle)
			articles.POST("/:article_id/comments", commentHandler.CreateComment)
		}

		api.DELETE("/comments/:comment_id", commentHandler.DeleteComment)
	}

	router.NoRoute(func(c *gin.Context) {
		h.SendNotFoundError(c)
	})

	return router
}
