package handlers

import (
	"net/http"

	"nc-news/helper"
	"nc-news/models"
	"nc-news/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	articles, err := h.articleService.GetArticles(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "articles", articles)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := parseID(c, "article_id")
	if err != nil {
		h.Helper.SendBadRequest(c)
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "article", article)
}

func (h *ArticleHandler) UpdateArticleVotes(c *gin.Context) {
	id, err := parseID(c, "article_id")
	if err != nil {
		h.Helper.SendBadRequest(c)
		return
	}

	var req models.UpdateArticleVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	article, err := h.articleService.UpdateArticleVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "article", article)
}
