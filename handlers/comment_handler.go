package handlers

import (
	"net/http"

	"nc-news/helper"
	"nc-news/models"
	"nc-news/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) GetCommentsByArticle(c *gin.Context) {
	articleID, err := parseID(c, "article_id")
	if err != nil {
		h.Helper.SendBadRequest(c)
		return
	}

	comments, err := h.commentService.GetCommentsByArticle(c.Request.Context(), articleID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "comments", comments)
}

// CreateComment ignores any body field other than username and body.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, err := parseID(c, "article_id")
	if err != nil {
		h.Helper.SendBadRequest(c)
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), articleID, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, "comment", comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := parseID(c, "comment_id")
	if err != nil {
		h.Helper.SendBadRequest(c)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
