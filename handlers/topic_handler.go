package handlers

import (
	"net/http"

	"nc-news/helper"
	"nc-news/services"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topicService services.TopicService
	Helper       *helper.HTTPHelper
}

func NewTopicHandler(topicService services.TopicService, h *helper.HTTPHelper) *TopicHandler {
	return &TopicHandler{topicService: topicService, Helper: h}
}

func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.topicService.GetTopics(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, "topics", topics)
}
