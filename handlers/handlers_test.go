package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"nc-news/models"
	"nc-news/services/mocks"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles *mocks.MockArticleService
	comments *mocks.MockCommentService
	topics   *mocks.MockTopicService
	users    *mocks.MockUserService

	router *gin.Engine
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.articles = mocks.NewMockArticleService(s.ctrl)
	s.comments = mocks.NewMockCommentService(s.ctrl)
	s.topics = mocks.NewMockTopicService(s.ctrl)
	s.users = mocks.NewMockUserService(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = NewRouter(Services{
		Articles: s.articles,
		Comments: s.comments,
		Topics:   s.topics,
		Users:    s.users,
	}, RouterConfig{}, logger)
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) decode(w *httptest.ResponseRecorder) map[string]json.RawMessage {
	var out map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *RouterTestSuite) assertMsg(w *httptest.ResponseRecorder, status int, msg string) {
	s.Equal(status, w.Code)
	s.JSONEq(`{"msg":"`+msg+`"}`, w.Body.String())
}

func (s *RouterTestSuite) TestGetEndpoints() {
	w := s.do(http.MethodGet, "/api", "")

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Contains(body, "GET /api/articles")
	s.Contains(body, "DELETE /api/comments/:comment_id")
}

func (s *RouterTestSuite) TestHealthCheck() {
	w := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"healthy"}`, w.Body.String())
}

func (s *RouterTestSuite) TestUnknownRoute() {
	w := s.do(http.MethodGet, "/api/not-a-route", "")

	s.assertMsg(w, http.StatusNotFound, models.MsgNotFound)
}

func (s *RouterTestSuite) TestGetTopics() {
	s.topics.EXPECT().GetTopics(gomock.Any()).
		Return([]models.Topic{{Slug: "mitch", Description: "The man, the Mitch, the legend"}}, nil)

	w := s.do(http.MethodGet, "/api/topics", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"topics":[{"slug":"mitch","description":"The man, the Mitch, the legend"}]}`, w.Body.String())
}

func (s *RouterTestSuite) TestGetUsers() {
	s.users.EXPECT().GetUsers(gomock.Any()).
		Return([]models.User{{Username: "lurker", Name: "do_nothing", AvatarURL: "https://example.com/a.png"}}, nil)

	w := s.do(http.MethodGet, "/api/users", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"users":[{"username":"lurker","name":"do_nothing","avatar_url":"https://example.com/a.png"}]}`, w.Body.String())
}

func (s *RouterTestSuite) TestGetArticles_PassesQuery() {
	s.articles.EXPECT().
		GetArticles(gomock.Any(), models.ArticleListParams{Topic: "cats", SortBy: "votes", Order: "asc"}).
		Return([]models.Article{{ArticleID: 5, Topic: "cats", CommentCount: 2}}, nil)

	w := s.do(http.MethodGet, "/api/articles?topic=cats&sort_by=votes&order=asc", "")

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Articles []models.Article `json:"articles"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Len(body.Articles, 1)
	s.Equal(2, body.Articles[0].CommentCount)
}

func (s *RouterTestSuite) TestGetArticles_Rejections() {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"invalid sort", models.NewBadRequest(), http.StatusBadRequest, models.MsgBadRequest},
		{"unknown topic", models.NewNotFound(), http.StatusNotFound, models.MsgNotFound},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, models.MsgInternalServerError},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.articles.EXPECT().GetArticles(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := s.do(http.MethodGet, "/api/articles", "")

			s.assertMsg(w, tc.status, tc.msg)
		})
	}
}

func (s *RouterTestSuite) TestGetArticle() {
	s.articles.EXPECT().GetArticle(gomock.Any(), 7).
		Return(&models.Article{ArticleID: 7, Title: "Z", Author: "icellusedkars"}, nil)

	w := s.do(http.MethodGet, "/api/articles/7", "")

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Contains(body, "article")
}

func (s *RouterTestSuite) TestGetArticle_InvalidID() {
	for _, path := range []string{"/api/articles/not-an-id", "/api/articles/99999999999", "/api/articles/1.5"} {
		w := s.do(http.MethodGet, path, "")
		s.assertMsg(w, http.StatusBadRequest, models.MsgBadRequest)
	}
}

func (s *RouterTestSuite) TestGetArticle_NotFound() {
	s.articles.EXPECT().GetArticle(gomock.Any(), 999).Return(nil, models.NewNotFound())

	w := s.do(http.MethodGet, "/api/articles/999", "")

	s.assertMsg(w, http.StatusNotFound, models.MsgNotFound)
}

func (s *RouterTestSuite) TestUpdateArticleVotes() {
	s.articles.EXPECT().UpdateArticleVotes(gomock.Any(), 1, -100).
		Return(&models.Article{ArticleID: 1, Votes: 0}, nil)

	w := s.do(http.MethodPatch, "/api/articles/1", `{"inc_votes": -100}`)

	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestUpdateArticleVotes_ZeroIsAccepted() {
	s.articles.EXPECT().UpdateArticleVotes(gomock.Any(), 1, 0).
		Return(&models.Article{ArticleID: 1, Votes: 100}, nil)

	w := s.do(http.MethodPatch, "/api/articles/1", `{"inc_votes": 0}`)

	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestUpdateArticleVotes_BadBody() {
	for _, body := range []string{`{}`, `{"inc_votes": "one"}`, `{"votes": 1}`, `not json`} {
		w := s.do(http.MethodPatch, "/api/articles/1", body)
		s.assertMsg(w, http.StatusBadRequest, models.MsgBadRequest)
	}
}

func (s *RouterTestSuite) TestGetCommentsByArticle() {
	s.comments.EXPECT().GetCommentsByArticle(gomock.Any(), 3).
		Return([]models.Comment{{CommentID: 11, ArticleID: 3}, {CommentID: 10, ArticleID: 3}}, nil)

	w := s.do(http.MethodGet, "/api/articles/3/comments", "")

	s.Equal(http.StatusOK, w.Code)
	var body struct {
		Comments []models.Comment `json:"comments"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Len(body.Comments, 2)
}

func (s *RouterTestSuite) TestGetCommentsByArticle_Empty() {
	s.comments.EXPECT().GetCommentsByArticle(gomock.Any(), 2).Return([]models.Comment{}, nil)

	w := s.do(http.MethodGet, "/api/articles/2/comments", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"comments":[]}`, w.Body.String())
}

func (s *RouterTestSuite) TestCreateComment() {
	req := models.CreateCommentRequest{Username: "newcomer", Body: "hello"}
	s.comments.EXPECT().CreateComment(gomock.Any(), 11, req).
		Return(&models.Comment{CommentID: 19, ArticleID: 11, Author: "newcomer", Body: "hello"}, nil)

	w := s.do(http.MethodPost, "/api/articles/11/comments", `{"username":"newcomer","body":"hello","votes":50}`)

	s.Equal(http.StatusCreated, w.Code)
	body := s.decode(w)
	s.Contains(body, "comment")
}

func (s *RouterTestSuite) TestCreateComment_MissingFields() {
	for _, body := range []string{`{}`, `{"username":"butter_bridge"}`, `{"body":"hi"}`, `{"username":"","body":"hi"}`} {
		w := s.do(http.MethodPost, "/api/articles/1/comments", body)
		s.assertMsg(w, http.StatusBadRequest, models.MsgBadRequest)
	}
}

func (s *RouterTestSuite) TestCreateComment_ArticleNotFound() {
	s.comments.EXPECT().CreateComment(gomock.Any(), 999, gomock.Any()).Return(nil, models.NewNotFound())

	w := s.do(http.MethodPost, "/api/articles/999/comments", `{"username":"butter_bridge","body":"hi"}`)

	s.assertMsg(w, http.StatusNotFound, models.MsgNotFound)
}

func (s *RouterTestSuite) TestDeleteComment() {
	s.comments.EXPECT().DeleteComment(gomock.Any(), 1).Return(nil)

	w := s.do(http.MethodDelete, "/api/comments/1", "")

	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())
}

func (s *RouterTestSuite) TestDeleteComment_Rejections() {
	s.comments.EXPECT().DeleteComment(gomock.Any(), 999).Return(models.NewNotFound())

	w := s.do(http.MethodDelete, "/api/comments/999", "")
	s.assertMsg(w, http.StatusNotFound, models.MsgNotFound)

	w = s.do(http.MethodDelete, "/api/comments/abc", "")
	s.assertMsg(w, http.StatusBadRequest, models.MsgBadRequest)
}

func (s *RouterTestSuite) TestPanicIsRecovered() {
	s.topics.EXPECT().GetTopics(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Topic, error) {
		panic("boom")
	})

	w := s.do(http.MethodGet, "/api/topics", "")

	s.assertMsg(w, http.StatusInternalServerError, models.MsgInternalServerError)
}

func (s *RouterTestSuite) TestRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal("abc-123", w.Header().Get("X-Request-ID"))
}
