package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"nc-news/events"
	eventmocks "nc-news/events/mocks"
	"nc-news/models"
	"nc-news/repositories/mocks"
)

type CommentServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	comments  *mocks.MockCommentRepository
	articles  *mocks.MockArticleRepository
	users     *mocks.MockUserRepository
	publisher *eventmocks.MockPublisher

	service CommentService
}

func (s *CommentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.comments = mocks.NewMockCommentRepository(s.ctrl)
	s.articles = mocks.NewMockArticleRepository(s.ctrl)
	s.users = mocks.NewMockUserRepository(s.ctrl)
	s.publisher = eventmocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewCommentService(s.comments, s.articles, NewUserService(s.users), s.publisher, logger)
}

func (s *CommentServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}

func (s *CommentServiceTestSuite) TestCreateComment_ExistingAuthor() {
	ctx := context.Background()
	now := time.Now()

	s.articles.EXPECT().Exists(ctx, 11).Return(nil)
	s.users.EXPECT().GetByUsername(ctx, "butter_bridge").Return(&models.User{Username: "butter_bridge"}, nil)
	s.comments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Comment) error {
			s.Equal(11, c.ArticleID)
			s.Equal("butter_bridge", c.Author)
			s.Equal("I love cats", c.Body)
			c.CommentID = 19
			c.CreatedAt = now
			return nil
		},
	)
	s.publisher.EXPECT().PublishComment(gomock.Any(), events.ActionCommentCreated, gomock.Any()).Return(nil)

	got, err := s.service.CreateComment(ctx, 11, models.CreateCommentRequest{Username: "butter_bridge", Body: "I love cats"})

	s.NoError(err)
	s.Equal(19, got.CommentID)
	s.Equal(0, got.Votes)
	s.Equal(now, got.CreatedAt)
}

func (s *CommentServiceTestSuite) TestCreateComment_UnknownAuthorGetsPlaceholder() {
	ctx := context.Background()

	s.articles.EXPECT().Exists(ctx, 11).Return(nil)
	s.users.EXPECT().GetByUsername(ctx, "new-user").Return(nil, models.NewNotFound())
	s.users.EXPECT().Create(ctx, &models.User{
		Username:  "new-user",
		Name:      models.AnonymousName,
		AvatarURL: models.AnonymousAvatarURL,
	}).Return(nil)
	s.comments.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().PublishComment(gomock.Any(), events.ActionCommentCreated, gomock.Any()).Return(nil)

	got, err := s.service.CreateComment(ctx, 11, models.CreateCommentRequest{Username: "new-user", Body: "hello"})

	s.NoError(err)
	s.Equal("new-user", got.Author)
}

func (s *CommentServiceTestSuite) TestCreateComment_MissingFieldsTouchNothing() {
	ctx := context.Background()

	for _, req := range []models.CreateCommentRequest{
		{Body: "I love cats"},
		{Username: "butter_bridge"},
		{},
	} {
		_, err := s.service.CreateComment(ctx, 11, req)
		s.Equal(models.NewBadRequest(), err)
	}
}

func (s *CommentServiceTestSuite) TestCreateComment_UnknownArticle() {
	ctx := context.Background()

	s.articles.EXPECT().Exists(ctx, 99999).Return(models.NewNotFound())

	_, err := s.service.CreateComment(ctx, 99999, models.CreateCommentRequest{Username: "butter_bridge", Body: "I love cats"})
	s.Equal(models.NewNotFound(), err)
}

func (s *CommentServiceTestSuite) TestCreateComment_PublishFailureIsNotFatal() {
	ctx := context.Background()

	s.articles.EXPECT().Exists(ctx, 1).Return(nil)
	s.users.EXPECT().GetByUsername(ctx, "lurker").Return(&models.User{Username: "lurker"}, nil)
	s.comments.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().PublishComment(gomock.Any(), events.ActionCommentCreated, gomock.Any()).Return(errors.New("broker down"))

	_, err := s.service.CreateComment(ctx, 1, models.CreateCommentRequest{Username: "lurker", Body: "hi"})
	s.NoError(err)
}

func (s *CommentServiceTestSuite) TestCreateComment_UserLookupError() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	s.articles.EXPECT().Exists(ctx, 1).Return(nil)
	s.users.EXPECT().GetByUsername(ctx, "lurker").Return(nil, dbErr)

	_, err := s.service.CreateComment(ctx, 1, models.CreateCommentRequest{Username: "lurker", Body: "hi"})
	s.ErrorIs(err, dbErr)
}

func (s *CommentServiceTestSuite) TestGetCommentsByArticle() {
	ctx := context.Background()
	want := []models.Comment{{CommentID: 2}, {CommentID: 1}}

	s.comments.EXPECT().GetByArticleID(gomock.Any(), 5).Return(want, nil)
	s.articles.EXPECT().Exists(gomock.Any(), 5).Return(nil)

	got, err := s.service.GetCommentsByArticle(ctx, 5)

	s.NoError(err)
	s.Equal(want, got)
}

func (s *CommentServiceTestSuite) TestGetCommentsByArticle_UnknownArticle() {
	ctx := context.Background()

	s.comments.EXPECT().GetByArticleID(gomock.Any(), 99999).Return([]models.Comment{}, nil).AnyTimes()
	s.articles.EXPECT().Exists(gomock.Any(), 99999).Return(models.NewNotFound())

	_, err := s.service.GetCommentsByArticle(ctx, 99999)
	s.Equal(models.NewNotFound(), err)
}

func (s *CommentServiceTestSuite) TestDeleteComment() {
	ctx := context.Background()
	deleted := &models.Comment{CommentID: 1, ArticleID: 9}

	s.comments.EXPECT().Delete(ctx, 1).Return(deleted, nil)
	s.publisher.EXPECT().PublishComment(gomock.Any(), events.ActionCommentDeleted, deleted).Return(nil)

	s.NoError(s.service.DeleteComment(ctx, 1))
}

func (s *CommentServiceTestSuite) TestDeleteComment_NotFound() {
	ctx := context.Background()

	s.comments.EXPECT().Delete(ctx, 9999).Return(nil, models.NewNotFound())

	s.Equal(models.NewNotFound(), s.service.DeleteComment(ctx, 9999))
}

func (s *CommentServiceTestSuite) TestCreateComment_EventSurvivesClientDisconnect() {
	ctx, cancel := context.WithCancel(context.Background())

	s.articles.EXPECT().Exists(gomock.Any(), 11).Return(nil)
	s.users.EXPECT().GetByUsername(gomock.Any(), "butter_bridge").Return(&models.User{Username: "butter_bridge"}, nil)
	s.comments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Comment) error {
			c.CommentID = 19
			// the client goes away once the row is committed
			cancel()
			return nil
		},
	)
	s.publisher.EXPECT().PublishComment(gomock.Any(), events.ActionCommentCreated, gomock.Any()).DoAndReturn(
		func(pctx context.Context, _ string, c *models.Comment) error {
			s.NoError(pctx.Err())
			s.Equal(19, c.CommentID)
			return nil
		},
	)

	_, err := s.service.CreateComment(ctx, 11, models.CreateCommentRequest{Username: "butter_bridge", Body: "I love cats"})
	s.NoError(err)
	s.Error(ctx.Err())
}

func (s *CommentServiceTestSuite) TestDeleteComment_EventSurvivesCancelledRequest() {
	ctx, cancel := context.WithCancel(context.Background())
	deleted := &models.Comment{CommentID: 1, ArticleID: 9}

	s.comments.EXPECT().Delete(gomock.Any(), 1).DoAndReturn(func(context.Context, int) (*models.Comment, error) {
		cancel()
		return deleted, nil
	})
	s.publisher.EXPECT().PublishComment(gomock.Any(), events.ActionCommentDeleted, deleted).DoAndReturn(
		func(pctx context.Context, _ string, _ *models.Comment) error {
			s.NoError(pctx.Err())
			return nil
		},
	)

	s.NoError(s.service.DeleteComment(ctx, 1))
}
