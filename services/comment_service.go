package services

//go:generate mockgen -source=comment_service.go -destination=mocks/comment_service.go -package=mocks

import (
	"context"
	"log/slog"

	"nc-news/events"
	"nc-news/models"
	"nc-news/repositories"

	"golang.org/x/sync/errgroup"
)

type CommentService interface {
	GetCommentsByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	CreateComment(ctx context.Context, articleID int, req models.CreateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int) error
}

// AuthorResolver turns a requested username into the username a comment is stored under.
type AuthorResolver interface {
	ResolveAuthor(ctx context.Context, username string) (string, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	authors     AuthorResolver
	publisher   events.Publisher
	logger      *slog.Logger
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	authors AuthorResolver,
	publisher events.Publisher,
	logger *slog.Logger,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		authors:     authors,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *commentService) GetCommentsByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	var comments []models.Comment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.commentRepo.GetByArticleID(gctx, articleID)
		return err
	})
	g.Go(func() error {
		return s.articleRepo.Exists(gctx, articleID)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *commentService) CreateComment(ctx context.Context, articleID int, req models.CreateCommentRequest) (*models.Comment, error) {
	if req.Username == "" || req.Body == "" {
		return nil, models.NewBadRequest()
	}

	if err := s.articleRepo.Exists(ctx, articleID); err != nil {
		return nil, err
	}

	author, err := s.authors.ResolveAuthor(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      req.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.publish(ctx, events.ActionCommentCreated, comment)

	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id int) error {
	deleted, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, events.ActionCommentDeleted, deleted)

	return nil
}

// publish is best effort: the write already happened, so a broker failure is only logged.
// The event outlives the request, so a client disconnect does not cancel it.
func (s *commentService) publish(ctx context.Context, action string, comment *models.Comment) {
	if err := s.publisher.PublishComment(context.WithoutCancel(ctx), action, comment); err != nil {
		s.logger.Warn("failed to publish comment event",
			"action", action,
			"comment_id", comment.CommentID,
			"error", err,
		)
	}
}
