package events

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

import (
	"context"
	"time"

	"nc-news/models"
)

const (
	ActionCommentCreated = "comment.created"
	ActionCommentDeleted = "comment.deleted"
)

// Publisher announces comment lifecycle changes to downstream consumers.
type Publisher interface {
	PublishComment(ctx context.Context, action string, comment *models.Comment) error
	Close() error
}

type CommentMessage struct {
	Action    string         `json:"action"`
	Comment   models.Comment `json:"comment"`
	Timestamp time.Time      `json:"timestamp"`
}

// Noop discards every event. It is used when events are disabled.
type Noop struct{}

func (Noop) PublishComment(context.Context, string, *models.Comment) error { return nil }

func (Noop) Close() error { return nil }
