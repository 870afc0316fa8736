package repositories

//go:generate mockgen -source=comment_repository.go -destination=mocks/comment_repository.go -package=mocks

import (
	"context"

	"nc-news/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	GetByArticleID(ctx context.Context, articleID int) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int) (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) GetByArticleID(ctx context.Context, articleID int) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}

// Create inserts a comment with zero votes and a database-generated timestamp,
// filling the comment with the stored row.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (article_id, author, body, votes, created_at)
		VALUES (?, ?, ?, 0, NOW())
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	return r.db.WithContext(ctx).
		Raw(query, comment.ArticleID, comment.Author, comment.Body).
		Scan(comment).Error
}

// Delete removes a comment and returns the removed row. Zero rows affected is ErrorNotFound.
func (r *commentRepository) Delete(ctx context.Context, id int) (*models.Comment, error) {
	var deleted []models.Comment
	err := r.db.WithContext(ctx).
		Raw("DELETE FROM comments WHERE comment_id = ? RETURNING *", id).
		Scan(&deleted).Error
	if err != nil {
		return nil, err
	}
	if len(deleted) == 0 {
		return nil, models.NewNotFound()
	}
	return &deleted[0], nil
}
