package models

import "time"

type Comment struct {
	CommentID int       `json:"comment_id" gorm:"column:comment_id;primarykey"`
	ArticleID int       `json:"article_id" gorm:"not null"`
	Author    string    `json:"author" gorm:"not null"`
	Body      string    `json:"body" gorm:"not null"`
	Votes     int       `json:"votes" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
