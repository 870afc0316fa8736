package models

import "time"

type Article struct {
	ArticleID     int       `json:"article_id" gorm:"column:article_id;primarykey"`
	Title         string    `json:"title" gorm:"not null"`
	Topic         string    `json:"topic" gorm:"not null"`
	Author        string    `json:"author" gorm:"not null"`
	Body          string    `json:"body" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes" gorm:"default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"column:article_img_url"`
	CommentCount  int       `json:"comment_count" gorm:"column:comment_count;->"`
}

func (Article) TableName() string {
	return "articles"
}
