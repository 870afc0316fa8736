package models

// ArticleListParams are the raw query parameters of GET /api/articles.
type ArticleListParams struct {
	Topic  string `form:"topic"`
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
}

// ArticleQuery is the validated form of ArticleListParams.
type ArticleQuery struct {
	Topic string
	Sort  ArticleSort
	Order SortOrder
}

type UpdateArticleVotesRequest struct {
	IncVotes *int `json:"inc_votes" binding:"required"`
}

type CreateCommentRequest struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}
