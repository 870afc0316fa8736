package models

// ArticleSort is the closed set of columns articles can be ordered by.
type ArticleSort int

const (
	SortByCreatedAt ArticleSort = iota
	SortByAuthor
	SortByTitle
	SortByArticleID
	SortByTopic
	SortByVotes
	SortByArticleImgURL
	SortByCommentCount
)

var articleSortNames = map[string]ArticleSort{
	"created_at":      SortByCreatedAt,
	"author":          SortByAuthor,
	"title":           SortByTitle,
	"article_id":      SortByArticleID,
	"topic":           SortByTopic,
	"votes":           SortByVotes,
	"article_img_url": SortByArticleImgURL,
	"comment_count":   SortByCommentCount,
}

// column identifiers are fixed here and never derived from request input
var articleSortColumns = map[ArticleSort]string{
	SortByCreatedAt:     "articles.created_at",
	SortByAuthor:        "articles.author",
	SortByTitle:         "articles.title",
	SortByArticleID:     "articles.article_id",
	SortByTopic:         "articles.topic",
	SortByVotes:         "articles.votes",
	SortByArticleImgURL: "articles.article_img_url",
	SortByCommentCount:  "comment_count",
}

// ParseArticleSort maps a sort_by value to its column. An empty value selects created_at.
func ParseArticleSort(s string) (ArticleSort, error) {
	if s == "" {
		return SortByCreatedAt, nil
	}
	sort, ok := articleSortNames[s]
	if !ok {
		return 0, NewBadRequest()
	}
	return sort, nil
}

// Column returns the SQL identifier to order by.
func (s ArticleSort) Column() string {
	if col, ok := articleSortColumns[s]; ok {
		return col
	}
	return articleSortColumns[SortByCreatedAt]
}

type SortOrder int

const (
	OrderDesc SortOrder = iota
	OrderAsc
)

// ParseSortOrder accepts asc/ASC/desc/DESC. An empty value selects descending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", "desc", "DESC":
		return OrderDesc, nil
	case "asc", "ASC":
		return OrderAsc, nil
	default:
		return 0, NewBadRequest()
	}
}

func (o SortOrder) Desc() bool {
	return o != OrderAsc
}

// ParseArticleListParams validates raw list parameters into an ArticleQuery.
func ParseArticleListParams(p ArticleListParams) (ArticleQuery, error) {
	sort, err := ParseArticleSort(p.SortBy)
	if err != nil {
		return ArticleQuery{}, err
	}
	order, err := ParseSortOrder(p.Order)
	if err != nil {
		return ArticleQuery{}, err
	}
	return ArticleQuery{Topic: p.Topic, Sort: sort, Order: order}, nil
}
