package models

const (
	AnonymousName      = "Anonymous"
	AnonymousAvatarURL = "https://www.cats.org.uk/media/13136/220325case013.jpg?width=500&height=333.49609375"
)

type User struct {
	Username  string `json:"username" gorm:"primarykey"`
	Name      string `json:"name" gorm:"not null"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url"`
}

func (User) TableName() string {
	return "users"
}
