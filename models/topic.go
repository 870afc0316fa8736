package models

type Topic struct {
	Slug        string `json:"slug" gorm:"primarykey"`
	Description string `json:"description"`
}

func (Topic) TableName() string {
	return "topics"
}
