package models

type Tag struct {
	ID    uint    `json:"id" gorm:"primarykey"`
	Name  string  `json:"name" gorm:"size:200;uniqueIndex;not null"`
	Color *string `json:"color" gorm:"size:7;uniqueIndex"`
	Slug  *string `json:"slug" gorm:"size:200;uniqueIndex"`
}
