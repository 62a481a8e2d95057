package models

import (
	"time"
)

type Recipe struct {
	ID          uint               `json:"id" gorm:"primarykey"`
	AuthorID    uint               `json:"author_id" gorm:"not null;index"`
	Author      User               `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Name        string             `json:"name" gorm:"size:200;not null"`
	Text        string             `json:"text" gorm:"type:text;not null"`
	Image       string             `json:"image" gorm:"not null"`
	CookingTime int                `json:"cooking_time" gorm:"not null;check:chk_recipe_cooking_time_positive,cooking_time >= 1"`
	Tags        []Tag              `json:"tags" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []IngredientAmount `json:"ingredients" gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
