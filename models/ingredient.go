package models

type Ingredient struct {
	ID              uint   `json:"id" gorm:"primarykey"`
	Name            string `json:"name" gorm:"size:200;uniqueIndex;not null"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:200;not null"`
}

// IngredientAmount is "this many units of this ingredient". Rows are keyed on
// (ingredient_id, amount) and shared by every recipe asking for the same pair.
type IngredientAmount struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	IngredientID uint       `json:"ingredient_id" gorm:"not null;uniqueIndex:idx_ingredient_amount"`
	Ingredient   Ingredient `json:"ingredient" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Amount       int        `json:"amount" gorm:"not null;uniqueIndex:idx_ingredient_amount;check:chk_ingredient_amount_positive,amount >= 1"`
}
