package model

// Category is reference data: products point at it, it knows nothing about
// products. Deleting a category with dependents is refused at service level.
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required,max=100"`
	Description string `gorm:"type:varchar(500)" json:"description" validate:"max=500"`
}
