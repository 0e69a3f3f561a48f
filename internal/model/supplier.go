package model

// Supplier is reference data for where products are sourced from.
type Supplier struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	ContactName string `gorm:"type:varchar(255)" json:"contactName"`
	Phone       string `gorm:"type:varchar(30)" json:"phone"`
	Email       string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Address     string `gorm:"type:text" json:"address"`
}
