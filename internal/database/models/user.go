package models

// User is a caller identity. Identities are issued by an external auth provider;
// this service only reads them to resolve bearer tokens and display names.
type User struct {
	BaseModel
	Name     string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email    string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Company  string     `json:"company,omitempty" gorm:"size:200"`
	Role     GlobalRole `json:"role" gorm:"type:varchar(20);not null;default:'client'" validate:"required"`
	IsActive bool       `json:"isActive" gorm:"not null"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
