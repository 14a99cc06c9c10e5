package model

// Specialization is a catalog entry referenced by name from doctor profiles.
// There is deliberately no foreign key from User.Specialization to this table.
type Specialization struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"size:1024;not null"`
}
