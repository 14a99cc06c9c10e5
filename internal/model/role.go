package model

// Role is a named capability class. Roles are created by the seed binary and
// rarely change afterwards.
type Role struct {
	ID              uint     `json:"id" gorm:"primaryKey"`
	Name            string   `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Specializations []string `json:"specializations" gorm:"serializer:json"`
}
