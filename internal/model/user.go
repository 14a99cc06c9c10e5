package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRoleName is assigned to every user at registration.
const DefaultRoleName = "user"

// DoctorRoleName marks users that appear in the doctor directory.
const DoctorRoleName = "doctor"

// AdminRoleName gates user management and catalog mutations.
const AdminRoleName = "admin"

// User represents a registered person: a patient by default, a doctor or an
// admin once an authorized actor assigns the role.
type User struct {
	ID             string    `json:"id" gorm:"type:char(36);primaryKey"`
	FirstName      string    `json:"first_name" gorm:"size:255;not null"`
	LastName       string    `json:"last_name" gorm:"size:255;not null"`
	PESEL          string    `json:"pesel" gorm:"column:pesel;uniqueIndex;size:11;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Phone          string    `json:"phone_number" gorm:"size:32;not null"`
	RoleID         *uint     `json:"-" gorm:"index"`
	Role           *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Specialization string    `json:"specialization,omitempty" gorm:"size:255"` // Meaningful only for doctors
	CreatedAt      time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// RoleName returns the user's role name, defaulting to "user" while the role
// reference is still unset.
func (u *User) RoleName() string {
	if u.Role == nil {
		return DefaultRoleName
	}
	return u.Role.Name
}
