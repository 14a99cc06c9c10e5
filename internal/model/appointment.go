package model

import "time"

// Appointment is an immutable booking record. DoctorID is a loose reference to
// a user id and may dangle if the doctor is later removed; PESEL keys the
// patient by national identifier so lookups work even for unregistered people.
type Appointment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	DoctorID  string    `json:"doctor_id" gorm:"type:char(36);not null;index"`
	PESEL     string    `json:"pesel" gorm:"column:pesel;size:11;not null;index"`
	Date      time.Time `json:"date" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// EnrichedAppointment is an appointment joined with the doctor's display name.
// The name fields are null when the referenced doctor no longer exists.
type EnrichedAppointment struct {
	Appointment
	DoctorFirstName *string `json:"doctor_first_name"`
	DoctorLastName  *string `json:"doctor_last_name"`
}
