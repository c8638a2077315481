package model

import "time"

const (
	InquiryPending   = "pending"
	InquiryContacted = "contacted"
	InquiryClosed    = "closed"
)

// Inquiry references a car weakly: deleting the car detaches the inquiry
// instead of removing it.
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Phone     *string   `gorm:"size:30" json:"phone,omitempty"`
	CarID     *uint     `json:"car_id"`
	Car       *Car      `gorm:"constraint:OnDelete:SET NULL" json:"car,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;not null;default:pending;check:chk_inquiries_status,status IN ('pending','contacted','closed')" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
