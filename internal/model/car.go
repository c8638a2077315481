package model

import "time"

const (
	CarStatusAvailable = "available"
	CarStatusSold      = "sold"
	CarStatusReserved  = "reserved"
	CarStatusUpcoming  = "upcoming"
)

type Car struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Brand        string     `gorm:"size:100;not null;index" json:"brand"`
	Model        string     `gorm:"size:100;not null" json:"model"`
	Year         int        `gorm:"not null" json:"year"`
	Mileage      *string    `gorm:"size:100" json:"mileage"`
	Engine       *string    `gorm:"size:100" json:"engine"`
	Transmission *string    `gorm:"size:100" json:"transmission"`
	FuelType     *string    `gorm:"size:100" json:"fuel_type"`
	Color        *string    `gorm:"size:100" json:"color"`
	BodyType     *string    `gorm:"size:100" json:"body_type"`
	Description  *string    `gorm:"type:text" json:"description"`
	Features     StringList `gorm:"type:text" json:"features"`
	Images       StringList `gorm:"type:text" json:"images"`
	Videos       StringList `gorm:"type:text" json:"videos"`
	Status       string     `gorm:"size:20;not null;default:available;check:chk_cars_status,status IN ('available','sold','reserved','upcoming')" json:"status"`
	Featured     bool       `gorm:"not null;default:false" json:"featured"`
	DisplayOrder *int       `json:"display_order"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
