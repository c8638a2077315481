package model

import "time"

const (
	PartInStock    = "in_stock"
	PartOutOfStock = "out_of_stock"
	PartComingSoon = "coming_soon"
)

type Part struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Category     string     `gorm:"size:100;not null;index" json:"category"`
	Description  *string    `gorm:"type:text" json:"description"`
	Images       StringList `gorm:"type:text" json:"images"`
	Availability string     `gorm:"size:20;not null;default:in_stock;check:chk_parts_availability,availability IN ('in_stock','out_of_stock','coming_soon')" json:"availability"`
	Featured     bool       `gorm:"not null;default:false" json:"featured"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
