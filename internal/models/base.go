package models

import "time"

// BaseModel provides shared columns for all content tables.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ordered is embedded by collection rows that are listed by display order.
type Ordered struct {
	Active       bool `gorm:"not null;default:true;index" json:"active"`
	DisplayOrder int  `gorm:"not null;default:0" json:"display_order"`
}
