package models

import "time"

// ContactContent is the singleton row with the contact section copy.
type ContactContent struct {
	BaseModel
	Title               string `json:"title"`
	Subtitle            string `json:"subtitle"`
	ContactInfoTitle    string `json:"contact_info_title"`
	ContactInfoSubtitle string `json:"contact_info_subtitle"`
	Active              bool   `gorm:"not null;default:true;index" json:"active"`
}

func (ContactContent) TableName() string { return "contact_content" }

// ContactDetail is one phone/email/address line shown in contact and footer.
type ContactDetail struct {
	BaseModel
	Ordered
	Type  string `json:"type"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (ContactDetail) TableName() string { return "contact_details" }

type WorkingHours struct {
	BaseModel
	Ordered
	DayLabel string `json:"day_label"`
	Hours    string `json:"hours"`
}

func (WorkingHours) TableName() string { return "working_hours" }

// ContactMessage is an append-only record of a public contact form submission.
type ContactMessage struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
