package models

import (
	"time"
)

type InquiryType string

const (
	InquiryMessage      InquiryType = "MESSAGE"
	InquiryVisitRequest InquiryType = "VISIT_REQUEST"
)

type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "NEW"
	InquiryReplied   InquiryStatus = "REPLIED"
	InquiryScheduled InquiryStatus = "SCHEDULED"
	InquiryClosed    InquiryStatus = "CLOSED"
)

// Inquiry is a message or visit request from a student to a landlord about a
// listing. The landlord is denormalized from the listing at creation time so
// landlord inboxes are a single indexed query.
type Inquiry struct {
	ID      uint          `json:"id" gorm:"primaryKey"`
	Type    InquiryType   `json:"type" gorm:"type:varchar(20);not null"`
	Status  InquiryStatus `json:"status" gorm:"type:varchar(20);not null;default:NEW"`
	Message string        `json:"message"`
	Notes   string        `json:"notes"`

	// Only set for visit requests.
	VisitDate *time.Time `json:"visit_date,omitempty"`
	VisitTime *time.Time `json:"visit_time,omitempty"`

	Reply     string     `json:"reply,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`

	StudentID  uint `json:"student_id" gorm:"not null;index"`
	ListingID  uint `json:"listing_id" gorm:"not null;index"`
	LandlordID uint `json:"landlord_id" gorm:"not null;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
