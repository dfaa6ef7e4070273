package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะการตรวจสอบกิจกรรม
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ActivityCategories หมวดหมู่กิจกรรมที่เปิดรับ
var ActivityCategories = []string{
	"environment", "community", "education", "health", "sports", "animals", "other",
}

// Activity กิจกรรมอาสา
type Activity struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title             string             `json:"title" bson:"title" example:"Beach Cleanup"`
	Description       string             `json:"description" bson:"description" example:"Help clean up the beach with us"`
	Category          string             `json:"category" bson:"category" example:"environment"`
	Date              string             `json:"date" bson:"date" example:"2025-03-11"`
	Time              string             `json:"time" bson:"time" example:"10:00"`
	Location          string             `json:"location" bson:"location" example:"Bangsaen Beach"`
	MaxApplicants     int                `json:"maxApplicants" bson:"maxApplicants" example:"20"`
	CurrentApplicants int                `json:"currentApplicants" bson:"currentApplicants" example:"0"`
	OrganizerID       primitive.ObjectID `json:"organizerId" bson:"organizerId"`
	OrganizerName     string             `json:"organizerName" bson:"organizerName" example:"Somchai J."`
	OrganizerEmail    string             `json:"organizerEmail" bson:"organizerEmail" example:"somchai@example.com"`
	Status            string             `json:"status" bson:"status" example:"pending"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateActivityRequest คำขอสร้างกิจกรรมใหม่จาก organizer
type CreateActivityRequest struct {
	Title         string `json:"title" validate:"required,min=3,max=200" example:"Beach Cleanup"`
	Description   string `json:"description" validate:"required,min=20,max=2000" example:"Help clean up the beach with us this weekend"`
	Category      string `json:"category" validate:"required,oneof=environment community education health sports animals other" example:"environment"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02" example:"2025-03-11"`
	Time          string `json:"time" validate:"required,datetime=15:04" example:"10:00"`
	Location      string `json:"location" validate:"required,min=3" example:"Bangsaen Beach"`
	MaxApplicants int    `json:"maxApplicants" validate:"required,min=1,max=500" example:"20"`
}

// ModerateActivityRequest คำขอ approve / reject จาก admin
type ModerateActivityRequest struct {
	ActivityID string `json:"activityId" example:"507f1f77bcf86cd799439011"`
	Action     string `json:"action" example:"approve"`
}

// ActivityCounts จำนวนกิจกรรมแยกตามสถานะ สำหรับหน้า moderation ของ admin
type ActivityCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}

// IsValidCategory ตรวจว่า category อยู่ในรายการที่รองรับ
func IsValidCategory(category string) bool {
	for _, c := range ActivityCategories {
		if c == category {
			return true
		}
	}
	return false
}
