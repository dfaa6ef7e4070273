package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application การสมัครเข้าร่วมกิจกรรมของ user หนึ่งคน
// unique index: (activityId, userId) ลงซ้ำไม่ได้
type Application struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ActivityID primitive.ObjectID `json:"activityId" bson:"activityId"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId"`
	AppliedAt  time.Time          `json:"appliedAt" bson:"appliedAt"`
}

// ApplicationRequest body สำหรับ apply / withdraw
type ApplicationRequest struct {
	ActivityID string `json:"activityId" example:"507f1f77bcf86cd799439011"`
}

// ApplicantInfo รายชื่อผู้สมัครพร้อมข้อมูล user สำหรับ organizer/admin
type ApplicantInfo struct {
	ApplicationID primitive.ObjectID `json:"applicationId" bson:"_id"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	AppliedAt     time.Time          `json:"appliedAt" bson:"appliedAt"`
}

// SuccessResponse ใช้เป็นโครงสร้าง JSON Response ที่ Swagger ใช้
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
