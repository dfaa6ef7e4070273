package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification ข้อความแจ้งเตือนผล moderation ถึง organizer
type Notification struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId"`
	ActivityID primitive.ObjectID `json:"activityId" bson:"activityId"`
	Title      string             `json:"title" bson:"title"`
	Message    string             `json:"message" bson:"message"`
	Read       bool               `json:"read" bson:"read"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
