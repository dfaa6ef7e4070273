package notifications

import (
	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotificationNotFound = errors.New("notification not found")

// GetNotificationsByUser ดึง feed ของ user เรียงใหม่สุดก่อน
func GetNotificationsByUser(userID primitive.ObjectID) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(50)

	cursor, err := DB.NotificationCollection.Find(ctx, bson.M{"userId": userID}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := []models.Notification{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkRead ติ๊กอ่านแล้ว เช็ค userId ด้วยกันอ่าน notification ของคนอื่น
func MarkRead(notificationID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := DB.NotificationCollection.UpdateOne(ctx,
		bson.M{"_id": notificationID, "userId": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
