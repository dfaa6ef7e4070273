package jobs

import (
	"Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleModerationNotifyTask เขียน notification แจ้งผล moderation ถึง organizer
func HandleModerationNotifyTask(ctx context.Context, t *asynq.Task) error {
	var payload ModerationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	organizerID, err := primitive.ObjectIDFromHex(payload.OrganizerID)
	if err != nil {
		return err
	}
	activityID, err := primitive.ObjectIDFromHex(payload.ActivityID)
	if err != nil {
		return err
	}

	var title, message string
	if payload.Status == models.StatusApproved {
		title = "Activity approved"
		message = "Your activity \"" + payload.Title + "\" has been approved and is now visible to volunteers."
	} else {
		title = "Activity rejected"
		message = "Your activity \"" + payload.Title + "\" has been rejected."
	}

	notification := models.Notification{
		ID:         primitive.NewObjectID(),
		UserID:     organizerID,
		ActivityID: activityID,
		Title:      title,
		Message:    message,
		Read:       false,
		CreatedAt:  time.Now(),
	}

	if _, err := database.NotificationCollection.InsertOne(ctx, notification); err != nil {
		log.Println("❌ Failed to insert notification:", err)
		return err
	}

	log.Println("✅ Moderation notification sent to:", payload.OrganizerID)
	return nil
}
