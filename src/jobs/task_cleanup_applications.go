package jobs

import (
	"Backend-VolunteerHub/src/database"
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleCleanupApplicationsTask ลบ applications ที่อ้างถึง activity ซึ่งถูกลบไปแล้ว
func HandleCleanupApplicationsTask(ctx context.Context, t *asynq.Task) error {
	var payload ActivityPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	objectID, err := primitive.ObjectIDFromHex(payload.ActivityID)
	if err != nil {
		return err
	}

	res, err := database.ApplicationCollection.DeleteMany(ctx, bson.M{"activityId": objectID})
	if err != nil {
		log.Println("❌ Failed to clean up applications:", err)
		return err
	}

	if res.DeletedCount > 0 {
		log.Println("✅ Cleaned up orphaned applications:", res.DeletedCount, "for activity", payload.ActivityID)
	}
	return nil
}
