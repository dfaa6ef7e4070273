package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCleanupApplications = "applications:cleanup"

type ActivityPayload struct {
	ActivityID string `json:"activity_id"`
}

// NewCleanupApplicationsTask ลบ applications ที่ค้างอยู่หลัง activity ถูกลบ
func NewCleanupApplicationsTask(activityID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ActivityPayload{ActivityID: activityID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCleanupApplications, payload), nil
}

const TypeModerationNotify = "activity:moderation-notify"

type ModerationPayload struct {
	ActivityID  string `json:"activity_id"`
	OrganizerID string `json:"organizer_id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
}

// NewModerationNotifyTask แจ้งผล approve/reject ให้ organizer
func NewModerationNotifyTask(activityID, organizerID, title, status string) (*asynq.Task, error) {
	payload, err := json.Marshal(ModerationPayload{
		ActivityID:  activityID,
		OrganizerID: organizerID,
		Title:       title,
		Status:      status,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeModerationNotify, payload), nil
}
