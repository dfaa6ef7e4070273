package activities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModerateActivity(t *testing.T) {
	t.Run("TestInvalidAction", func(t *testing.T) {
		// action แปลกๆ ต้องโดนปัดตกก่อนแตะ database
		activity, err := ModerateActivity("507f1f77bcf86cd799439011", "delete")
		assert.Nil(t, activity)
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("TestEmptyAction", func(t *testing.T) {
		activity, err := ModerateActivity("507f1f77bcf86cd799439011", "")
		assert.Nil(t, activity)
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("TestInvalidIDIsNotFound", func(t *testing.T) {
		// id ที่ parse ไม่ได้ถือว่าไม่พบ ไม่มี side effect ใดๆ
		activity, err := ModerateActivity("not-a-hex-id", "approve")
		assert.Nil(t, activity)
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})

	t.Run("TestInvalidIDOnReject", func(t *testing.T) {
		activity, err := ModerateActivity("", "reject")
		assert.Nil(t, activity)
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}
