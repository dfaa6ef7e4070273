package applications

import (
	"testing"

	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/activities"

	"github.com/stretchr/testify/assert"
)

func approvedActivity(current, max int) *models.Activity {
	return &models.Activity{
		Title:             "Beach Cleanup",
		Status:            models.StatusApproved,
		CurrentApplicants: current,
		MaxApplicants:     max,
	}
}

func TestCanApply(t *testing.T) {
	t.Run("TestNilActivity", func(t *testing.T) {
		assert.ErrorIs(t, CanApply(nil, false), activities.ErrActivityNotFound)
	})

	t.Run("TestPendingActivity", func(t *testing.T) {
		a := approvedActivity(0, 10)
		a.Status = models.StatusPending
		assert.ErrorIs(t, CanApply(a, false), ErrNotApproved)
	})

	t.Run("TestRejectedActivity", func(t *testing.T) {
		a := approvedActivity(0, 10)
		a.Status = models.StatusRejected
		assert.ErrorIs(t, CanApply(a, false), ErrNotApproved)
	})

	t.Run("TestFullActivity", func(t *testing.T) {
		assert.ErrorIs(t, CanApply(approvedActivity(10, 10), false), ErrCapacityExceeded)
	})

	t.Run("TestDuplicate", func(t *testing.T) {
		assert.ErrorIs(t, CanApply(approvedActivity(3, 10), true), ErrDuplicateApplication)
	})

	t.Run("TestNotApprovedWinsOverFull", func(t *testing.T) {
		// status ต้องถูกเช็คก่อนความจุ
		a := approvedActivity(10, 10)
		a.Status = models.StatusPending
		assert.ErrorIs(t, CanApply(a, true), ErrNotApproved)
	})

	t.Run("TestFullWinsOverDuplicate", func(t *testing.T) {
		assert.ErrorIs(t, CanApply(approvedActivity(5, 5), true), ErrCapacityExceeded)
	})

	t.Run("TestHappyPath", func(t *testing.T) {
		assert.NoError(t, CanApply(approvedActivity(4, 5), false))
	})

	t.Run("TestDuplicateLeavesCounterUnchanged", func(t *testing.T) {
		// สมัครครั้งแรกผ่าน counter ขยับ ครั้งที่สองโดนปัดตกและ counter ต้องไม่ขยับอีก
		a := approvedActivity(0, 10)
		assert.NoError(t, CanApply(a, false))
		a.CurrentApplicants++

		assert.ErrorIs(t, CanApply(a, true), ErrDuplicateApplication)
		assert.Equal(t, 1, a.CurrentApplicants)
	})

	t.Run("TestLastSeatRace", func(t *testing.T) {
		// ที่นั่งสุดท้าย: คนแรกได้ คนที่สองต้องเจอ capacity error
		a := approvedActivity(0, 1)
		assert.NoError(t, CanApply(a, false))

		a.CurrentApplicants++ // คนแรก commit แล้ว
		assert.ErrorIs(t, CanApply(a, false), ErrCapacityExceeded)
	})
}
