package applications

import (
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/activities"
)

// CanApply ตรวจเงื่อนไขการสมัครตามลำดับเดียวกับที่ service บังคับจริง
// not found → not approved → full → duplicate
// ตัวกันเต็มตัวจริงคือ conditional update ใน ApplyToActivity ฟังก์ชันนี้
// ให้คำตอบจาก snapshot ที่อ่านมาแล้วเท่านั้น
func CanApply(activity *models.Activity, alreadyApplied bool) error {
	if activity == nil {
		return activities.ErrActivityNotFound
	}
	if activity.Status != models.StatusApproved {
		return ErrNotApproved
	}
	if activity.CurrentApplicants >= activity.MaxApplicants {
		return ErrCapacityExceeded
	}
	if alreadyApplied {
		return ErrDuplicateApplication
	}
	return nil
}
