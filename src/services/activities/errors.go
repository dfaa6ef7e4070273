package activities

import (
	"errors"
	"fmt"

	"Backend-VolunteerHub/src/models"
)

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrDateInPast        = errors.New("activity date must not be in the past")
	ErrProfileNotFound   = errors.New("organizer profile not found")
	ErrIncompleteProfile = errors.New("organizer profile has no name")
	ErrInvalidAction     = errors.New("action must be approve or reject")
)

// ValidationError รวมข้อความ validation รายฟิลด์จากการสร้างกิจกรรม
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// AsValidationError ใช้ฝั่ง controller แปลง error กลับเป็นรายการรายฟิลด์
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
