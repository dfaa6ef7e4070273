package activities

import (
	"errors"
	"testing"
	"time"

	"Backend-VolunteerHub/src/models"

	"github.com/stretchr/testify/assert"
)

var validationNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func validRequest() *models.CreateActivityRequest {
	return &models.CreateActivityRequest{
		Title:         "Beach Cleanup",
		Description:   "Help clean up Bangsaen beach",
		Category:      "environment",
		Date:          "2025-06-01",
		Time:          "09:00",
		Location:      "Bangsaen Beach",
		MaxApplicants: 30,
	}
}

func TestValidateCreateRequest(t *testing.T) {
	t.Run("TestValidRequestPasses", func(t *testing.T) {
		assert.NoError(t, validateCreateRequest(validRequest(), validationNow))
	})

	t.Run("TestDateInPast", func(t *testing.T) {
		req := validRequest()
		req.Date = "2025-03-11"
		err := validateCreateRequest(req, validationNow)
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("TestTodayIsAllowed", func(t *testing.T) {
		req := validRequest()
		req.Date = "2025-03-12"
		assert.NoError(t, validateCreateRequest(req, validationNow))
	})

	t.Run("TestPastDateWinsOverOtherFieldErrors", func(t *testing.T) {
		// วันที่ย้อนหลังต้องชนะ error อื่นทุกตัว
		req := validRequest()
		req.Date = "2025-01-01"
		req.Title = ""
		req.Category = "not-a-category"
		req.MaxApplicants = 0
		err := validateCreateRequest(req, validationNow)
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("TestMissingFields", func(t *testing.T) {
		req := validRequest()
		req.Title = ""
		req.Location = ""
		err := validateCreateRequest(req, validationNow)
		verr, ok := AsValidationError(err)
		assert.True(t, ok)
		fields := map[string]string{}
		for _, fe := range verr.Fields {
			fields[fe.Field] = fe.Message
		}
		assert.Equal(t, "is required", fields["title"])
		assert.Equal(t, "is required", fields["location"])
	})

	t.Run("TestBadCategory", func(t *testing.T) {
		req := validRequest()
		req.Category = "gardening"
		err := validateCreateRequest(req, validationNow)
		verr, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Len(t, verr.Fields, 1)
		assert.Equal(t, "category", verr.Fields[0].Field)
		assert.Contains(t, verr.Fields[0].Message, "must be one of")
	})

	t.Run("TestBadDateFormat", func(t *testing.T) {
		req := validRequest()
		req.Date = "01/06/2025"
		err := validateCreateRequest(req, validationNow)
		verr, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "date", verr.Fields[0].Field)
		assert.Equal(t, "has an invalid format", verr.Fields[0].Message)
	})

	t.Run("TestBadTimeFormat", func(t *testing.T) {
		req := validRequest()
		req.Time = "9am"
		err := validateCreateRequest(req, validationNow)
		verr, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "time", verr.Fields[0].Field)
	})

	t.Run("TestMaxApplicantsBounds", func(t *testing.T) {
		req := validRequest()
		req.MaxApplicants = 0
		err := validateCreateRequest(req, validationNow)
		verr, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "maxApplicants", verr.Fields[0].Field)

		req = validRequest()
		req.MaxApplicants = 501
		err = validateCreateRequest(req, validationNow)
		verr, ok = AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "must be at most 500", verr.Fields[0].Message)
	})

	t.Run("TestTitleTooShort", func(t *testing.T) {
		req := validRequest()
		req.Title = "Go"
		err := validateCreateRequest(req, validationNow)
		verr, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, "must be at least 3", verr.Fields[0].Message)
	})

	t.Run("TestSentinelIsNotValidationError", func(t *testing.T) {
		req := validRequest()
		req.Date = "2024-12-31"
		err := validateCreateRequest(req, validationNow)
		_, ok := AsValidationError(err)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, ErrDateInPast))
	})
}
