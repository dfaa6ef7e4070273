package activities

import (
	"testing"
	"time"

	"Backend-VolunteerHub/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// พุธ 2025-03-12
var wednesday = time.Date(2025, 3, 12, 14, 30, 0, 0, time.UTC)

func TestDateRange(t *testing.T) {
	t.Run("TestAllIsUnbounded", func(t *testing.T) {
		start, end := DateRange("all", wednesday)
		assert.Equal(t, "", start)
		assert.Equal(t, "", end)
	})

	t.Run("TestUnknownFilterBehavesLikeAll", func(t *testing.T) {
		start, end := DateRange("whatever", wednesday)
		assert.Equal(t, "", start)
		assert.Equal(t, "", end)
	})

	t.Run("TestToday", func(t *testing.T) {
		start, end := DateRange("today", wednesday)
		assert.Equal(t, "2025-03-12", start)
		assert.Equal(t, "2025-03-12", end)
	})

	t.Run("TestTomorrow", func(t *testing.T) {
		start, end := DateRange("tomorrow", wednesday)
		assert.Equal(t, "2025-03-13", start)
		assert.Equal(t, "2025-03-13", end)
	})

	t.Run("TestThisWeekStartsMonday", func(t *testing.T) {
		start, end := DateRange("this-week", wednesday)
		assert.Equal(t, "2025-03-10", start)
		assert.Equal(t, "2025-03-16", end)
	})

	t.Run("TestThisWeekOnSunday", func(t *testing.T) {
		// อาทิตย์นับเป็นวันสุดท้ายของสัปดาห์
		sunday := time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC)
		start, end := DateRange("this-week", sunday)
		assert.Equal(t, "2025-03-10", start)
		assert.Equal(t, "2025-03-16", end)
	})

	t.Run("TestNextWeek", func(t *testing.T) {
		start, end := DateRange("next-week", wednesday)
		assert.Equal(t, "2025-03-17", start)
		assert.Equal(t, "2025-03-23", end)
	})

	t.Run("TestThisMonth", func(t *testing.T) {
		start, end := DateRange("this-month", wednesday)
		assert.Equal(t, "2025-03-01", start)
		assert.Equal(t, "2025-03-31", end)
	})

	t.Run("TestNextMonthAcrossYear", func(t *testing.T) {
		december := time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)
		start, end := DateRange("next-month", december)
		assert.Equal(t, "2026-01-01", start)
		assert.Equal(t, "2026-01-31", end)
	})

	t.Run("TestUpcoming", func(t *testing.T) {
		start, end := DateRange("upcoming", wednesday)
		assert.Equal(t, "2025-03-12", start)
		assert.Equal(t, "", end)
	})

	t.Run("TestPastEndsYesterday", func(t *testing.T) {
		start, end := DateRange("past", wednesday)
		assert.Equal(t, "", start)
		assert.Equal(t, "2025-03-11", end)
	})
}

func TestIsValidDateFilter(t *testing.T) {
	for _, f := range DateFilters {
		assert.True(t, IsValidDateFilter(f), f)
	}

	assert.False(t, IsValidDateFilter(""))
	assert.False(t, IsValidDateFilter("yesterday"))
	assert.False(t, IsValidDateFilter("This-Week")) // case-sensitive
}

func TestBuildActivitiesFilter(t *testing.T) {
	t.Run("TestDefaultApprovedOnly", func(t *testing.T) {
		filter := buildActivitiesFilter(models.StatusApproved, "", nil, "all", wednesday)
		assert.Equal(t, bson.M{"status": "approved"}, filter)
	})

	t.Run("TestAllCategoryNotFiltered", func(t *testing.T) {
		filter := buildActivitiesFilter(models.StatusApproved, "all", nil, "all", wednesday)
		_, hasCategory := filter["category"]
		assert.False(t, hasCategory)
	})

	t.Run("TestCategoryAndOrganizer", func(t *testing.T) {
		oid := primitive.NewObjectID()
		filter := buildActivitiesFilter(models.StatusPending, "environment", &oid, "all", wednesday)
		assert.Equal(t, "pending", filter["status"])
		assert.Equal(t, "environment", filter["category"])
		assert.Equal(t, oid, filter["organizerId"])
	})

	t.Run("TestDateBounds", func(t *testing.T) {
		filter := buildActivitiesFilter(models.StatusApproved, "", nil, "this-week", wednesday)
		dateCond, ok := filter["date"].(bson.M)
		assert.True(t, ok)
		assert.Equal(t, "2025-03-10", dateCond["$gte"])
		assert.Equal(t, "2025-03-16", dateCond["$lte"])
	})

	t.Run("TestUpcomingHasNoUpperBound", func(t *testing.T) {
		filter := buildActivitiesFilter(models.StatusApproved, "", nil, "upcoming", wednesday)
		dateCond := filter["date"].(bson.M)
		assert.Equal(t, "2025-03-12", dateCond["$gte"])
		_, hasLte := dateCond["$lte"]
		assert.False(t, hasLte)
	})
}

func TestMatchesSearch(t *testing.T) {
	activity := models.Activity{
		Title:         "Beach Cleanup",
		Description:   "Help clean up the beach with us",
		Location:      "Bangsaen Beach",
		OrganizerName: "Somchai J.",
	}

	t.Run("TestEmptySearchMatchesEverything", func(t *testing.T) {
		assert.True(t, MatchesSearch(activity, ""))
		assert.True(t, MatchesSearch(activity, "   "))
	})

	t.Run("TestCaseInsensitiveTitle", func(t *testing.T) {
		assert.True(t, MatchesSearch(activity, "BEACH"))
	})

	t.Run("TestMatchesOrganizerName", func(t *testing.T) {
		assert.True(t, MatchesSearch(activity, "somchai"))
	})

	t.Run("TestNoMatch", func(t *testing.T) {
		assert.False(t, MatchesSearch(activity, "football"))
	})
}

func TestFilterBySearch(t *testing.T) {
	items := []models.Activity{
		{Title: "Beach Cleanup", Location: "Bangsaen"},
		{Title: "Tree Planting", Location: "Khao Yai"},
		{Title: "Dog Shelter Visit", Description: "Walk dogs at the beach shelter"},
	}

	t.Run("TestFiltersFetchedPageOnly", func(t *testing.T) {
		filtered := FilterBySearch(items, "beach")
		assert.Len(t, filtered, 2)
		assert.Equal(t, "Beach Cleanup", filtered[0].Title)
		assert.Equal(t, "Dog Shelter Visit", filtered[1].Title)
	})

	t.Run("TestEmptySearchReturnsAll", func(t *testing.T) {
		assert.Len(t, FilterBySearch(items, ""), 3)
	})

	t.Run("TestNoMatchesReturnsEmptySlice", func(t *testing.T) {
		filtered := FilterBySearch(items, "football")
		assert.NotNil(t, filtered)
		assert.Len(t, filtered, 0)
	})
}

func TestIsDateInPast(t *testing.T) {
	assert.True(t, IsDateInPast("2025-03-11", wednesday))
	assert.False(t, IsDateInPast("2025-03-12", wednesday)) // วันนี้ไม่นับว่าย้อนหลัง
	assert.False(t, IsDateInPast("2025-03-13", wednesday))
}
