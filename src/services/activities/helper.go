package activities

import (
	"strings"
	"time"

	"Backend-VolunteerHub/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Helper functions for activities service

const dateLayout = "2006-01-02"

// date filter ที่หน้า listing รองรับ
var DateFilters = []string{
	"all", "today", "tomorrow", "this-week", "next-week",
	"this-month", "next-month", "upcoming", "past",
}

// IsValidDateFilter ตรวจว่า dateFilter อยู่ในรายการที่รองรับ
func IsValidDateFilter(dateFilter string) bool {
	for _, f := range DateFilters {
		if f == dateFilter {
			return true
		}
	}
	return false
}

// DateRange แปลง dateFilter เป็นช่วงวันที่ [start, end] แบบ string "2006-01-02"
// ค่าว่าง = ไม่จำกัดด้านนั้น วันที่เก็บเป็น string ISO จึงเทียบเป็นข้อความได้เลย
// สัปดาห์เริ่มวันจันทร์
func DateRange(dateFilter string, now time.Time) (string, string) {
	today := now.Format(dateLayout)

	switch dateFilter {
	case "today":
		return today, today
	case "tomorrow":
		d := now.AddDate(0, 0, 1).Format(dateLayout)
		return d, d
	case "this-week":
		start := startOfWeek(now)
		return start.Format(dateLayout), start.AddDate(0, 0, 6).Format(dateLayout)
	case "next-week":
		start := startOfWeek(now).AddDate(0, 0, 7)
		return start.Format(dateLayout), start.AddDate(0, 0, 6).Format(dateLayout)
	case "this-month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start.Format(dateLayout), start.AddDate(0, 1, -1).Format(dateLayout)
	case "next-month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
		return start.Format(dateLayout), start.AddDate(0, 1, -1).Format(dateLayout)
	case "upcoming":
		return today, ""
	case "past":
		return "", now.AddDate(0, 0, -1).Format(dateLayout)
	default: // "all" หรือค่าที่ไม่รู้จัก
		return "", ""
	}
}

func startOfWeek(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // อาทิตย์นับเป็นวันสุดท้ายของสัปดาห์
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// buildActivitiesFilter ประกอบเงื่อนไข status / category / organizer / ช่วงวันที่
func buildActivitiesFilter(status, category string, organizerID *primitive.ObjectID, dateFilter string, now time.Time) bson.M {
	filter := bson.M{}

	if status != "" && status != "all" {
		filter["status"] = status
	}
	if category != "" && category != "all" {
		filter["category"] = category
	}
	if organizerID != nil {
		filter["organizerId"] = *organizerID
	}

	start, end := DateRange(dateFilter, now)
	if start != "" || end != "" {
		dateCond := bson.M{}
		if start != "" {
			dateCond["$gte"] = start
		}
		if end != "" {
			dateCond["$lte"] = end
		}
		filter["date"] = dateCond
	}

	return filter
}

// MatchesSearch ตรวจ substring แบบ case-insensitive บน title / description / location / organizerName
func MatchesSearch(a models.Activity, search string) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Description), q) ||
		strings.Contains(strings.ToLower(a.Location), q) ||
		strings.Contains(strings.ToLower(a.OrganizerName), q)
}

// FilterBySearch กรองเฉพาะหน้าที่ fetch มาแล้วเท่านั้น การค้นหาไม่ได้ push ลง query
// ผลลัพธ์จึงไม่ครบเมื่อเทียบกับทั้ง dataset เป็นข้อจำกัดที่ตั้งใจคงไว้
func FilterBySearch(items []models.Activity, search string) []models.Activity {
	if strings.TrimSpace(search) == "" {
		return items
	}
	filtered := make([]models.Activity, 0, len(items))
	for _, a := range items {
		if MatchesSearch(a, search) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// IsDateInPast เทียบเฉพาะวัน ไม่สนเวลา
func IsDateInPast(date string, now time.Time) bool {
	return date < now.Format(dateLayout)
}
