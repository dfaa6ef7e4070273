package activities

import (
	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/jobs"
	"Backend-VolunteerHub/src/models"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// --- Redis Cache Helper ---
func hashParams(params interface{}) string {
	b, _ := json.Marshal(params)
	h := sha1.New()
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}

func setCache(key string, value interface{}, ttl time.Duration) {
	if DB.RedisClient == nil {
		return
	}
	b, _ := json.Marshal(value)
	DB.RedisClient.Set(DB.RedisCtx, key, b, ttl)
}

func getCache(key string, dest interface{}) bool {
	if DB.RedisClient == nil {
		return false
	}
	val, err := DB.RedisClient.Get(DB.RedisCtx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func delCache(keys ...string) {
	if DB.RedisClient == nil {
		return
	}
	DB.RedisClient.Del(DB.RedisCtx, keys...)
}

// InvalidateListCache ล้าง cache ของหน้า listing ทั้งหมด เรียกหลัง mutation สำเร็จทุกครั้ง
func InvalidateListCache() {
	if DB.RedisClient == nil {
		return
	}
	iter := DB.RedisClient.Scan(DB.RedisCtx, 0, "activities:list:*", 0).Iterator()
	for iter.Next(DB.RedisCtx) {
		DB.RedisClient.Del(DB.RedisCtx, iter.Val())
	}
}

// InvalidateActivity ล้าง cache ของกิจกรรมเดียวพร้อม cache หน้า listing
// ให้ package อื่นเรียกหลังแก้ counter ของกิจกรรม
func InvalidateActivity(activityID string) {
	InvalidateListCache()
	delCache("activity:" + activityID)
}

// CreateActivity - สร้างกิจกรรมใหม่ เข้าคิว moderation ด้วยสถานะ pending เสมอ
func CreateActivity(req *models.CreateActivityRequest, organizerID primitive.ObjectID) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := validateCreateRequest(req, time.Now()); err != nil {
		return nil, err
	}

	// ✅ ดึง profile ของ organizer มา snapshot ชื่อ/อีเมล ณ เวลาที่สร้าง
	// ค่านี้ตั้งใจไม่ sync กับการแก้ profile ภายหลัง
	var organizer models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": organizerID}).Decode(&organizer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if organizer.Name == "" {
		return nil, ErrIncompleteProfile
	}

	now := time.Now()
	activity := models.Activity{
		ID:                primitive.NewObjectID(),
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Date:              req.Date,
		Time:              req.Time,
		Location:          req.Location,
		MaxApplicants:     req.MaxApplicants,
		CurrentApplicants: 0,
		OrganizerID:       organizerID,
		OrganizerName:     organizer.Name,
		OrganizerEmail:    organizer.Email,
		Status:            models.StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := DB.ActivityCollection.InsertOne(ctx, activity); err != nil {
		return nil, err
	}

	InvalidateListCache()
	log.Println("✅ Activity created:", activity.ID.Hex())
	return &activity, nil
}

// validateCreateRequest ตรวจ date ย้อนหลังก่อนเสมอ ฟิลด์อื่นจะผิดด้วยหรือไม่ก็ตาม
// date ย้อนหลังต้องได้ ErrDateInPast เทียบเฉพาะวัน ไม่สนเวลา
func validateCreateRequest(req *models.CreateActivityRequest, now time.Time) error {
	if _, err := time.Parse(dateLayout, req.Date); err == nil && IsDateInPast(req.Date, now) {
		return ErrDateInPast
	}
	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return &ValidationError{Fields: translateFieldErrors(verrs)}
		}
		return err
	}
	return nil
}

func translateFieldErrors(verrs validator.ValidationErrors) []models.FieldError {
	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if name != "" {
			name = string(name[0]|0x20) + name[1:]
		}
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			msg = "must be at least " + fe.Param()
		case "max":
			msg = "must be at most " + fe.Param()
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "datetime":
			msg = "has an invalid format"
		default:
			msg = "is invalid"
		}
		fields = append(fields, models.FieldError{Field: name, Message: msg})
	}
	return fields
}

// GetAllActivities - ดึงกิจกรรมตาม filter + Pagination หน้า public เห็นเฉพาะ approved
func GetAllActivities(params models.PaginationParams, category, status string, organizerID *primitive.ObjectID, dateFilter string) ([]models.Activity, int64, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	params.Normalize()
	if status == "" {
		status = models.StatusApproved
	}

	key := "activities:list:" + hashParams(struct {
		Params      models.PaginationParams
		Category    string
		Status      string
		OrganizerID *primitive.ObjectID
		DateFilter  string
	}{params, category, status, organizerID, dateFilter})

	var cached struct {
		Data       []models.Activity
		Total      int64
		TotalPages int
	}
	if getCache(key, &cached) {
		return cached.Data, cached.Total, cached.TotalPages, nil
	}

	filter := buildActivitiesFilter(status, category, organizerID, dateFilter, time.Now())

	total, err := DB.ActivityCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.ActivityCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	results := []models.Activity{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, 0, err
	}

	// 🔍 search กรองเฉพาะหน้าที่ดึงมาแล้ว (ดู FilterBySearch)
	results = FilterBySearch(results, params.Search)

	totalPages := models.TotalPages(total, params.Limit)

	setCache(key, struct {
		Data       []models.Activity
		Total      int64
		TotalPages int
	}{results, total, totalPages}, 5*time.Minute)

	return results, total, totalPages, nil
}

func GetActivityByID(activityID string) (*models.Activity, error) {
	cacheKey := "activity:" + activityID
	var cached models.Activity
	if getCache(cacheKey, &cached) {
		return &cached, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}

	var result models.Activity
	err = DB.ActivityCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	setCache(cacheKey, result, 5*time.Minute)
	return &result, nil
}

// GetActivityCounts - นับจำนวนตามสถานะ สำหรับหน้า moderation
func GetActivityCounts() (models.ActivityCounts, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var counts models.ActivityCounts

	cursor, err := DB.ActivityCollection.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	})
	if err != nil {
		return counts, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return counts, err
	}

	for _, row := range rows {
		switch row.Status {
		case models.StatusPending:
			counts.Pending = row.Count
		case models.StatusApproved:
			counts.Approved = row.Count
		case models.StatusRejected:
			counts.Rejected = row.Count
		}
		counts.Total += row.Count
	}
	return counts, nil
}

// ModerateActivity - admin approve / reject
// ไม่เช็คสถานะเดิมก่อนเปลี่ยน การ approve ซ้ำจึงผ่านได้ (พฤติกรรมเดิมของระบบ)
func ModerateActivity(activityID, action string) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var newStatus string
	switch action {
	case "approve":
		newStatus = models.StatusApproved
	case "reject":
		newStatus = models.StatusRejected
	default:
		return nil, ErrInvalidAction
	}

	objectID, err := primitive.ObjectIDFromHex(activityID)
	if err != nil {
		return nil, ErrActivityNotFound
	}

	update := bson.M{"$set": bson.M{"status": newStatus, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Activity
	err = DB.ActivityCollection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	InvalidateListCache()
	delCache("activity:" + activityID)

	// แจ้งผลให้ organizer ผ่าน job ถ้าไม่มี Redis จะเขียน notification ตรงๆ ใน controller ไม่ได้
	// จึง fallback เป็น log อย่างเดียว
	if DB.AsynqClient != nil {
		task, err := jobs.NewModerationNotifyTask(updated.ID.Hex(), updated.OrganizerID.Hex(), updated.Title, newStatus)
		if err == nil {
			if _, err := DB.AsynqClient.Enqueue(task); err != nil {
				log.Println("⚠️ Failed to enqueue moderation notify task:", err)
			}
		}
	} else {
		log.Println("⚠️ Asynq not available, skipping moderation notification for:", updated.ID.Hex())
	}

	return &updated, nil
}

// DeleteActivity - ลบกิจกรรมพร้อม applications ที่เกี่ยวข้อง
func DeleteActivity(activityID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(activityID)
	if err != nil {
		return ErrActivityNotFound
	}

	res, err := DB.ActivityCollection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrActivityNotFound
	}

	// ลบ applications ของกิจกรรมนี้ทันที แล้ว enqueue cleanup เป็น backstop
	// เผื่อมี insert แทรกระหว่างสองคำสั่งนี้
	if _, err := DB.ApplicationCollection.DeleteMany(ctx, bson.M{"activityId": objectID}); err != nil {
		log.Println("⚠️ Failed to delete applications inline:", err)
	}
	if DB.AsynqClient != nil {
		if task, err := jobs.NewCleanupApplicationsTask(activityID); err == nil {
			if _, err := DB.AsynqClient.Enqueue(task); err != nil {
				log.Println("⚠️ Failed to enqueue cleanup task:", err)
			}
		}
	}

	InvalidateListCache()
	delCache("activity:" + activityID)
	log.Println("✅ Activity deleted:", activityID)
	return nil
}
