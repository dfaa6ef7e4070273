package applications

import (
	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/activities"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApplyToActivity - user สมัครเข้าร่วมกิจกรรม
// insert application กับ currentApplicants+1 ต้องเห็นพร้อมกันหรือไม่เห็นเลย
// จึงทำทั้งคู่ใน transaction เดียว และเงื่อนไขเต็ม/ไม่เต็มตัดสินด้วย conditional
// update (แข่งกันสมัครพร้อมกันก็เกิน max ไม่ได้)
func ApplyToActivity(activityID, userID primitive.ObjectID) (*models.Application, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 1) ตรวจว่า activity มีจริงไหม และเปิดรับสมัครหรือยัง
	var activity models.Activity
	if err := DB.ActivityCollection.FindOne(ctx, bson.M{"_id": activityID}).Decode(&activity); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, activities.ErrActivityNotFound
		}
		return nil, err
	}

	// 2) กันลงซ้ำ (unique index เป็นตัวกันตัวจริง เช็คก่อนเพื่อให้ error ตรงประเภท)
	count, err := DB.ApplicationCollection.CountDocuments(ctx, bson.M{
		"activityId": activityID,
		"userId":     userID,
	})
	if err != nil {
		return nil, err
	}

	if err := CanApply(&activity, count > 0); err != nil {
		return nil, err
	}

	application := models.Application{
		ID:         primitive.NewObjectID(),
		ActivityID: activityID,
		UserID:     userID,
		AppliedAt:  time.Now(),
	}

	// 3) insert + increment ใน transaction เดียว
	session, err := DB.Client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		// กันเต็มโควต้าด้วยเงื่อนไขบน update เอง
		// ไม่มี row ไหน match = เต็มแล้ว
		res := DB.ActivityCollection.FindOneAndUpdate(sc,
			bson.M{
				"_id":    activityID,
				"status": models.StatusApproved,
				"$expr":  bson.M{"$lt": bson.A{"$currentApplicants", "$maxApplicants"}},
			},
			bson.M{"$inc": bson.M{"currentApplicants": 1}},
		)
		if res.Err() != nil {
			if res.Err() == mongo.ErrNoDocuments {
				return nil, ErrCapacityExceeded
			}
			return nil, res.Err()
		}

		if _, err := DB.ApplicationCollection.InsertOne(sc, application); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicateApplication
			}
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	activities.InvalidateActivity(activityID.Hex())
	log.Println("✅ Application created:", application.ID.Hex())
	return &application, nil
}

// WithdrawApplication - user ถอนการสมัคร ลบ application กับ currentApplicants-1
// ใน transaction เดียว counter ไม่มีทางต่ำกว่า 0 เพราะ update มีเงื่อนไข > 0
func WithdrawApplication(activityID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := DB.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := DB.ApplicationCollection.DeleteOne(sc, bson.M{
			"activityId": activityID,
			"userId":     userID,
		})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrApplicationNotFound
		}

		_, err = DB.ActivityCollection.UpdateOne(sc,
			bson.M{"_id": activityID, "currentApplicants": bson.M{"$gt": 0}},
			bson.M{"$inc": bson.M{"currentApplicants": -1}},
		)
		return nil, err
	})
	if err != nil {
		return err
	}

	activities.InvalidateActivity(activityID.Hex())
	log.Println("✅ Application withdrawn for activity:", activityID.Hex())
	return nil
}

// GetApplicantsByActivity - organizer/admin ดูรายชื่อผู้สมัครพร้อมข้อมูล user
func GetApplicantsByActivity(activityID primitive.ObjectID) ([]models.ApplicantInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"activityId": activityID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":       1,
			"userId":    1,
			"appliedAt": 1,
			"name":      "$user.name",
			"email":     "$user.email",
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"appliedAt": 1}}},
	}

	cursor, err := DB.ApplicationCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	applicants := []models.ApplicantInfo{}
	if err := cursor.All(ctx, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

// GetApplicationsByUser - กิจกรรมทั้งหมดที่ user คนนี้สมัครไว้
func GetApplicationsByUser(userID primitive.ObjectID) ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := DB.ApplicationCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return []models.Activity{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.ActivityID)
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	activityCursor, err := DB.ActivityCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, findOpts)
	if err != nil {
		return nil, err
	}
	defer activityCursor.Close(ctx)

	result := []models.Activity{}
	if err := activityCursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// HasApplied เช็คว่า user สมัครกิจกรรมนี้ไว้หรือยัง
func HasApplied(activityID, userID primitive.ObjectID) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := DB.ApplicationCollection.CountDocuments(ctx, bson.M{
		"activityId": activityID,
		"userId":     userID,
	})
	return err == nil && count > 0
}
