package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	ActivityCollection     *mongo.Collection
	ApplicationCollection  *mongo.Collection
	UserCollection         *mongo.Collection
	NotificationCollection *mongo.Collection
)

const dbName = "VolunteerHubDB"

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		Client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = Client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		db := Client.Database(dbName)
		ActivityCollection = db.Collection("activities")
		ApplicationCollection = db.Collection("applications")
		UserCollection = db.Collection("users")
		NotificationCollection = db.Collection("notifications")

		if err := EnsureIndexes(context.TODO()); err != nil {
			log.Fatal("❌ Failed to create indexes:", err)
		}
	})

	return connectErr
}

// EnsureIndexes สร้าง index ที่ระบบต้องพึ่งพา
// unique (activityId, userId) คือตัวกันการสมัครซ้ำตัวจริง ไม่ใช่แค่การเช็คใน service
func EnsureIndexes(ctx context.Context) error {
	_, err := ApplicationCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "activityId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// listing หลักเรียงตาม (date, time) เสมอ
	_, err = ActivityCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
	})
	return err
}
