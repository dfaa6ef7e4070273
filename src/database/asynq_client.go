package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq สร้าง Asynq client ต้องเรียกหลัง InitRedis() เพราะใช้ Redis ตัวเดียวกัน
// ถ้า Redis ไม่พร้อม client จะเป็น nil และงาน background ทั้งหมดถูกข้าม
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Background jobs are disabled.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq client ready")
}
