package jobs

import (
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker รัน asynq worker ใน goroutine แยก
// ต้องเรียกหลัง database.InitRedis() เท่านั้น
func StartWorker(redisURI string) {
	if redisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCleanupApplications, HandleCleanupApplicationsTask)
	mux.HandleFunc(TypeModerationNotify, HandleModerationNotifyTask)

	go func() {
		log.Println("✅ Asynq worker started")
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
}
