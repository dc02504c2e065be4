package database

import (
	"log"

	"github.com/hibiken/asynq"
)

// InitAsynq returns an asynq client, or nil when Redis is not configured.
func InitAsynq(redisAddr string) *asynq.Client {
	if redisAddr == "" {
		return nil
	}
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	log.Println("✅ Asynq Client initialized successfully")
	return client
}
