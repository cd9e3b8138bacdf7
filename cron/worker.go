package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"homeroom/config"
	userRepo "homeroom/database/repository/user"
	"homeroom/services/feed"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeFeedPrewarm = "feed:prewarm"

// prewarmSchedule re-warms feed caches every 10 minutes so the cache TTL
// never expires between runs and schedule requests stay on the fast path.
const prewarmSchedule = "*/10 * * * *"

type prewarmPayload struct {
	RequestedAt time.Time `json:"requestedAt"`
}

// InitFeedWorker runs the async worker and its periodic scheduler in
// background.
func InitFeedWorker(feedSvc feed.Service, users userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFeedPrewarm, handlePrewarmTask(feedSvc, users))

	// Enqueues the prewarm task on a cron schedule.
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	payload, _ := json.Marshal(prewarmPayload{RequestedAt: time.Now()})
	if _, err := scheduler.Register(prewarmSchedule, asynq.NewTask(TypeFeedPrewarm, payload)); err != nil {
		log.Fatalf("[FeedWorker] Failed to register prewarm schedule: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[FeedWorker] Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[FeedWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FeedWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FeedWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handlePrewarmTask force-refreshes the rotation calendar and every user's
// feeds so the next portal request hits a warm cache.
func handlePrewarmTask(feedSvc feed.Service, users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p prewarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FeedPrewarm] Invalid payload: %v", err)
			return err
		}

		if _, _, err := feedSvc.RotationDay(ctx, time.Now(), true); err != nil {
			log.Printf("[FeedPrewarm] Rotation calendar refresh failed: %v", err)
		}

		all, err := users.GetAll()
		if err != nil {
			log.Printf("[FeedPrewarm] Failed to list users: %v", err)
			return err
		}

		warmed := 0
		for i := range all {
			usr := &all[i]
			if _, _, err := feedSvc.ClassesFeed(ctx, usr, true); err != nil {
				log.Printf("[FeedPrewarm] Classes feed refresh failed for %s: %v", usr.ID, err)
			}
			if _, _, err := feedSvc.CalendarFeed(ctx, usr, true); err != nil {
				log.Printf("[FeedPrewarm] Calendar feed refresh failed for %s: %v", usr.ID, err)
			}
			warmed++
		}
		log.Printf("[FeedPrewarm] Warmed feeds for %d users", warmed)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[FeedWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
