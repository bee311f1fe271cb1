package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type redisStore struct {
	client *redis.Client
}

func NewRedis() ISessionStore {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisStore{client: client}
}

func sessionKey(sessionID, key string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, key)
}

func (r *redisStore) SetEntry(ctx context.Context, sessionID, key, value string, expiration time.Duration) error {
	if err := r.client.Set(ctx, sessionKey(sessionID, key), value, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting session entry %s for %s: %v", key, sessionID, err))
		return err
	}
	return nil
}

func (r *redisStore) GetEntry(ctx context.Context, sessionID, key string) (string, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrEntryNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting session entry %s for %s: %v", key, sessionID, err))
		return "", err
	}
	return val, nil
}

func (r *redisStore) ClearSession(ctx context.Context, sessionID string) error {
	keys := []string{
		sessionKey(sessionID, EntryToken),
		sessionKey(sessionID, EntryUser),
	}

	if _, err := r.client.Del(ctx, keys...).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error clearing session %s: %v", sessionID, err))
		return err
	}
	return nil
}
