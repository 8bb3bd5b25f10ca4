package rdx

import (
	"log"
	"os"
	"time"

	"eatkwik/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

// RdxGet returns the cached value for key, or an error on miss.
func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

// RdxSet caches value under key with a default 10 minute TTL.
func RdxSet(key, value string) {
	if err := Conn.Set(globals.Ctx, key, value, 10*time.Minute).Err(); err != nil {
		log.Println("Redis SET error:", err)
	}
}

func RdxDel(key string) {
	if err := Conn.Del(globals.Ctx, key).Err(); err != nil {
		log.Println("Redis DEL error:", err)
	}
}
