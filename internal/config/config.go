package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	DBDSN     string
	LogFile   string
	RedisAddr string        // empty disables the dashboard cache
	CacheTTL  time.Duration // TTL for cached read views
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "stockroom.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./stockroom.log"
	}
	redisAddr := os.Getenv("REDIS_ADDR")

	ttlSec := 30
	if v := os.Getenv("CACHE_TTL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlSec = n
		} else {
			log.Printf("[warn] CACHE_TTL_SEC=%q is not a positive integer, using %d", v, ttlSec)
		}
	}

	cfg := Config{
		Port:      port,
		DBDSN:     dsn,
		LogFile:   logFile,
		RedisAddr: redisAddr,
		CacheTTL:  time.Duration(ttlSec) * time.Second,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s REDIS_ADDR=%s CACHE_TTL=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.RedisAddr, cfg.CacheTTL)
	return cfg
}
