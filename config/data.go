package config

import (
	"time"

	"github.com/spf13/viper"
)

// Data represents the data configuration
type Data struct {
	Redis *Redis
	Cache *Cache
}

// Redis redis config struct
type Redis struct {
	Addr         string
	Username     string
	Password     string
	DB           int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DialTimeout  time.Duration
}

// Cache revalidation cache config struct
type Cache struct {
	TTL time.Duration
}

// getDataConfig returns data config
func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		Redis: &Redis{
			Addr:         v.GetString("data.redis.addr"),
			Username:     v.GetString("data.redis.username"),
			Password:     v.GetString("data.redis.password"),
			DB:           v.GetInt("data.redis.db"),
			ReadTimeout:  getDurationOrDefault(v, "data.redis.read_timeout", time.Second),
			WriteTimeout: getDurationOrDefault(v, "data.redis.write_timeout", time.Second),
			DialTimeout:  getDurationOrDefault(v, "data.redis.dial_timeout", 3*time.Second),
		},
		Cache: &Cache{
			TTL: getDurationOrDefault(v, "data.cache.ttl", time.Minute),
		},
	}
}
