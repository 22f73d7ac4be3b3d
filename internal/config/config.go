package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string `env:"ENV" env-default:"local"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer   HttpServer
	Limiter      Limiter
	Cache        Cache
	Session      Session
	Registration Registration
	PostalLookup PostalLookup
	CORS         CORS
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"15s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type Cache struct {
	Type  string `env:"CACHE_TYPE" env-default:"memory" env-description:"specifies provider, one of memory/redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001'', '172.27.29.92:7002'']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

type Session struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" env-default:"form_session"`
	TTL        time.Duration `env:"SESSION_TTL" env-default:"30m"`
	Secure     bool          `env:"SESSION_COOKIE_SECURE" env-default:"false"`
}

type Registration struct {
	URL     string        `env:"REGISTRATION_URL" env-default:"https://apis.codante.io/api/register-user/register"`
	Timeout time.Duration `env:"REGISTRATION_TIMEOUT" env-default:"10s"`
}

type PostalLookup struct {
	BaseURL  string        `env:"POSTAL_LOOKUP_BASE_URL" env-default:"https://viacep.com.br"`
	Timeout  time.Duration `env:"POSTAL_LOOKUP_TIMEOUT" env-default:"10s"`
	CacheTTL time.Duration `env:"POSTAL_LOOKUP_CACHE_TTL" env-default:"24h"`
}

type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://localhost:5173"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return cfg
}
