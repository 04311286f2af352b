package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Server struct {
	App         App
	ExternalAPI ExternalAPI
	Live        LivePolling
	Cache       Cache
	Cron        Cron
	PG          PG
	Redis       Redis
	GoogleCloud GoogleCloud
	Push        Push
}

type Migrate struct {
	PG PG
}

type App struct {
	Port          string   `env:"PORT" envDefault:"8080"`
	HashedAPIKeys []string `env:"HASHED_API_KEYS" envSeparator:","`
	SecretKey     string   `env:"SECRET_KEY,required"`
	// Public base URL of this service, used to rewrite relative media paths.
	BaseURL        string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

type ExternalAPI struct {
	LiveAPIBaseURL    string `env:"LIVE_API_BASE_URL,required"`
	LiveAPIKey        string `env:"LIVE_API_KEY,required"`
	SummaryAPIBaseURL string `env:"SUMMARY_API_BASE_URL" envDefault:"https://site.api.espn.com/apis/site/v2/sports/soccer"`
	MediaBaseURL      string `env:"MEDIA_BASE_URL,required"`
	TeamID            string `env:"TEAM_ID,required"`
	League            string `env:"LEAGUE" envDefault:"tur.1"`
}

type LivePolling struct {
	Interval  time.Duration `env:"LIVE_POLLING_INTERVAL" envDefault:"30s"`
	PostDwell time.Duration `env:"LIVE_POST_DWELL" envDefault:"30s"`
}

type Cache struct {
	FixturesTTL  time.Duration `env:"CACHE_FIXTURES_TTL" envDefault:"1h"`
	SquadTTL     time.Duration `env:"CACHE_SQUAD_TTL" envDefault:"24h"`
	StandingsTTL time.Duration `env:"CACHE_STANDINGS_TTL" envDefault:"1h"`
	SummaryTTL   time.Duration `env:"CACHE_SUMMARY_TTL" envDefault:"10m"`
	MediaTTL     time.Duration `env:"CACHE_MEDIA_TTL" envDefault:"24h"`
}

type Cron struct {
	RefreshSchedule string `env:"CRON_REFRESH_SCHEDULE" envDefault:"0 */6 * * *"`
}

type PG struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	User     string `env:"PG_USER" envDefault:"postgres"`
	Password string `env:"PG_PASSWORD,required"`
	Port     string `env:"PG_PORT" envDefault:"5432"`
	Database string `env:"PG_DATABASE" envDefault:"postgres"`
}

type Redis struct {
	Address  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type GoogleCloud struct {
	ProjectID string `env:"GOOGLE_CLOUD_PROJECT_ID,required"`
	Region    string `env:"GOOGLE_CLOUD_REGION,required"`
	// Base URL to be passed as 'audience' param when creating a cloud task. Then cloud tasks will call this URL.
	TasksBaseURL string `env:"GOOGLE_CLOUD_BASE_URL,required"`
	// Delay after kickoff before the first scheduled summary check fires.
	SummaryCheckDelay time.Duration `env:"SUMMARY_CHECK_DELAY" envDefault:"115m"`
	SummaryCheckRetry time.Duration `env:"SUMMARY_CHECK_RETRY" envDefault:"15m"`
}

type Push struct {
	GatewayURL string `env:"PUSH_GATEWAY_URL" envDefault:"https://fcm.googleapis.com/fcm/send"`
	ServerKey  string `env:"PUSH_SERVER_KEY,required"`
}

func Parse[T any]() T {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return cfg
}
