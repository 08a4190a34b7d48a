package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Routing engine
	Catalog    CatalogConfig
	Classifier ClassifierConfig
	Session    SessionConfig
	Restaurant RestaurantConfig

	// Transports
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// CatalogConfig lists the menu sources. Only Menu is expected to exist; the
// others are skipped when missing.
type CatalogConfig struct {
	Menu          string
	Supplementary []string
	PriceSources  []string
	Lexicon       string
}

type ClassifierConfig struct {
	ModelDir    string
	Threshold   float64
	DefaultAlgo string
}

type SessionConfig struct {
	Driver string
	Size   int
	TTL    time.Duration
	Redis  RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RestaurantConfig is the venue information quoted in replies.
type RestaurantConfig struct {
	OpenDays  string
	OpenTime  string
	CloseTime string
	LastOrder string
	Location  string
	Payment   string
	Delivery  string
	Takeaway  string
	ChefPicks []string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	// NgrokAPI is queried for a public URL when WebhookURL is empty.
	NgrokAPI   string
	Secret     string
	AllowedIPs []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Catalog
	cfg.Catalog.Menu = viper.GetString("catalog.menu")
	cfg.Catalog.Supplementary = getList("catalog.supplementary")
	cfg.Catalog.PriceSources = getList("catalog.price_sources")
	cfg.Catalog.Lexicon = viper.GetString("catalog.lexicon")

	// Classifier
	cfg.Classifier.ModelDir = viper.GetString("classifier.model_dir")
	cfg.Classifier.Threshold = viper.GetFloat64("classifier.threshold")
	cfg.Classifier.DefaultAlgo = viper.GetString("classifier.default_algo")
	if cfg.Classifier.Threshold < 0 || cfg.Classifier.Threshold > 1 {
		return nil, fmt.Errorf("classifier.threshold must be within [0, 1], got %v", cfg.Classifier.Threshold)
	}

	// Session
	cfg.Session.Driver = viper.GetString("session.driver")
	cfg.Session.Size = viper.GetInt("session.size")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.Redis.Addr = viper.GetString("session.redis.addr")
	cfg.Session.Redis.Password = viper.GetString("session.redis.password")
	cfg.Session.Redis.DB = viper.GetInt("session.redis.db")
	cfg.Session.Redis.Prefix = viper.GetString("session.redis.prefix")
	if redisURL := viper.GetString("redis_addr"); redisURL != "" {
		cfg.Session.Redis.Addr = redisURL
	}

	// Restaurant
	cfg.Restaurant.OpenDays = viper.GetString("restaurant.open_days")
	cfg.Restaurant.OpenTime = viper.GetString("restaurant.open_time")
	cfg.Restaurant.CloseTime = viper.GetString("restaurant.close_time")
	cfg.Restaurant.LastOrder = viper.GetString("restaurant.last_order")
	cfg.Restaurant.Location = viper.GetString("restaurant.location")
	cfg.Restaurant.Payment = viper.GetString("restaurant.payment")
	cfg.Restaurant.Delivery = viper.GetString("restaurant.delivery")
	cfg.Restaurant.Takeaway = viper.GetString("restaurant.takeaway")
	cfg.Restaurant.ChefPicks = getList("restaurant.chef_picks")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	cfg.Telegram.Secret = viper.GetString("telegram.secret")
	cfg.Telegram.AllowedIPs = getList("telegram.allowed_ips")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if tgSecret := viper.GetString("telegram_secret"); tgSecret != "" {
		cfg.Telegram.Secret = tgSecret
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("catalog.menu", "data/menu.json")
	viper.SetDefault("catalog.supplementary", []string{})
	viper.SetDefault("catalog.price_sources", []string{})
	viper.SetDefault("catalog.lexicon", "data/lexicon.yaml")

	viper.SetDefault("classifier.model_dir", "models")
	viper.SetDefault("classifier.threshold", 0.50)
	viper.SetDefault("classifier.default_algo", "")

	viper.SetDefault("session.driver", "memory")
	viper.SetDefault("session.size", 10000)
	viper.SetDefault("session.ttl", "2h")
	viper.SetDefault("session.redis.addr", "localhost:6379")
	viper.SetDefault("session.redis.password", "")
	viper.SetDefault("session.redis.db", 0)
	viper.SetDefault("session.redis.prefix", "restaurant-bot:session:")

	viper.SetDefault("restaurant.open_days", "daily")
	viper.SetDefault("restaurant.open_time", "10am")
	viper.SetDefault("restaurant.close_time", "10pm")
	viper.SetDefault("restaurant.last_order", "30 minutes before closing")
	viper.SetDefault("restaurant.chef_picks", []string{})

	viper.SetDefault("telegram.ngrok_api", "")
	viper.SetDefault("telegram.allowed_ips", []string{})
}

// getList reads a YAML list, or a comma-separated string as set from the
// environment.
func getList(key string) []string {
	if _, ok := viper.Get(key).(string); !ok {
		return viper.GetStringSlice(key)
	}

	var out []string
	for _, item := range strings.Split(viper.GetString(key), ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
