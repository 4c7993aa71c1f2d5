package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DBconfig struct {
	URL string
}

type RESTconfig struct {
	PORT           string
	AllowedOrigins []string
}

type JWTconfig struct {
	SigningKey string
	TTL        time.Duration
}

type RabbitMQConfig struct {
	URL string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type S3Config struct {
	Region         string
	Bucket         string
	Endpoint       string
	PublicBaseURL  string
	ForcePathStyle bool
}

type SESConfig struct {
	Region     string
	Sender     string
	Recipients []string
}

type StdoutLogConfig struct {
	Level string `mapstructure:"STDOUT_LOG_LEVEL" default:"debug"` // По умолчанию DEBUG
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string `mapstructure:"FLUENTBIT_LOG_LEVEL" default:"info"` // По умолчанию INFO
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DBconfig
	Rest         RESTconfig
	JWT          JWTconfig
	RabbitMQ     RabbitMQConfig
	Redis        RedisConfig
	S3           S3Config
	SES          SESConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}

	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "brokerage-service")

	// Читаем DATABASE URL
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Читаем конфигурацию для REST
	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.AllowedOrigins = getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	cfg.JWT.SigningKey = os.Getenv("JWT_SIGNING_KEY")
	if cfg.JWT.SigningKey == "" {
		return nil, fmt.Errorf("JWT_SIGNING_KEY environment variable is required")
	}
	cfg.JWT.TTL = time.Duration(getEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour

	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
	if cfg.RabbitMQ.URL == "" {
		return nil, fmt.Errorf("RABBITMQ_URL environment variable is required")
	}

	cfg.Redis.Address = getEnvAsString("REDIS_ADDRESS", "localhost:6379")
	cfg.Redis.Password = getEnvAsString("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	cfg.S3.Region = getEnvAsString("S3_REGION", "us-east-1")
	cfg.S3.Bucket = os.Getenv("S3_BUCKET")
	if cfg.S3.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is required")
	}
	cfg.S3.Endpoint = getEnvAsString("S3_ENDPOINT", "")
	cfg.S3.PublicBaseURL = getEnvAsString("S3_PUBLIC_BASE_URL", "")
	cfg.S3.ForcePathStyle = getEnvAsBool("S3_FORCE_PATH_STYLE", false)

	cfg.SES.Region = getEnvAsString("SES_REGION", cfg.S3.Region)
	cfg.SES.Sender = os.Getenv("SES_SENDER")
	if cfg.SES.Sender == "" {
		return nil, fmt.Errorf("SES_SENDER environment variable is required")
	}
	cfg.SES.Recipients = getEnvAsSlice("SES_LEAD_RECIPIENTS", nil)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsSlice читает переменную окружения как список значений через запятую
func getEnvAsSlice(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valStr) == "" {
		return defaultValue
	}

	parts := strings.Split(valStr, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
