package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Minio    MinioConfig
	Kafka    KafkaConfig
}

var (
	ConfigInstance *Config
	once           sync.Once
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	URI string
}

type JWTConfig struct {
	Secret         string
	ExpirationTime time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// LoadConfig reads configuration from environment variables with sane
// defaults for local development.
func LoadConfig() (*Config, error) {
	once.Do(func() {
		viper.SetDefault("QB_HOST", "0.0.0.0")
		viper.SetDefault("QB_PORT", "8080")
		viper.SetDefault("QB_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("QB_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("QB_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("QB_JWT_SECRET", "secret")
		viper.SetDefault("QB_JWT_EXPIRE", "24h")
		viper.SetDefault("REDIS_URL", "redis://127.0.0.1:6379/0")
		viper.SetDefault("POSTGRES_USER", "postgres")
		viper.SetDefault("POSTGRES_PASSWORD", "password")
		viper.SetDefault("POSTGRES_HOST", "localhost")
		viper.SetDefault("POSTGRES_PORT", "5432")
		viper.SetDefault("POSTGRES_DB", "quickybite")
		viper.SetDefault("POSTGRES_SSLMODE", "disable")
		viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
		viper.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
		viper.SetDefault("MINIO_SECRET_KEY", "minioadmin")
		viper.SetDefault("MINIO_BUCKET", "quickybite-uploads")
		viper.SetDefault("KAFKA_BROKERS", []string{"localhost:9092"})
		viper.SetDefault("KAFKA_TOPIC", "quickybite.events")
		viper.AutomaticEnv()

		ConfigInstance = &Config{
			Server: ServerConfig{
				Host:         viper.GetString("QB_HOST"),
				Port:         viper.GetString("QB_PORT"),
				ReadTimeout:  viper.GetDuration("QB_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("QB_WRITE_TIMEOUT"),
				IdleTimeout:  viper.GetDuration("QB_IDLE_TIMEOUT"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("POSTGRES_HOST"),
				Port:     viper.GetString("POSTGRES_PORT"),
				User:     viper.GetString("POSTGRES_USER"),
				Password: viper.GetString("POSTGRES_PASSWORD"),
				DBName:   viper.GetString("POSTGRES_DB"),
				SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
			},
			Redis: RedisConfig{
				URI: viper.GetString("REDIS_URL"),
			},
			JWT: JWTConfig{
				Secret:         viper.GetString("QB_JWT_SECRET"),
				ExpirationTime: viper.GetDuration("QB_JWT_EXPIRE"),
			},
			Minio: MinioConfig{
				Endpoint:  viper.GetString("MINIO_ENDPOINT"),
				AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
				SecretKey: viper.GetString("MINIO_SECRET_KEY"),
				Bucket:    viper.GetString("MINIO_BUCKET"),
			},
			Kafka: KafkaConfig{
				Brokers: viper.GetStringSlice("KAFKA_BROKERS"),
				Topic:   viper.GetString("KAFKA_TOPIC"),
			},
		}
	})

	return ConfigInstance, nil
}

// PostgresURI builds the DSN consumed by the gorm postgres driver.
func (c DatabaseConfig) PostgresURI() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
