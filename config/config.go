package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverS3    = "s3"
	DriverMinio = "minio"
	DriverGCS   = "gcs"
	DriverLocal = "local"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		Storage Storage
		S3      S3
		Minio   Minio
		GCS     GCS
		Local   Local
		Staging Staging
		Upload  Upload
		Kafka   Kafka
		Swagger Swagger
	}

	HTTP struct {
		Port           string `env:"HTTP_PORT" envDefault:"8080"`
		UsePreforkMode bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		BodyLimit      int    `env:"HTTP_BODY_LIMIT" envDefault:"31457280"` // 20MB image after base64
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Storage struct {
		Driver string `env:"STORAGE_DRIVER" envDefault:"s3"`
	}

	S3 struct {
		AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
		Bucket          string `env:"S3_BUCKET"`
		Region          string `env:"S3_REGION" envDefault:"us-east-1"`
		Endpoint        string `env:"S3_ENDPOINT"`
		UsePathStyle    bool   `env:"S3_USE_PATH_STYLE" envDefault:"false"`
	}

	Minio struct {
		Endpoint   string `env:"MINIO_ENDPOINT"`
		AccessKey  string `env:"MINIO_ACCESS_KEY"`
		SecretKey  string `env:"MINIO_SECRET_KEY"`
		Bucket     string `env:"MINIO_BUCKET"`
		UseSSL     bool   `env:"MINIO_USE_SSL" envDefault:"false"`
		PublicBase string `env:"MINIO_PUBLIC_BASE"`
	}

	GCS struct {
		Bucket          string `env:"GCS_BUCKET"`
		CredentialsFile string `env:"GCS_CREDENTIALS_FILE"`
	}

	Local struct {
		BaseDir string `env:"LOCAL_PUBLISH_DIR" envDefault:"./public/published"`
	}

	Staging struct {
		BaseDir string `env:"STAGING_BASE_DIR" envDefault:"./public"`
	}

	Upload struct {
		EnforceValidation bool          `env:"UPLOAD_ENFORCE_VALIDATION" envDefault:"true"`
		Timeout           time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"60s"`
		JPEGQuality       int           `env:"UPLOAD_JPEG_QUALITY" envDefault:"85"`
	}

	Kafka struct {
		Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
		Brokers []string `env:"KAFKA_BROKERS"`
		Topic   string   `env:"KAFKA_TOPIC" envDefault:"images.uploaded"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when KAFKA_ENABLED is set")
	}

	switch c.Storage.Driver {
	case DriverS3:
		return required(
			"S3_ACCESS_KEY_ID", c.S3.AccessKeyID,
			"S3_SECRET_ACCESS_KEY", c.S3.SecretAccessKey,
			"S3_BUCKET", c.S3.Bucket,
		)
	case DriverMinio:
		return required(
			"MINIO_ENDPOINT", c.Minio.Endpoint,
			"MINIO_ACCESS_KEY", c.Minio.AccessKey,
			"MINIO_SECRET_KEY", c.Minio.SecretKey,
			"MINIO_BUCKET", c.Minio.Bucket,
			"MINIO_PUBLIC_BASE", c.Minio.PublicBase,
		)
	case DriverGCS:
		return required("GCS_BUCKET", c.GCS.Bucket)
	case DriverLocal:
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
}

// required takes name/value pairs and reports the first empty value.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("required environment variable %q is not set", pairs[i])
		}
	}

	return nil
}
