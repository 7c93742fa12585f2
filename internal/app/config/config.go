package config

import (
	"carebridge-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8000"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			MedicationWorkerCronSpec:   utils.GetEnvString("APP_MEDICATION_WORKER_CRON_SPEC", "5 0 * * *"),
		},
		FHIR: FHIR{
			BaseUrl: utils.GetEnvString("FHIR_BASE_URL", "http://localhost:8080/fhir"),
		},
		Identity: Identity{
			TokenUrl:     utils.GetEnvString("IDENTITY_TOKEN_URL", ""),
			TenantID:     utils.GetEnvString("IDENTITY_TENANT_ID", ""),
			ClientID:     utils.GetEnvString("IDENTITY_CLIENT_ID", ""),
			ClientSecret: utils.GetEnvString("IDENTITY_CLIENT_SECRET", ""),
			Scope:        utils.GetEnvString("IDENTITY_SCOPE", ""),
		},
		Razorpay: Razorpay{
			BaseUrl:   utils.GetEnvString("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1"),
			KeyID:     utils.GetEnvString("RAZORPAY_KEY_ID", ""),
			KeySecret: utils.GetEnvString("RAZORPAY_KEY_SECRET", ""),
		},
		Blob: Blob{
			BucketName:    utils.GetEnvString("BLOB_BUCKET_NAME", "patient-documents"),
			PublicBaseUrl: utils.GetEnvString("BLOB_PUBLIC_BASE_URL", ""),
		},
	}
}
