package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Minio          *minio.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		FHIR     FHIR
		Identity Identity
		Razorpay Razorpay
		Blob     Blob
	}

	DriverConfig struct {
		Redis  Redis
		Minio  Minio
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Timezone                   string
		MaxRequests                int
		MaxTimeRequestsPerSeconds  int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		MedicationWorkerCronSpec   string
	}

	FHIR struct {
		BaseUrl string
	}

	// Identity holds the client-credentials grant settings for the FHIR
	// tenant's identity service.
	Identity struct {
		TokenUrl     string
		TenantID     string
		ClientID     string
		ClientSecret string
		Scope        string
	}

	Razorpay struct {
		BaseUrl   string
		KeyID     string
		KeySecret string
	}

	Blob struct {
		BucketName    string
		PublicBaseUrl string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
