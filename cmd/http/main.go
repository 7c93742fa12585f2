package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/delivery/http/controllers"
	"carebridge-service/internal/app/delivery/http/middlewares"
	"carebridge-service/internal/app/delivery/http/routers"
	"carebridge-service/internal/app/drivers/database"
	"carebridge-service/internal/app/drivers/logger"
	"carebridge-service/internal/app/drivers/storage"
	"carebridge-service/internal/app/services/core/billing"
	"carebridge-service/internal/app/services/core/blobs"
	"carebridge-service/internal/app/services/core/bookings"
	"carebridge-service/internal/app/services/core/checklists"
	"carebridge-service/internal/app/services/core/consents"
	"carebridge-service/internal/app/services/core/meals"
	"carebridge-service/internal/app/services/core/medications"
	"carebridge-service/internal/app/services/core/patients"
	"carebridge-service/internal/app/services/core/payments"
	"carebridge-service/internal/app/services/core/rehab"
	"carebridge-service/internal/app/services/core/surgeries"
	"carebridge-service/internal/app/services/core/watchdata"
	"carebridge-service/internal/app/services/shared/fhir"
	"carebridge-service/internal/app/services/shared/identity"
	"carebridge-service/internal/app/services/shared/locker"
	"carebridge-service/internal/app/services/shared/payment_gateway"
	redisrepo "carebridge-service/internal/app/services/shared/redis"
	sharedstorage "carebridge-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	worker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	worker.Start(workerCtx)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests to finish before shutdown")

	cancelWorker()
	worker.Stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) *medications.Worker {
	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	tokenProvider := identity.NewTokenProvider(bootstrap.InternalConfig, bootstrap.Logger)
	fhirGateway := fhir.NewFhirGateway(bootstrap.InternalConfig.FHIR.BaseUrl, tokenProvider, bootstrap.Logger)
	razorpayService := payment_gateway.NewRazorpayService(bootstrap.InternalConfig, bootstrap.Logger)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger)

	// Usecases
	patientUsecase := patients.NewPatientUsecase(bootstrap.Logger)
	surgeryUsecase := surgeries.NewSurgeryUsecase(fhirGateway, bootstrap.Logger)
	consentUsecase := consents.NewConsentUsecase(fhirGateway, bootstrap.Logger)
	checklistUsecase := checklists.NewChecklistUsecase(fhirGateway, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(fhirGateway, bootstrap.Logger)
	billingUsecase := billing.NewBillingUsecase(fhirGateway, bootstrap.Logger)
	watchDataUsecase := watchdata.NewWatchDataUsecase(fhirGateway, bootstrap.Logger)
	medicationUsecase := medications.NewMedicationUsecase(fhirGateway, bootstrap.Logger)
	rehabUsecase := rehab.NewRehabUsecase(fhirGateway, bootstrap.Logger)
	mealUsecase := meals.NewMealUsecase(fhirGateway, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(razorpayService, bootstrap.Logger)
	blobUsecase := blobs.NewBlobUsecase(minioStorage, bootstrap.InternalConfig, bootstrap.Logger)

	// Controllers
	ctrl := routers.Controllers{
		Root:       controllers.NewRootController(bootstrap.Logger),
		Patient:    controllers.NewPatientController(bootstrap.Logger, patientUsecase),
		Surgery:    controllers.NewSurgeryController(bootstrap.Logger, surgeryUsecase),
		Consent:    controllers.NewConsentController(bootstrap.Logger, consentUsecase),
		Checklist:  controllers.NewChecklistController(bootstrap.Logger, checklistUsecase),
		Booking:    controllers.NewBookingController(bootstrap.Logger, bookingUsecase),
		Billing:    controllers.NewBillingController(bootstrap.Logger, billingUsecase),
		WatchData:  controllers.NewWatchDataController(bootstrap.Logger, watchDataUsecase),
		Medication: controllers.NewMedicationController(bootstrap.Logger, medicationUsecase),
		Rehab:      controllers.NewRehabController(bootstrap.Logger, rehabUsecase),
		Meal:       controllers.NewMealController(bootstrap.Logger, mealUsecase),
		Payment:    controllers.NewPaymentController(bootstrap.Logger, paymentUsecase),
		Blob:       controllers.NewBlobController(bootstrap.Logger, blobUsecase),
	}

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, ctrl)

	return medications.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockerService, medicationUsecase)
}
