package routers

import (
	"time"

	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/delivery/http/controllers"
	"carebridge-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Root       *controllers.RootController
	Patient    *controllers.PatientController
	Surgery    *controllers.SurgeryController
	Consent    *controllers.ConsentController
	Checklist  *controllers.ChecklistController
	Booking    *controllers.BookingController
	Billing    *controllers.BillingController
	WatchData  *controllers.WatchDataController
	Medication *controllers.MedicationController
	Rehab      *controllers.RehabController
	Meal       *controllers.MealController
	Payment    *controllers.PaymentController
	Blob       *controllers.BlobController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	ctrl Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(mw.RequestID)
	router.Use(mw.Logging)
	router.Use(mw.BodySizeLimit(internalConfig.App.RequestBodyLimitInMegabyte))

	router.Get("/", ctrl.Root.Root)

	router.Route("/fhir", func(r chi.Router) {
		r.Post("/patient", ctrl.Patient.RegisterPatient)

		r.Post("/surgery", ctrl.Surgery.CreateSurgeries)
		r.Get("/procedures/{uhid}", ctrl.Surgery.GetProcedures)

		r.Post("/consent-form-status", ctrl.Consent.CreateConsentFormStatus)
		r.Get("/consent-form-status/{uhid}", ctrl.Consent.GetConsentFormStatus)
		r.Post("/consent-forms", ctrl.Consent.CreateConsentFormData)
		r.Get("/consent-form/{uhid}", ctrl.Consent.GetConsentFormData)

		r.Post("/preop-checklist", ctrl.Checklist.CreateChecklist)
		r.Get("/preop-checklist", ctrl.Checklist.GetChecklist)
		r.Put("/preop-checklist/update-single", ctrl.Checklist.UpdateSingleDocument)
		r.Delete("/preop-checklist/delete", ctrl.Checklist.DeleteDocuments)

		r.Post("/slot-booking", ctrl.Booking.CreateSlotBooking)
		r.Get("/slot-booking", ctrl.Booking.GetAppointments)

		r.Post("/billing", ctrl.Billing.CreateBillingAccount)
		r.Get("/billing", ctrl.Billing.GetInvoices)

		r.Post("/watch-data", ctrl.WatchData.CreateObservations)
		r.Get("/watch-data", ctrl.WatchData.GetObservations)

		r.Post("/convert-medications", ctrl.Medication.ConvertMedications)
		r.Post("/medications", ctrl.Medication.CreateMedications)
		r.Get("/medications", ctrl.Medication.GetMedications)
		r.Get("/medications/active/{uhid}", ctrl.Medication.GetActiveMedications)
		r.Put("/medications/update-dose/{uhid}", ctrl.Medication.UpdateDose)
		r.Delete("/delete-active-medicine", ctrl.Medication.DeleteActiveMedication)

		r.Post("/meals", ctrl.Meal.CreateMeals)
		r.Get("/meals", ctrl.Meal.GetMeals)
	})

	router.Route("/rehab", func(r chi.Router) {
		r.Post("/exercises", ctrl.Rehab.CreateExercises)
		r.Get("/exercises", ctrl.Rehab.GetExercises)
		r.Get("/exercises/in-progress", ctrl.Rehab.GetInProgressExercises)
		r.Delete("/exercises", ctrl.Rehab.DeleteExercises)
		r.Post("/instructions", ctrl.Rehab.CreateInstructions)
		r.Get("/instructions", ctrl.Rehab.GetInstructions)
	})

	router.Post("/create-order", ctrl.Payment.CreateOrder)
	router.Post("/verify-payment", ctrl.Payment.VerifyPayment)

	router.Post("/upload-image", ctrl.Blob.UploadImage)
	router.Get("/list-blobs", ctrl.Blob.ListBlobs)
}
