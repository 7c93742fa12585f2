package constvars

const (
	RootWelcomeMessage = "use '/docs' endpoint to find all the api related docs"
)

const (
	SurgeryPostedSuccessfully        = "FHIR resources posted successfully."
	ConsentStatusPostedSuccessfully  = "Consent form status posted successfully."
	ConsentFormPostedSuccessfully    = "Structured consent form posted successfully."
	ChecklistPostedSuccessfully      = "All DocumentReference resources posted successfully."
	AppointmentBookedSuccessfully    = "Appointment booked successfully."
	BillingAccountPostedSuccessfully = "Billing Account posted successfully."
	PaymentVerifiedSuccessfully      = "Payment verified successfully"
	ObservationsPostedSuccessfully   = "%d Observations posted successfully."
	MedicationsPostedSuccessfully    = "%d active MedicationRequest(s) posted successfully."
	MedicationsUpdatedSuccessfully   = "%d medication(s) updated for tablet '%s'."
	MedicinesDeletedSuccessfully     = "Deleted %d record(s) successfully."
	ExercisesPostedSuccessfully      = "%d exercise(s) posted successfully."
	ExercisesDeletedSuccessfully     = "Deleted %d exercise(s) named '%s' for UHID %s."
	InstructionsPostedSuccessfully   = "%d instruction(s) posted successfully."
	MealsPostedSuccessfully          = "%d meal(s) posted successfully."
	DocumentsDeletedSuccessfully     = "Deleted %d document(s) successfully."
	DocumentUpdatedSuccessfully      = "Document '%s' updated successfully."
)
