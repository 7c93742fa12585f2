package constvars

const (
	ResourcePatient           = "Patient"
	ResourceProcedure         = "Procedure"
	ResourceConsent           = "Consent"
	ResourceDocumentReference = "DocumentReference"
	ResourceAppointment       = "Appointment"
	ResourceAccount           = "Account"
	ResourceObservation       = "Observation"
	ResourceMedicationRequest = "MedicationRequest"
	ResourceTask              = "Task"
	ResourceNutritionOrder    = "NutritionOrder"
	ResourceBundle            = "Bundle"
)

// Identifier systems joining every resource kind back to the patient record.
const (
	IdentifierSystemUHID    = "https://hospital.com/uhid"
	IdentifierSystemInvoice = "https://hospital.com/invoice"
)

const FhirBaseProfile = "http://hl7.org/fhir/StructureDefinition"

// Internal meta.tag codes distinguishing the two Consent payload shapes
// stored under the same resource type.
const (
	ConsentTagSystem     = "https://hospital.com/consent-tag"
	ConsentTagFormData   = "ConsentFormData"
	ConsentTagFormStatus = "ConsentFormStatus"
)

const (
	ConsentStatusDraft    = "draft"
	ConsentStatusActive   = "active"
	ConsentStatusRejected = "rejected"

	ConsentProvisionPermit = "permit"
	ConsentProvisionDeny   = "deny"
)

const (
	MedicationStatusActive    = "active"
	MedicationStatusCompleted = "completed"

	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

const (
	BundleTypeTransaction = "transaction"
	BundleLinkRelNext     = "next"
)

const RehabInstructionCode = "Rehabilitation Instruction"
