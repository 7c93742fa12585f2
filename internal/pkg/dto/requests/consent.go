package requests

// ConsentFormStatus is the lifecycle record of a consent form. The numeric
// codes are mapped to FHIR vocabularies by the consent mapper; unrecognized
// codes fall back to draft instead of failing, so no oneof restriction here.
type ConsentFormStatus struct {
	Status              int    `json:"status"`
	StatusTimestamp     string `json:"status_timestamp" validate:"required"`
	Approval            int    `json:"approval"`
	ApprovalTimestamp   string `json:"approval_timestamp" validate:"required"`
	Validation          int    `json:"validation"`
	ValidationTimestamp string `json:"validation_timestamp" validate:"required"`
	DocumentURL         string `json:"document_url,omitempty"`
	DocumentCreation    string `json:"document_creation" validate:"required"`
}

type BasicDetails struct {
	FirstName                  string `json:"first_name" validate:"required"`
	LastName                   string `json:"last_name" validate:"required"`
	DateOfBirth                string `json:"date_of_birth" validate:"required"`
	HospitalRegistrationNumber string `json:"hospital_registration_number" validate:"required"`
	ResponsibleAttenderName    string `json:"responsible_attender_name,omitempty"`
	Requirements               string `json:"requirements,omitempty"`
}

type SurgeryDetailsSection struct {
	Indication             string `json:"indication" validate:"required"`
	ExtraProcedures        string `json:"extra_procedures,omitempty"`
	SiteAndSide            string `json:"site_and_side,omitempty"`
	AlternativesConsidered string `json:"alternatives_considered,omitempty"`
}

type RiskItem struct {
	RiskName              string `json:"risk_name" validate:"required"`
	Description           string `json:"description" validate:"required"`
	Likelihood            string `json:"likelihood" validate:"required"`
	FactorsIncreasingRisk string `json:"factors_increasing_risk,omitempty"`
}

type PatientSpecificRisks struct {
	PatientSpecificRisks string `json:"patient_specific_risks,omitempty"`
}

type PatientSpecificConcerns struct {
	BloodTransfusion string `json:"blood_transfusion,omitempty"`
	OtherProcedures  string `json:"other_procedures,omitempty"`
}

type HealthProfessionalStatement struct {
	Name                                    string `json:"name" validate:"required"`
	Date                                    string `json:"date" validate:"required"`
	JobTitle                                string `json:"job_title" validate:"required"`
	Signature                               string `json:"signature,omitempty"`
	PatientInformationLeafletProvided       *bool  `json:"patient_information_leaflet_provided,omitempty"`
	PatientInformationLeafletProvidedDetail string `json:"patient_information_leaflet_provided_details,omitempty"`
	CopyAcceptedByPatient                   *bool  `json:"copy_accepted_by_patient,omitempty"`
}

type PatientStatement struct {
	InterpreterOrWitnessName      string `json:"interpreter_or_witness_name,omitempty"`
	InterpreterOrWitnessSignature string `json:"interpreter_or_witness_signature,omitempty"`
	InformationInterpreted        bool   `json:"information_interpreted"`
}

type AdditionalConsent struct {
	AllowsEducationResearchUse   bool   `json:"allows_education_research_use"`
	AllowsResearchAccessToRecord bool   `json:"allows_research_access_to_records"`
	PregnantRiskConfirmed        *bool  `json:"pregnant_risk_confirmed,omitempty"`
	AdditionalName               string `json:"additional_name" validate:"required"`
	AdditionalDate               string `json:"addittional_date" validate:"required"`
	CaretakerName                string `json:"caretaker_name,omitempty"`
	RelationshipToPatient        string `json:"relationship_to_patient,omitempty"`
	ReasonForSurrogateConsent    string `json:"reason_for_surrogate_consent,omitempty"`
}

type ConsentFormData struct {
	BasicDetails                BasicDetails                 `json:"basic_details" validate:"required"`
	SurgeryDetails              SurgeryDetailsSection        `json:"surgery_details" validate:"required"`
	Risks                       []RiskItem                   `json:"risks,omitempty" validate:"dive"`
	PatientSpecificRisks        *PatientSpecificRisks        `json:"patient_specific_risks,omitempty"`
	PatientSpecificConcerns     *PatientSpecificConcerns     `json:"patient_specific_concerns,omitempty"`
	HealthProfessionalStatement *HealthProfessionalStatement `json:"health_professional_statement,omitempty"`
	PatientStatement            *PatientStatement            `json:"patient_statement,omitempty"`
	AdditionalConsent           *AdditionalConsent           `json:"additional_consent,omitempty"`
}
