package requests

const (
	DosePeriodMorning   = "morning"
	DosePeriodAfternoon = "afternoon"
	DosePeriodNight     = "night"
)

type DoseEntry struct {
	Day            string `json:"day" validate:"required"`
	Period         string `json:"period" validate:"required,dose_period"`
	TakenTimestamp string `json:"taken_timestamp,omitempty"`
}

type TabletPrescriptionEntry struct {
	TabletName      string      `json:"tablet_name" validate:"required"`
	Dosage          string      `json:"dosage" validate:"required"`
	BeforeFood      bool        `json:"before_food"`
	PrescribedDate  string      `json:"prescribed_date" validate:"required"`
	DurationDays    int         `json:"duration_days" validate:"gt=0"`
	SchedulePattern string      `json:"schedule_pattern" validate:"required,schedule_pattern"`
	DosesTaken      []DoseEntry `json:"doses_taken,omitempty" validate:"dive"`
	Completed       int         `json:"completed"`
}

type TabletPrescribed struct {
	Tablets []TabletPrescriptionEntry `json:"tablets" validate:"required,min=1,dive"`
}

type UpdateDoseRequest struct {
	TabletName     string `json:"tablet_name" validate:"required"`
	DoseDay        string `json:"dose_day" validate:"required"`
	DosePeriod     string `json:"dose_period" validate:"required,dose_period"`
	TakenTimestamp string `json:"taken_timestamp,omitempty"`
}
