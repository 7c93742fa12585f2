package requests

type PatientLogin struct {
	UHID string `json:"uhid" validate:"required"`
}
