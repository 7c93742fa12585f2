package requests

type SurgeryDetails struct {
	SurgeryID   string `json:"surgery_id" validate:"required"`
	SurgeryType string `json:"surgery_type" validate:"required"`
	VideoLink   string `json:"video_link,omitempty"`
	ContentLink string `json:"content_link,omitempty"`
}
