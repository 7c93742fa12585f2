package requests

type SlotBooking struct {
	Date             string `json:"date" validate:"required"`
	Time             string `json:"time" validate:"required"`
	BookingTimestamp string `json:"booking_timestamp" validate:"required"`
}
