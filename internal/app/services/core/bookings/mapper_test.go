package bookings

import (
	"testing"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentResource(t *testing.T) {
	slot := &requests.SlotBooking{
		Date:             "2025-06-10",
		Time:             "14:30:00",
		BookingTimestamp: "2025-06-01T09:00:00",
	}

	appointment := AppointmentResource("UHID001", slot)

	assert.Equal(t, "booked", appointment.Status)
	assert.Equal(t, "2025-06-10T14:30:00", appointment.Start)
	require.Len(t, appointment.Participant, 1)
	assert.Equal(t, "Patient/UHID001", appointment.Participant[0].Actor.Reference)
	assert.Equal(t, "accepted", appointment.Participant[0].Status)
}

func TestSimplifyAppointment(t *testing.T) {
	t.Run("complete entry", func(t *testing.T) {
		appointment := &fhir_dto.Appointment{
			Start:       "2025-06-10T14:30:00",
			Description: appointmentDescription,
			Created:     "2025-06-01T09:00:00",
			Participant: []fhir_dto.AppointmentParticipant{
				{Actor: &fhir_dto.Reference{Display: "Dr. Rao"}},
				{Actor: &fhir_dto.Reference{Reference: "Patient/UHID001"}},
				{Actor: nil},
			},
		}

		summary, ok := SimplifyAppointment(appointment)

		require.True(t, ok)
		assert.Equal(t, []string{"Dr. Rao", "Patient/UHID001"}, summary.Participants)
	})

	t.Run("missing start is skipped", func(t *testing.T) {
		_, ok := SimplifyAppointment(&fhir_dto.Appointment{Description: appointmentDescription})
		assert.False(t, ok)
	})

	t.Run("missing description is skipped", func(t *testing.T) {
		_, ok := SimplifyAppointment(&fhir_dto.Appointment{Start: "2025-06-10T14:30:00"})
		assert.False(t, ok)
	})
}
