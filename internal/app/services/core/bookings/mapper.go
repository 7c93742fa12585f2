package bookings

import (
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/fhir_dto"
)

const appointmentDescription = "Surgery Slot Booking"

func AppointmentResource(uhid string, slot *requests.SlotBooking) *fhir_dto.Appointment {
	return &fhir_dto.Appointment{
		ResourceType: constvars.ResourceAppointment,
		Identifier: []fhir_dto.Identifier{
			{System: constvars.IdentifierSystemUHID, Value: uhid},
		},
		Status:      "booked",
		Description: appointmentDescription,
		Start:       slot.Date + "T" + slot.Time,
		Created:     slot.BookingTimestamp,
		Participant: []fhir_dto.AppointmentParticipant{
			{
				Actor:  &fhir_dto.Reference{Reference: constvars.ResourcePatient + "/" + uhid},
				Status: "accepted",
			},
		},
	}
}

// SimplifyAppointment flattens an Appointment for the booking list. The
// boolean is false for incomplete entries, which the caller skips.
func SimplifyAppointment(appointment *fhir_dto.Appointment) (responses.AppointmentSummary, bool) {
	if appointment.Start == "" || appointment.Description == "" {
		return responses.AppointmentSummary{}, false
	}

	participants := make([]string, 0, len(appointment.Participant))
	for _, participant := range appointment.Participant {
		if participant.Actor == nil {
			continue
		}
		if participant.Actor.Display != "" {
			participants = append(participants, participant.Actor.Display)
		} else {
			participants = append(participants, participant.Actor.Reference)
		}
	}

	return responses.AppointmentSummary{
		Start:        appointment.Start,
		Description:  appointment.Description,
		Created:      appointment.Created,
		Participants: participants,
	}, true
}
