package converter

import (
	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/domain/billing"
	"lesson-booking-admin/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO, deriving the
// money figures against the lesson-type catalog
func BookingToResponse(booking *entity.Booking, catalog *billing.Catalog) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	figures := booking.Figures(catalog)

	response := &dto.BookingResponse{
		ID:                booking.ID,
		AthleteID:         booking.AthleteID,
		ParentID:          booking.ParentID,
		LessonTypeID:      booking.LessonTypeID,
		LessonType:        booking.LessonType,
		LessonTypeName:    lessonTypeName(booking, catalog),
		Amount:            booking.Amount,
		PaymentStatus:     booking.CurrentPaymentStatus().OrUnpaid(),
		AttendanceStatus:  string(booking.AttendanceStatus),
		Archived:          booking.IsArchived(),
		StartTime:         booking.StartTime,
		EndTime:           booking.EndTime,
		Notes:             booking.Notes,
		TotalPrice:        figures.TotalPrice,
		PaidAmount:        figures.PaidAmount,
		BalanceDue:        figures.BalanceDue,
		TotalPriceDisplay: billing.FormatUSD(figures.TotalPrice),
		PaidAmountDisplay: billing.FormatUSD(figures.PaidAmount),
		BalanceDueDisplay: billing.FormatUSD(figures.BalanceDue),
		NextPaymentStatus: figures.NextPaymentStatus,
		CreatedAt:         booking.CreatedAt,
		UpdatedAt:         booking.UpdatedAt,
	}

	// Include athlete info if available
	if booking.Athlete != nil && booking.Athlete.ID != 0 {
		response.Athlete = &dto.BookingAthleteResponse{
			ID:       booking.Athlete.ID,
			FullName: booking.Athlete.FullName(),
		}
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking, catalog *billing.Catalog) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i], catalog)
	}
	return responses
}

func lessonTypeName(booking *entity.Booking, catalog *billing.Catalog) string {
	if booking.LessonTypeID != nil {
		if entry, ok := catalog.ByID(*booking.LessonTypeID); ok {
			return entry.Name
		}
		if booking.CatalogLessonType != nil {
			return booking.CatalogLessonType.Name
		}
	}
	return booking.LessonType.DisplayName()
}
