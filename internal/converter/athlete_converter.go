package converter

import (
	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/domain/entity"
)

// AthleteToResponse converts an Athlete entity to AthleteResponse DTO
func AthleteToResponse(athlete *entity.Athlete) *dto.AthleteResponse {
	if athlete == nil {
		return nil
	}

	response := &dto.AthleteResponse{
		ID:        athlete.ID,
		ParentID:  athlete.ParentID,
		FirstName: athlete.FirstName,
		LastName:  athlete.LastName,
		FullName:  athlete.FullName(),
		Sport:     athlete.Sport,
		Notes:     athlete.Notes,
		CreatedAt: athlete.CreatedAt,
		UpdatedAt: athlete.UpdatedAt,
	}

	if athlete.DateOfBirth != nil {
		response.DateOfBirth = athlete.DateOfBirth.Format("2006-01-02")
	}

	// Include parent info if available
	if athlete.Parent != nil && athlete.Parent.ID != 0 {
		response.Parent = &dto.ParentResponse{
			ID:        athlete.Parent.ID,
			FullName:  athlete.Parent.FullName,
			Email:     athlete.Parent.Email,
			Phone:     athlete.Parent.Phone,
			CreatedAt: athlete.Parent.CreatedAt,
			UpdatedAt: athlete.Parent.UpdatedAt,
		}
	}

	return response
}

func AthletesToResponses(athletes []entity.Athlete) []dto.AthleteResponse {
	responses := make([]dto.AthleteResponse, len(athletes))
	for i := range athletes {
		responses[i] = *AthleteToResponse(&athletes[i])
	}
	return responses
}
