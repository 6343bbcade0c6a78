package converter

import (
	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/domain/entity"
)

// ParentToResponse converts a Parent entity to ParentResponse DTO
func ParentToResponse(parent *entity.Parent) *dto.ParentResponse {
	if parent == nil {
		return nil
	}

	response := &dto.ParentResponse{
		ID:        parent.ID,
		FullName:  parent.FullName,
		Email:     parent.Email,
		Phone:     parent.Phone,
		CreatedAt: parent.CreatedAt,
		UpdatedAt: parent.UpdatedAt,
	}

	if len(parent.Athletes) > 0 {
		response.Athletes = AthletesToResponses(parent.Athletes)
	}

	return response
}

func ParentsToResponses(parents []entity.Parent) []dto.ParentResponse {
	responses := make([]dto.ParentResponse, len(parents))
	for i := range parents {
		responses[i] = *ParentToResponse(&parents[i])
	}
	return responses
}
