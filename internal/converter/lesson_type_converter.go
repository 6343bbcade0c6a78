package converter

import (
	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/domain/billing"
	"lesson-booking-admin/internal/domain/entity"
)

// LessonTypeToResponse converts a LessonType entity to LessonTypeResponse DTO
func LessonTypeToResponse(lessonType *entity.LessonType) *dto.LessonTypeResponse {
	if lessonType == nil {
		return nil
	}

	return &dto.LessonTypeResponse{
		ID:              lessonType.ID,
		Key:             lessonType.Key,
		Name:            lessonType.Name,
		Description:     lessonType.Description,
		Price:           lessonType.Price,
		PriceDisplay:    billing.FormatUSD(lessonType.Price),
		DurationMinutes: lessonType.DurationMinutes,
		IsActive:        lessonType.IsActive == nil || *lessonType.IsActive,
		CreatedAt:       lessonType.CreatedAt,
		UpdatedAt:       lessonType.UpdatedAt,
	}
}

func LessonTypesToResponses(lessonTypes []entity.LessonType) []dto.LessonTypeResponse {
	responses := make([]dto.LessonTypeResponse, len(lessonTypes))
	for i := range lessonTypes {
		responses[i] = *LessonTypeToResponse(&lessonTypes[i])
	}
	return responses
}
