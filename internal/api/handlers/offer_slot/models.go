package offer_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
)

// localDateTimeLayout формат без часового пояса, трактуется как UTC
const localDateTimeLayout = "2006-01-02T15:04"

// OfferSlotRequest HTTP запрос на добавление слота
type OfferSlotRequest struct {
	ProfessionalID  string `json:"professionalId"`
	StartTime       string `json:"startTime"` // RFC 3339 или YYYY-MM-DDTHH:MM
	DurationMinutes int    `json:"durationMinutes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *OfferSlotRequest) ToServiceRequest() (*models.OfferSlotRequest, error) {
	start, err := parseStartTime(r.StartTime)
	if err != nil {
		return nil, err
	}
	return &models.OfferSlotRequest{
		ProfessionalID:  r.ProfessionalID,
		StartTime:       start,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

func parseStartTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(localDateTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse startTime %q: %w", value, err)
	}
	return t, nil
}
