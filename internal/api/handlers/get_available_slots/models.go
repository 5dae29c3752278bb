package get_available_slots

import (
	"github.com/nvbit/SLN-SlotService/internal/domain"
	getAvailableSlots "github.com/nvbit/SLN-SlotService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string `json:"date"`
	DurationMinutes int    `json:"durationMinutes"`
	Closed          bool   `json:"closed"`
	Slots           []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Closed:          resp.Closed,
		Slots:           slots,
	}
}
