package next_available_slot

import (
	"context"

	nextAvailableSlot "github.com/nvbit/SLN-SlotService/internal/usecase/next_available_slot"
)

type NextAvailableSlotUseCase interface {
	Execute(ctx context.Context, req *nextAvailableSlot.Request) (*nextAvailableSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
