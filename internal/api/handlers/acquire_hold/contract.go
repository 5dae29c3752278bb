package acquire_hold

import (
	"context"

	acquireHold "github.com/nvbit/SLN-SlotService/internal/usecase/acquire_hold"
)

type AcquireHoldUseCase interface {
	Execute(ctx context.Context, req *acquireHold.Request) (*acquireHold.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
