package get_customer_reservations

import (
	"context"

	customerReservations "github.com/nvbit/SLN-SlotService/internal/usecase/get_customer_reservations"
)

type GetCustomerReservationsUseCase interface {
	Execute(ctx context.Context, req *customerReservations.Request) (*customerReservations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
