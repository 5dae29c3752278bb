package cancel_reservation

// Request запрос на отмену бронирования
type Request struct {
	ReservationID int64
	Reason        string
}
