package holds

import "errors"

var (
	// ErrHoldNotFound возвращается, когда холд не существует или уже снят
	ErrHoldNotFound = errors.New("holds: hold not found")

	// ErrHoldExpired возвращается при обращении к холду с истекшим TTL
	ErrHoldExpired = errors.New("holds: hold has expired")

	// ErrSlotHeld возвращается при попытке захватить слот, пересекающийся с активным холдом
	ErrSlotHeld = errors.New("holds: slot is already held")

	// ErrInvalidHold возвращается при некорректных параметрах холда
	ErrInvalidHold = errors.New("holds: invalid hold parameters")
)
