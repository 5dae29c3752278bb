package get_available_slots

import (
	"time"

	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date            time.Time // Дата, на которую запрашиваются слоты (без времени)
	DurationMinutes int       // Суммарная длительность выбранных услуг
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time
	DurationMinutes int
	Closed          bool   // Салон закрыт в эту дату
	Slots           []Slot // Все номинальные слоты с признаком доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Свободен ли слот для запрошенной длительности
}
