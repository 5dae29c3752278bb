package domain

import (
	"time"

	"github.com/nvbit/SLN-SlotService/pkg/types"
)

// ServiceSelection одна выбранная услуга в процессе бронирования
type ServiceSelection struct {
	ServiceID       int64
	SubserviceID    *int64
	Name            string
	DurationMinutes int
	Price           float64
}

// Customer контактные данные клиента, обязательны перед подтверждением
type Customer struct {
	Name  string
	Phone string
	Email string
	Notes *string
}

// BookingRequest is the in-flight state of one customer's booking session.
// It is created when the customer starts the flow, mutated as they advance
// through the steps (service selection -> date/time -> contact info ->
// confirm) and discarded on abandon or successful submission. The session
// layer owns it exclusively; no other component mutates it.
type BookingRequest struct {
	SessionID string
	Services  []ServiceSelection // ordered, non-empty

	// nil until the customer advances past slot selection
	SelectedDate *time.Time
	SelectedTime *types.TimeString

	// HoldID связывает сессию с активным холдом на выбранный слот
	HoldID *string

	Customer *Customer

	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// TotalDuration суммарная длительность всех услуг, определяет ширину конфликта
func (b *BookingRequest) TotalDuration() int {
	total := 0
	for _, s := range b.Services {
		total += s.DurationMinutes
	}
	return total
}

// TotalPrice суммарная стоимость всех услуг
func (b *BookingRequest) TotalPrice() float64 {
	total := 0.0
	for _, s := range b.Services {
		total += s.Price
	}
	return total
}

// ServiceNames возвращает названия услуг для денормализации в бронировании
func (b *BookingRequest) ServiceNames() []string {
	names := make([]string, 0, len(b.Services))
	for _, s := range b.Services {
		names = append(names, s.Name)
	}
	return names
}

// HasSchedule проверяет, что клиент выбрал дату и время
func (b *BookingRequest) HasSchedule() bool {
	return b.SelectedDate != nil && b.SelectedTime != nil
}

// HasCustomer проверяет, что контактные данные заполнены
func (b *BookingRequest) HasCustomer() bool {
	return b.Customer != nil && b.Customer.Name != "" && b.Customer.Phone != ""
}

// IsExpired проверяет, истекла ли сессия к моменту now
func (b *BookingRequest) IsExpired(now time.Time) bool {
	return !now.Before(b.ExpiresAt)
}
