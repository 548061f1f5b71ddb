package domain

import "time"

// Reminder es un recordatorio de cuidado de cultivo.
// El cliente envía la fecha como "dd/mm/yyyy" y la hora como "HH:MM".
type Reminder struct {
	ID           int64
	UserID       int64
	ReminderType string
	CropType     string
	Date         time.Time
	Time         time.Time
	IntervalType string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	ReminderDateLayout = "02/01/2006"
	ReminderTimeLayout = "15:04"
)

// ReminderView es la forma JSON del recordatorio que consume el cliente.
type ReminderView struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	ReminderType string    `json:"reminder_type"`
	CropType     string    `json:"crop_type"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	IntervalType string    `json:"interval_type"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// View serializa fecha y hora con los formatos del cliente.
func (r Reminder) View() ReminderView {
	return ReminderView{
		ID:           r.ID,
		UserID:       r.UserID,
		ReminderType: r.ReminderType,
		CropType:     r.CropType,
		Date:         r.Date.Format("2006-01-02"),
		Time:         r.Time.Format(ReminderTimeLayout),
		IntervalType: r.IntervalType,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
