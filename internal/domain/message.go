package domain

import "time"

// ChatMessage es un mensaje del chat comunitario.
type ChatMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
