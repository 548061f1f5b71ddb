package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"greenai-backend/internal/domain"
	"greenai-backend/internal/repository"
)

// ChatService encapsula la logica del chat comunitario.
type ChatService struct {
	repo repository.MessageRepository
}

var ErrChatInvalidInput = errors.New("chat invalid input")

func NewChatService(repo repository.MessageRepository) *ChatService {
	return &ChatService{repo: repo}
}

func (s *ChatService) Send(ctx context.Context, name, message string) (domain.ChatMessage, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" || message == "" {
		return domain.ChatMessage{}, ErrChatInvalidInput
	}

	return s.repo.Create(ctx, domain.ChatMessage{
		Name:      name,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (s *ChatService) List(ctx context.Context) ([]domain.ChatMessage, error) {
	return s.repo.ListAll(ctx)
}
