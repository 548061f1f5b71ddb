package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"greenai-backend/internal/domain"
)

type mockUserRepo struct {
	usersByID map[int64]domain.UserDetails
	idByEmail map[string]int64
	nextID    int64
	active    *mockActiveRepo
}

func newMockUserRepo(active *mockActiveRepo) *mockUserRepo {
	return &mockUserRepo{
		usersByID: make(map[int64]domain.UserDetails),
		idByEmail: make(map[string]int64),
		active:    active,
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.UserDetails) (int64, error) {
	m.nextID++
	user.ID = m.nextID
	m.usersByID[user.ID] = user
	m.idByEmail[user.Email] = user.ID
	return user.ID, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.UserDetails, error) {
	id, ok := m.idByEmail[email]
	if !ok {
		return domain.UserDetails{}, pgx.ErrNoRows
	}
	return m.usersByID[id], nil
}

func (m *mockUserRepo) Update(_ context.Context, user domain.UserDetails) error {
	prev, ok := m.usersByID[user.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(m.idByEmail, prev.Email)
	m.usersByID[user.ID] = user
	m.idByEmail[user.Email] = user.ID
	return nil
}

func (m *mockUserRepo) UpdateWithActiveEmail(ctx context.Context, user domain.UserDetails, activeID int64) error {
	if err := m.Update(ctx, user); err != nil {
		return err
	}
	if m.active == nil {
		return nil
	}
	for i := range m.active.sessions {
		if m.active.sessions[i].ID == activeID {
			m.active.sessions[i].Email = user.Email
			return nil
		}
	}
	return pgx.ErrNoRows
}

type mockActiveRepo struct {
	sessions []domain.ActiveSession
	nextID   int64
}

func newMockActiveRepo() *mockActiveRepo {
	return &mockActiveRepo{}
}

func (m *mockActiveRepo) Create(_ context.Context, email string) (domain.ActiveSession, error) {
	m.nextID++
	session := domain.ActiveSession{ID: m.nextID, Email: email}
	m.sessions = append(m.sessions, session)
	return session, nil
}

func (m *mockActiveRepo) GetByEmail(_ context.Context, email string) (domain.ActiveSession, error) {
	for _, s := range m.sessions {
		if s.Email == email {
			return s, nil
		}
	}
	return domain.ActiveSession{}, pgx.ErrNoRows
}

func (m *mockActiveRepo) GetLatest(_ context.Context) (domain.ActiveSession, error) {
	if len(m.sessions) == 0 {
		return domain.ActiveSession{}, pgx.ErrNoRows
	}
	latest := m.sessions[0]
	for _, s := range m.sessions[1:] {
		if s.ID > latest.ID {
			latest = s
		}
	}
	return latest, nil
}

type mockEmailSender struct {
	lastTo   string
	lastCode string
	sent     int
	err      error
}

func (m *mockEmailSender) SendOTP(_ context.Context, toEmail string, code string) error {
	m.lastTo = toEmail
	m.lastCode = code
	m.sent++
	return m.err
}
