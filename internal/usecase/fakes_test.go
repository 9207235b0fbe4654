package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"labour-market/internal/data/entity"

	"github.com/google/uuid"
)

var (
	errSessionGone = errors.New("session not found or already revoked")
	errBookingGone = errors.New("booking not found")
)

// In-memory repository fakes backing the service tests.

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *memSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.Token.String()] = &copied
	return nil
}

func (r *memSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (r *memSessionRepo) Revoke(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok || session.RevokedAt != nil {
		return errSessionGone
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

func (r *memSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, session := range r.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (r *memSessionRepo) CleanExpiredSessions(_ context.Context) error {
	return nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*entity.LabourerProfile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[uuid.UUID]*entity.LabourerProfile)}
}

func (r *memProfileRepo) Create(_ context.Context, profile *entity.LabourerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *memProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.LabourerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile, ok := r.profiles[userID]; ok {
		copied := *profile
		return &copied, nil
	}
	return nil, nil
}

func (r *memProfileRepo) Upsert(_ context.Context, profile *entity.LabourerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *profile
	if existing, ok := r.profiles[profile.UserID]; ok {
		copied.ID = existing.ID
		copied.CreatedAt = existing.CreatedAt
	}
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *memProfileRepo) FindAll(_ context.Context) ([]*entity.LabourerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.LabourerProfile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		copied := *profile
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memProfileRepo) Search(_ context.Context, skill, availability string) ([]*entity.LabourerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.LabourerProfile
	for _, profile := range r.profiles {
		if strings.Contains(strings.ToLower(profile.Skills), strings.ToLower(skill)) &&
			strings.Contains(strings.ToLower(profile.Availability), strings.ToLower(availability)) {
			copied := *profile
			out = append(out, &copied)
		}
	}
	return out, nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (r *memBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking, ok := r.bookings[id]; ok {
		copied := *booking
		return &copied, nil
	}
	return nil, nil
}

func (r *memBookingRepo) FindByLabourerID(_ context.Context, labourerID uuid.UUID) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Booking
	for _, booking := range r.bookings {
		if booking.LabourerID == labourerID {
			copied := *booking
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[bookingID]
	if !ok {
		return errBookingGone
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

// Collaborator fakes.

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) sentTo() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

type fakeAssistant struct {
	reply string
	err   error
	asked []string
}

func (a *fakeAssistant) Complete(_ context.Context, _, userMessage string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.asked = append(a.asked, userMessage)
	return a.reply, nil
}
