package services

import (
	"errors"
	"strings"
	"sync"

	"shopfront/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

// AuthService is a mock login: a fixed user table checked with bcrypt and an
// in-memory session map. It supplies (user id, role) to the rest of the app
// and is explicitly not a security boundary.
type AuthService struct {
	mu       sync.RWMutex
	sessions map[string]string // sid -> user id
	users    []mockUser
}

type mockUser struct {
	user domain.User
	hash string
}

func NewAuthService() *AuthService {
	mk := func(id, email, name, role, raw string) mockUser {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
		return mockUser{
			user: domain.User{ID: id, Email: email, Name: name, Role: role},
			hash: string(h),
		}
	}
	return &AuthService{
		sessions: map[string]string{},
		users: []mockUser{
			mk("admin-1", "admin@test.com", "Admin User", domain.RoleAdmin, "admin"),
			mk("user-1", "user@test.com", "Standard User", domain.RoleCustomer, "user"),
		},
	}
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	for _, mu := range s.users {
		if !strings.EqualFold(mu.user.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(mu.hash), []byte(password)) != nil {
			return nil, ErrBadCreds
		}
		s.mu.Lock()
		s.sessions[sid] = mu.user.ID
		s.mu.Unlock()
		u := mu.user
		return &u, nil
	}
	return nil, ErrBadCreds
}

func (s *AuthService) Logout(sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	s.mu.RLock()
	uid, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrBadCreds
	}
	for _, mu := range s.users {
		if mu.user.ID == uid {
			u := mu.user
			return &u, nil
		}
	}
	return nil, ErrBadCreds
}
