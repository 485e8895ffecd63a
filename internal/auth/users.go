// Package auth implements the user store consumed by the presentation layer.
package auth

import (
	"strings"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/port"
)

type manager struct {
	mu    sync.RWMutex
	users map[string]domain.User // keyed by username
}

func New() port.UserStore {
	return &manager{users: make(map[string]domain.User)}
}

func (m *manager) Register(u domain.User) error {
	if strings.TrimSpace(u.Username) == "" {
		return domain.InvalidInputf("username cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[u.Username]; exists {
		return domain.InvalidInputf("username %q already exists", u.Username)
	}
	m.users[u.Username] = u
	return nil
}

func (m *manager) Login(username, password string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, domain.AuthFailedf("username and password cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[username]
	if !ok {
		return domain.User{}, domain.AuthFailedf("user %q not found", username)
	}
	if u.Password != password {
		return domain.User{}, domain.AuthFailedf("invalid password")
	}
	return u, nil
}
