package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/petaline/storefront/internal/domain/model"
)

// Session is an identity handle: the cart owner plus the logged-in user, if
// any. The id is not a security token.
type Session struct {
	ID   uuid.UUID
	User *model.User
}

// Holder tracks at most one logged-in user. The session id stays stable for
// the process lifetime so the cart survives login and logout, matching the
// single-visitor model.
type Holder struct {
	mu      sync.Mutex
	current Session
}

// NewHolder creates a holder with a fresh anonymous session.
func NewHolder() *Holder {
	return &Holder{current: Session{ID: uuid.New()}}
}

// Current returns the active session.
func (h *Holder) Current() Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Attach binds the user to the active session.
func (h *Holder) Attach(user *model.User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current.User = user
}

// Detach logs the user out, keeping the session and its cart.
func (h *Holder) Detach() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current.User = nil
}

// UserLogin returns the logged-in user's login, or false when anonymous.
func (h *Holder) UserLogin() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current.User == nil {
		return "", false
	}
	return h.current.User.Login, true
}

// IsAdmin reports whether the logged-in user is an administrator.
func (h *Holder) IsAdmin() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current.User != nil && h.current.User.IsAdmin
}
