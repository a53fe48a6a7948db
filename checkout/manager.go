package checkout

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/premstore/storefront-api/models"
)

var ErrSessionNotFound = errors.New("checkout: session not found")

// Retention windows for the sweep: placed sessions and claimed idempotency
// keys are dropped once clients can no longer reasonably retry them.
const (
	sessionRetention = time.Hour
	idemKeyRetention = 24 * time.Hour
)

type idemClaim struct {
	orderID string
	at      time.Time
}

// Manager tracks live checkout sessions and the idempotency keys of completed
// placements.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idemKeys map[string]idemClaim
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		idemKeys: make(map[string]idemClaim),
	}
}

// Start creates and registers a session for the user.
func (m *Manager) Start(userID string, direct *models.Product, cartLines []LineItem) *Session {
	session := NewSession(uuid.NewString(), userID, direct, cartLines)

	m.mu.Lock()
	m.sweepLocked(time.Now())
	m.sessions[session.ID()] = session
	m.mu.Unlock()
	return session
}

// sweepLocked evicts placed sessions and stale idempotency keys past their
// retention windows. Amortized onto Start so no background goroutine is
// needed.
func (m *Manager) sweepLocked(now time.Time) {
	for id, session := range m.sessions {
		if placed, at := session.finished(); placed && now.Sub(at) > sessionRetention {
			delete(m.sessions, id)
		}
	}
	for key, claim := range m.idemKeys {
		if now.Sub(claim.at) > idemKeyRetention {
			delete(m.idemKeys, key)
		}
	}
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// IdempotentOrder reports whether the key already belongs to a completed
// placement, returning that order's id so a duplicate request can be answered
// with the original order instead of placing a second one.
func (m *Manager) IdempotentOrder(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	claim, ok := m.idemKeys[key]
	return claim.orderID, ok
}

// ClaimIdempotencyKey records a key for a placement that succeeded. Keys must
// only be claimed after the store accepted the order: claiming earlier would
// burn the key on a failed placement and turn the client's retry into a
// phantom success.
func (m *Manager) ClaimIdempotencyKey(key, orderID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.idemKeys[key]; ok {
		return
	}
	m.idemKeys[key] = idemClaim{orderID: orderID, at: time.Now()}
}
