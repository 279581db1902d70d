package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the client-side cookie carrying the signed session token.
const CookieName = "parlour_session"

const sessionIDBytes = 32

// ErrNoSession signals a missing, expired, or unreadable session.
var ErrNoSession = errors.New("no active session")

// Store is the server-side keyed storage backing sessions. Get returns
// ErrNoSession for unknown keys.
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// Manager issues and resolves sessions. The client holds an HS256-signed
// token naming an opaque session id; all state lives in the store under
// that id, so a token alone leaks nothing and cannot be forged.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates an empty session and returns the signed cookie token, the
// session id, and the fresh state.
func (m *Manager) Issue(ctx context.Context) (string, string, *State, error) {
	sid, err := newSessionID()
	if err != nil {
		return "", "", nil, err
	}

	st := &State{}
	if err := m.Save(ctx, sid, st); err != nil {
		return "", "", nil, err
	}

	token, err := m.signToken(sid)
	if err != nil {
		return "", "", nil, err
	}
	return token, sid, st, nil
}

// Load resolves a cookie token to its session id and stored state. Any
// signature, parse, or lookup failure collapses into ErrNoSession.
func (m *Manager) Load(ctx context.Context, token string) (string, *State, error) {
	sid, err := m.parseToken(token)
	if err != nil {
		return "", nil, ErrNoSession
	}

	raw, err := m.store.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return "", nil, ErrNoSession
		}
		return "", nil, err
	}

	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return "", nil, ErrNoSession
	}
	return sid, &st, nil
}

// Save persists state under the session id and refreshes its lifetime.
func (m *Manager) Save(ctx context.Context, sid string, st *State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, sid, string(raw), m.ttl)
}

// Destroy removes the server-side record; outstanding cookies become dead.
func (m *Manager) Destroy(ctx context.Context, sid string) error {
	return m.store.Del(ctx, sid)
}

func (m *Manager) signToken(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) parseToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrNoSession
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}

func newSessionID() (string, error) {
	bytes := make([]byte, sessionIDBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
