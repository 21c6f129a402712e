package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryQRStore struct {
	mu       sync.Mutex
	sessions map[string]QRSession
	expiries map[string]time.Time
	now      func() time.Time
}

func newMemoryQRStore(now func() time.Time) *memoryQRStore {
	return &memoryQRStore{
		sessions: map[string]QRSession{},
		expiries: map[string]time.Time{},
		now:      now,
	}
}

func (s *memoryQRStore) Put(_ context.Context, session *QRSession, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SceneID] = *session
	s.expiries[session.SceneID] = s.now().Add(ttl)
	return nil
}

func (s *memoryQRStore) Get(_ context.Context, sceneID string) (*QRSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sceneID]
	if !ok || s.now().After(s.expiries[sceneID]) {
		return nil, ErrSessionExpired
	}
	return &session, nil
}

func (s *memoryQRStore) Delete(_ context.Context, sceneID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sceneID)
	delete(s.expiries, sceneID)
	return nil
}

func TestQRLoginHappyPath(t *testing.T) {
	ctx := context.Background()
	store := newMemoryQRStore(time.Now)
	service := NewQRLoginService(store, 300)

	session, expiresIn, err := service.CreateSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, QRStatusPending, session.Status)
	assert.Equal(t, 300, expiresIn)
	assert.NotEmpty(t, session.SceneID)

	require.NoError(t, service.MarkScanned(ctx, session.SceneID, "openid-abc"))

	got, err := service.GetSession(ctx, session.SceneID)
	require.NoError(t, err)
	assert.Equal(t, QRStatusScanned, got.Status)
	assert.Equal(t, "openid-abc", got.OpenID)

	confirmed, err := service.Confirm(ctx, session.SceneID)
	require.NoError(t, err)
	assert.Equal(t, QRStatusConfirmed, confirmed.Status)
	assert.Equal(t, "openid-abc", confirmed.OpenID)
}

func TestQRLoginInvalidTransitions(t *testing.T) {
	ctx := context.Background()
	store := newMemoryQRStore(time.Now)
	service := NewQRLoginService(store, 300)

	session, _, err := service.CreateSession(ctx)
	require.NoError(t, err)

	// Cannot confirm before the code is scanned.
	_, err = service.Confirm(ctx, session.SceneID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, service.MarkScanned(ctx, session.SceneID, "openid-abc"))

	// Double scan is rejected.
	err = service.MarkScanned(ctx, session.SceneID, "openid-other")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = service.Confirm(ctx, session.SceneID)
	require.NoError(t, err)

	// A confirmed session can no longer be cancelled.
	err = service.Cancel(ctx, session.SceneID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestQRLoginCancel(t *testing.T) {
	ctx := context.Background()
	store := newMemoryQRStore(time.Now)
	service := NewQRLoginService(store, 300)

	session, _, err := service.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, service.Cancel(ctx, session.SceneID))

	got, err := service.GetSession(ctx, session.SceneID)
	require.NoError(t, err)
	assert.Equal(t, QRStatusCancelled, got.Status)

	// Scans against a cancelled session are rejected.
	err = service.MarkScanned(ctx, session.SceneID, "openid-abc")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestQRLoginExpiry(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return current }
	store := newMemoryQRStore(now)
	service := NewQRLoginService(store, 300)

	session, _, err := service.CreateSession(ctx)
	require.NoError(t, err)

	// Six minutes later the session is gone.
	current = current.Add(6 * time.Minute)
	_, err = service.GetSession(ctx, session.SceneID)
	assert.ErrorIs(t, err, ErrSessionExpired)

	err = service.MarkScanned(ctx, session.SceneID, "openid-abc")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestQRLoginUnknownScene(t *testing.T) {
	ctx := context.Background()
	service := NewQRLoginService(newMemoryQRStore(time.Now), 300)

	_, err := service.GetSession(ctx, "no-such-scene")
	assert.ErrorIs(t, err, ErrSessionExpired)
}
