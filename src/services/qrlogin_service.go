package services

import (
	"context"
	"errors"
	"time"

	redis_utils "timevalue/src/utils/redis"

	"github.com/google/uuid"
)

const (
	QRStatusPending   = "pending"
	QRStatusScanned   = "scanned"
	QRStatusConfirmed = "confirmed"
	QRStatusExpired   = "expired"
	QRStatusCancelled = "cancelled"
)

var (
	ErrSessionExpired    = errors.New("qr session expired")
	ErrInvalidTransition = errors.New("invalid qr session transition")
)

// QRSession is the state persisted per login scene while it is alive.
type QRSession struct {
	SceneID   string    `json:"sceneId"`
	Status    string    `json:"status"`
	OpenID    string    `json:"openId"`
	CreatedAt time.Time `json:"createdAt"`
}

// QRSessionStore persists QR sessions with a TTL. Absent keys mean the
// session expired.
type QRSessionStore interface {
	Put(ctx context.Context, session *QRSession, ttl time.Duration) error
	Get(ctx context.Context, sceneID string) (*QRSession, error)
	Delete(ctx context.Context, sceneID string) error
}

type redisQRSessionStore struct {
	redis *redis_utils.RedisHandler
}

func NewRedisQRSessionStore(redis *redis_utils.RedisHandler) QRSessionStore {
	return &redisQRSessionStore{redis: redis}
}

func qrKey(sceneID string) string {
	return "qrlogin:" + sceneID
}

func (s *redisQRSessionStore) Put(ctx context.Context, session *QRSession, ttl time.Duration) error {
	return s.redis.Set(ctx, qrKey(session.SceneID), session, ttl)
}

func (s *redisQRSessionStore) Get(ctx context.Context, sceneID string) (*QRSession, error) {
	var session QRSession
	if err := s.redis.Get(ctx, qrKey(sceneID), &session); err != nil {
		if errors.Is(err, redis_utils.ErrKeyNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	return &session, nil
}

func (s *redisQRSessionStore) Delete(ctx context.Context, sceneID string) error {
	return s.redis.Delete(ctx, qrKey(sceneID))
}

type QRLoginServiceI interface {
	CreateSession(ctx context.Context) (*QRSession, int, error)
	GetSession(ctx context.Context, sceneID string) (*QRSession, error)
	MarkScanned(ctx context.Context, sceneID, openID string) error
	Confirm(ctx context.Context, sceneID string) (*QRSession, error)
	Cancel(ctx context.Context, sceneID string) error
}

// QRLoginService drives the scan-to-login state machine. A session starts
// pending, moves to scanned once the phone reads the code, and to confirmed
// when the user approves. Any live session can be cancelled; sessions that
// outlive their TTL simply disappear from the store and read as expired.
type QRLoginService struct {
	store  QRSessionStore
	expiry time.Duration
	now    func() time.Time
}

func NewQRLoginService(store QRSessionStore, expirySeconds int) *QRLoginService {
	if expirySeconds <= 0 {
		expirySeconds = 300
	}
	return &QRLoginService{
		store:  store,
		expiry: time.Duration(expirySeconds) * time.Second,
		now:    time.Now,
	}
}

func (s *QRLoginService) CreateSession(ctx context.Context) (*QRSession, int, error) {
	session := &QRSession{
		SceneID:   uuid.NewString(),
		Status:    QRStatusPending,
		CreatedAt: s.now(),
	}
	if err := s.store.Put(ctx, session, s.expiry); err != nil {
		return nil, 0, err
	}
	return session, int(s.expiry.Seconds()), nil
}

func (s *QRLoginService) GetSession(ctx context.Context, sceneID string) (*QRSession, error) {
	return s.store.Get(ctx, sceneID)
}

// remainingTTL keeps the original deadline through state updates so that
// rewriting the session never extends its life.
func (s *QRLoginService) remainingTTL(session *QRSession) time.Duration {
	return s.expiry - s.now().Sub(session.CreatedAt)
}

func (s *QRLoginService) MarkScanned(ctx context.Context, sceneID, openID string) error {
	session, err := s.store.Get(ctx, sceneID)
	if err != nil {
		return err
	}
	if session.Status != QRStatusPending {
		return ErrInvalidTransition
	}
	ttl := s.remainingTTL(session)
	if ttl <= 0 {
		return ErrSessionExpired
	}
	session.Status = QRStatusScanned
	session.OpenID = openID
	return s.store.Put(ctx, session, ttl)
}

func (s *QRLoginService) Confirm(ctx context.Context, sceneID string) (*QRSession, error) {
	session, err := s.store.Get(ctx, sceneID)
	if err != nil {
		return nil, err
	}
	if session.Status != QRStatusScanned {
		return nil, ErrInvalidTransition
	}
	ttl := s.remainingTTL(session)
	if ttl <= 0 {
		return nil, ErrSessionExpired
	}
	session.Status = QRStatusConfirmed
	if err := s.store.Put(ctx, session, ttl); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *QRLoginService) Cancel(ctx context.Context, sceneID string) error {
	session, err := s.store.Get(ctx, sceneID)
	if err != nil {
		return err
	}
	if session.Status == QRStatusConfirmed {
		return ErrInvalidTransition
	}
	ttl := s.remainingTTL(session)
	if ttl <= 0 {
		return ErrSessionExpired
	}
	session.Status = QRStatusCancelled
	return s.store.Put(ctx, session, ttl)
}
