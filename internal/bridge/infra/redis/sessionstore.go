package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

const (
	sessionKeyPrefix = "bridge:session:"
	subjectKeyPrefix = "bridge:subject:"
	scanBatchSize    = 100
)

// sessionStore shares sessions between service instances, expiration is delegated to the redis key ttl
type sessionStore struct {
	client redis.UniversalClient
}

func NewSessionStore(client redis.UniversalClient) domain.SessionStore {
	return sessionStore{client: client}
}

func (s sessionStore) Put(ctx context.Context, session *domain.Session) error {
	encoded, err := json.Marshal(toStoredSession(session))
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := session.ExpiresAt.Sub(session.CreatedAt)
	subjectKey := subjectKey(session.SubjectID)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(session.Token), encoded, ttl)
		pipe.SAdd(ctx, subjectKey, string(session.Token))
		pipe.Expire(ctx, subjectKey, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return nil
}

func (s sessionStore) Get(ctx context.Context, token domain.Token) (*domain.Session, error) {
	encoded, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return decodeSession(encoded)
}

func (s sessionStore) Delete(ctx context.Context, token domain.Token) error {
	err := s.client.Del(ctx, sessionKey(token)).Err()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// DeleteBySubject removes only the tokens it has read from the subject index,
// sessions put concurrently stay indexed for the next revocation
func (s sessionStore) DeleteBySubject(ctx context.Context, subjectID domain.SubjectID) (int, error) {
	subjectKey := subjectKey(subjectID)
	tokens, err := s.client.SMembers(ctx, subjectKey).Result()
	if err != nil {
		return 0, fmt.Errorf("get subject sessions: %w", err)
	}
	if len(tokens) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(tokens))
	members := make([]any, 0, len(tokens))
	for _, token := range tokens {
		keys = append(keys, sessionKey(domain.Token(token)))
		members = append(members, token)
	}

	var deleted *redis.IntCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, keys...)
		pipe.SRem(ctx, subjectKey, members...)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete subject sessions: %w", err)
	}

	return int(deleted.Val()), nil
}

// SweepExpired is a no-op, redis drops the keys once their ttl is over
func (s sessionStore) SweepExpired(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func (s sessionStore) List(ctx context.Context) ([]domain.Session, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan sessions: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	result := make([]domain.Session, 0, len(values))
	for _, value := range values {
		encoded, ok := value.(string)
		if !ok {
			continue // expired between scan and get
		}

		session, err := decodeSession([]byte(encoded))
		if err != nil {
			return nil, err
		}
		result = append(result, *session)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func sessionKey(token domain.Token) string {
	return sessionKeyPrefix + string(token)
}

func subjectKey(subjectID domain.SubjectID) string {
	return subjectKeyPrefix + string(subjectID)
}

func decodeSession(encoded []byte) (*domain.Session, error) {
	var stored storedSession
	err := json.Unmarshal(encoded, &stored)
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return stored.toDomain(), nil
}
