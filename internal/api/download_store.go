package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type quoteDownload struct {
	data      []byte
	fileName  string
	expiresAt time.Time
}

// downloadStore keeps rendered quote documents in memory until the
// clerk downloads them or the TTL lapses.
type downloadStore struct {
	mu    sync.Mutex
	items map[string]quoteDownload
}

func newDownloadStore() *downloadStore {
	return &downloadStore{
		items: make(map[string]quoteDownload),
	}
}

func (s *downloadStore) put(data []byte, fileName string, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = uuid.NewString()
	s.items[token] = quoteDownload{
		data:      data,
		fileName:  fileName,
		expiresAt: time.Now().Add(ttl),
	}
	return token
}

func (s *downloadStore) get(token string) (quoteDownload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return quoteDownload{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		return quoteDownload{}, false
	}
	return v, true
}

func (s *downloadStore) delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

func (s *downloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}
