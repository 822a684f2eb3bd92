package chartstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/kundali/internal/domain/kundali"
)

// ValkeyStore caches chart responses in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "kundali"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// GetResponse implements kundali.Store.
func (s *ValkeyStore) GetResponse(ctx context.Context, fingerprint string) (kundali.Response, bool, error) {
	if fingerprint == "" {
		return kundali.Response{}, false, nil
	}
	cmd := s.client.B().Get().Key(s.entryKey(fingerprint)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return kundali.Response{}, false, nil
		}
		return kundali.Response{}, false, err
	}
	var resp kundali.Response
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return kundali.Response{}, false, err
	}
	return resp, true, nil
}

// SaveResponse implements kundali.Store.
func (s *ValkeyStore) SaveResponse(ctx context.Context, fingerprint string, resp kundali.Response, ttl time.Duration) error {
	if fingerprint == "" {
		return nil
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(fingerprint)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(fingerprint string) string {
	return fmt.Sprintf("%s:chart:%s", s.prefix, fingerprint)
}

var _ kundali.Store = (*ValkeyStore)(nil)
