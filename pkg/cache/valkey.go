package cache

import (
	"context"
	"encoding/json"
	"time"

	valkey "github.com/valkey-io/valkey-go"

	"github.com/tubone24/eiga-miyou/internal/model"
)

// Valkey implements ResultCache on a Valkey server, for deployments where
// several instances should share one scrape cache. Entries are stored as
// JSON under the same keys the in-memory backing uses; TTL and memory
// bounds are delegated to the server.
type Valkey struct {
	c   valkey.Client
	ttl time.Duration
}

func NewValkey(addr, password string, ttl time.Duration) (*Valkey, error) {
	opts := valkey.ClientOption{InitAddress: []string{addr}}
	if password != "" {
		opts.Username = "default"
		opts.Password = password
	}
	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Valkey{c: client, ttl: ttl}, nil
}

func (v *Valkey) Get(ctx context.Context, key string) (model.ScrapeResult, bool) {
	res := v.c.Do(ctx, v.c.B().Get().Key(key).Build())
	if res.Error() != nil {
		return model.ScrapeResult{}, false
	}
	raw, err := res.AsBytes()
	if err != nil {
		return model.ScrapeResult{}, false
	}
	var out model.ScrapeResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.ScrapeResult{}, false
	}
	return out, true
}

func (v *Valkey) Set(ctx context.Context, key string, result model.ScrapeResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	res := v.c.Do(ctx, v.c.B().Set().Key(key).Value(string(raw)).ExSeconds(int64(v.ttl/time.Second)).Build())
	return res.Error()
}

// SweepExpired is a no-op: Valkey expires keys server-side.
func (v *Valkey) SweepExpired(context.Context) {}
