package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/nocursor/base2"
	pr "github.com/nocursor/base2/provider"
)

var _ pr.Provider = (*Provider)(nil)

// Provider keeps frames in a Ristretto cache. Cost is supplied per Set by the
// store (frame length by default).
type Provider struct {
	c *rc.Cache
}

type Config struct {
	NumCounters int64 // 0 => 10x MaxCost/64
	MaxCost     int64 // required; total frame bytes when cost = len(frame)
	BufferItems int64 // 0 => 64
	Metrics     bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.MaxCost <= 0 || cfg.NumCounters < 0 || cfg.BufferItems < 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: base2.Coalesce(cfg.NumCounters, max(cfg.MaxCost/64, 1)*10),
		MaxCost:     cfg.MaxCost,
		BufferItems: base2.Coalesce[int64](cfg.BufferItems, 64),
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set waits for Ristretto's write buffer so the entry is readable on return.
func (p *Provider) Set(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) (bool, error) {
	if ttl < 0 {
		ttl = 0
	}
	ok := p.c.SetWithTTL(key, value, cost, ttl)
	p.c.Wait()
	return ok, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
