// Package store keeps values as base2 text in a pluggable byte Provider.
//
// A value goes through Codec to bytes, through base2 to text, and is framed
// (internal/wire) with its padding and original byte length. The length makes
// even PadNone entries read back exactly.
//
// Keys:
//
//	b2:<ns>:<key>
//
// Reads self-heal: a frame that fails validation, text that is not valid
// base2, or a payload the codec rejects is deleted and reported as a miss.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nocursor/base2"
	"github.com/nocursor/base2/codec"
	"github.com/nocursor/base2/internal/util"
	"github.com/nocursor/base2/internal/wire"
	pr "github.com/nocursor/base2/provider"
)

const defaultTTL = 10 * time.Minute

// CostFunc reports the provider cost of a frame. Default: len(frame).
type CostFunc func(storageKey string, frame []byte) int64

// Options tune a Store. Namespace, Provider and Codec are required.
type Options[V any] struct {
	Namespace string // e.g. "user", "session"
	Provider  pr.Provider
	Codec     codec.Codec[V]

	Padding     base2.Padding // default PadZeroes
	Logger      base2.Logger  // if nil, NopLogger is used
	Hooks       Hooks         // if nil, NopHooks is used
	DefaultTTL  time.Duration // 0 => 10m
	MaxTextLen  int           // stored text longer than this is dropped on read; 0 => unlimited
	ComputeCost CostFunc
	Disabled    bool
}

type Store[V any] struct {
	ns          string
	provider    pr.Provider
	codec       codec.Codec[V]
	enc         *base2.Encoding
	log         base2.Logger
	hooks       Hooks
	enabled     bool
	defaultTTL  time.Duration
	computeCost CostFunc
}

func New[V any](opts Options[V]) (*Store[V], error) {
	if opts.Provider == nil {
		return nil, errors.New("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, errors.New("store: codec is required")
	}
	if opts.Namespace == "" {
		return nil, errors.New("store: namespace is required")
	}

	log := base2.Coalesce[base2.Logger](opts.Logger, base2.NopLogger{})
	enc, err := base2.New(base2.Options{
		Padding:      opts.Padding,
		Logger:       log,
		MaxDecodeLen: opts.MaxTextLen,
	})
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	s := &Store[V]{
		ns:          opts.Namespace,
		provider:    opts.Provider,
		codec:       opts.Codec,
		enc:         enc,
		log:         log,
		hooks:       base2.Coalesce[Hooks](opts.Hooks, NopHooks{}),
		enabled:     !opts.Disabled,
		defaultTTL:  base2.Coalesce(opts.DefaultTTL, defaultTTL),
		computeCost: opts.ComputeCost,
	}
	if s.computeCost == nil {
		s.computeCost = func(_ string, frame []byte) int64 { return int64(len(frame)) }
	}
	return s, nil
}

func (s *Store[V]) Enabled() bool          { return s.enabled }
func (s *Store[V]) Padding() base2.Padding { return s.enc.Padding() }

func (s *Store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *Store[V]) key(k string) string { return util.StorageKey(s.ns, k) }

// Put stores v under key. ttl == 0 uses DefaultTTL. A write refused by the
// provider under pressure is reported through Hooks, not as an error.
func (s *Store[V]) Put(ctx context.Context, key string, v V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	payload, err := s.codec.Encode(v)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	frame, err := wire.Encode(s.enc.Padding(), len(payload), s.enc.Encode(payload))
	if err != nil {
		return fmt.Errorf("store: frame %q: %w", key, err)
	}

	k := s.key(key)
	ok, err := s.provider.Set(ctx, k, frame, s.computeCost(k, frame), ttl)
	if err != nil {
		s.hooks.ProviderError("set", k, err)
		return err
	}
	if !ok {
		s.hooks.SetRejected(k)
		s.log.Debug("put rejected by provider (pressure)", base2.Fields{"key": key})
	}
	return nil
}

// Get returns the value stored under key. Entries that fail validation are
// deleted and reported as a miss.
func (s *Store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	k := s.key(key)
	_, payload, ok, err := s.loadPayload(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.selfHeal(ctx, k, "value_decode")
		return zero, false, nil
	}
	return v, true, nil
}

// GetText returns the stored base2 text of key. The text is validated like
// Get does, but the codec is not run.
func (s *Store[V]) GetText(ctx context.Context, key string) (string, bool, error) {
	e, _, ok, err := s.loadPayload(ctx, s.key(key))
	if err != nil || !ok {
		return "", false, err
	}
	return e.Text, true, nil
}

func (s *Store[V]) Delete(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	k := s.key(key)
	if err := s.provider.Del(ctx, k); err != nil {
		s.hooks.ProviderError("del", k, err)
		return err
	}
	return nil
}

func (s *Store[V]) load(ctx context.Context, k string) (wire.Entry, bool, error) {
	if !s.enabled {
		return wire.Entry{}, false, nil
	}
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		s.hooks.ProviderError("get", k, err)
		return wire.Entry{}, false, err
	}
	if !ok {
		return wire.Entry{}, false, nil
	}
	e, err := wire.Decode(raw)
	if err != nil {
		s.selfHeal(ctx, k, "corrupt")
		return wire.Entry{}, false, nil
	}
	return e, true, nil
}

// loadPayload loads the frame under k and decodes its text back to the
// original payload bytes, self-healing on any failure.
func (s *Store[V]) loadPayload(ctx context.Context, k string) (wire.Entry, []byte, bool, error) {
	e, ok, err := s.load(ctx, k)
	if err != nil || !ok {
		return wire.Entry{}, nil, false, err
	}
	payload, err := s.enc.Decode(e.Text)
	if err != nil {
		reason := "invalid_base2"
		if errors.Is(err, base2.ErrInputTooLarge) {
			reason = "too_large"
		}
		s.selfHeal(ctx, k, reason)
		return wire.Entry{}, nil, false, nil
	}
	payload, ok = restoreLen(payload, e)
	if !ok {
		s.selfHeal(ctx, k, "corrupt")
		return wire.Entry{}, nil, false, nil
	}
	return e, payload, true, nil
}

func (s *Store[V]) selfHeal(ctx context.Context, k, reason string) {
	_ = s.provider.Del(ctx, k)
	s.hooks.SelfHeal(k, reason)
	s.log.Debug("dropped invalid entry", base2.Fields{"key": k, "reason": reason})
}

// restoreLen puts back leading zero bytes that PadNone text does not carry.
// Transparent paddings must already decode to exactly e.ByteLen bytes.
func restoreLen(b []byte, e wire.Entry) ([]byte, bool) {
	switch {
	case len(b) == e.ByteLen:
		return b, true
	case len(b) > e.ByteLen || e.Padding.Transparent():
		return nil, false
	}
	out := make([]byte, e.ByteLen)
	copy(out[e.ByteLen-len(b):], b)
	return out, true
}
