package ristretto

import (
	"bytes"
	"context"
	"testing"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{MaxCost: 1 << 20})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close(ctx)

	val := []byte("0000000000000001")
	if ok, err := p.Set(ctx, "k", val, int64(len(val)), 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "k")
	if err != nil || !ok || !bytes.Equal(got, val) {
		t.Fatalf("Get: %q ok=%v err=%v", got, ok, err)
	}
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error without MaxCost")
	}
	if _, err := New(Config{MaxCost: 10, BufferItems: -1}); err == nil {
		t.Fatalf("expected error for negative BufferItems")
	}
}
