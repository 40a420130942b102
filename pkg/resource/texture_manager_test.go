package resource

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegistryCachesByName(t *testing.T) {
	loads := 0
	reg := NewRegistry(func(path string) (*Texture, error) {
		loads++
		return NewTexture(uint32(loads), 64, 64), nil
	})

	first, err := reg.Add("wood.png", "wood")
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	second, err := reg.Add("wood.png", "wood")
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if loads != 1 {
		t.Errorf("expected 1 load, got %d", loads)
	}
	if first != second {
		t.Error("cache hit returned a different texture instance")
	}

	got, ok := reg.Get("wood")
	if !ok {
		t.Fatal("registered texture not found by name")
	}
	if got != first {
		t.Error("lookup returned a different texture instance")
	}
}

func TestRegistryLoaderError(t *testing.T) {
	wantErr := fmt.Errorf("decode failed")
	reg := NewRegistry(func(string) (*Texture, error) {
		return nil, wantErr
	})

	if _, err := reg.Add("broken.png", "broken"); !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped loader error, got %v", err)
	}
	if _, ok := reg.Get("broken"); ok {
		t.Error("failed load must not register the name")
	}
}

func TestRegistryWithoutLoader(t *testing.T) {
	reg := NewRegistry(nil)

	if _, err := reg.Add("any.png", "any"); !errors.Is(err, ErrNoLoader) {
		t.Errorf("expected ErrNoLoader, got %v", err)
	}

	tex := NewTexture(3, 16, 16)
	reg.Register("builtin", tex)
	got, err := reg.Add("ignored.png", "builtin")
	if err != nil {
		t.Fatalf("add for pre-registered name failed: %v", err)
	}
	if got != tex {
		t.Error("pre-registered texture not served from cache")
	}
}

func TestGlobalManagerSwap(t *testing.T) {
	orig := GlobalManager()
	defer SetGlobalManager(orig)

	reg := NewRegistry(nil)
	reg.Register("grid", NewTexture(1, 8, 8))
	SetGlobalManager(reg)

	if _, ok := GlobalManager().Get("grid"); !ok {
		t.Error("global manager lookup missed a registered texture")
	}
}
