package backend

import (
	"testing"

	"github.com/gogpu/rawshade"
)

func TestSoftwareBackendName(t *testing.T) {
	b := NewSoftwareBackend()
	if b.Name() != "software" {
		t.Errorf("Name() = %q, want %q", b.Name(), "software")
	}
}

func TestSoftwareBackendInit(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b.Close()
}

func TestSoftwareBackendCanAccelerate(t *testing.T) {
	b := NewSoftwareBackend()
	if b.CanAccelerate(100, 100) {
		t.Error("software backend should never report it can accelerate")
	}
}

func TestSoftwareBackendDispatchFallsBack(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	target := &rawshade.ShadeTarget{Width: 4, Height: 4, Stride: 16, Data: make([]byte, 64)}
	err := b.Dispatch(target, rawshade.TileInputs{})
	if err != rawshade.ErrFallbackToCPU {
		t.Errorf("Dispatch() error = %v, want ErrFallbackToCPU", err)
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Software backend is auto-registered via init()
	if !IsRegistered("software") {
		t.Error("software backend should be auto-registered")
	}

	b := Get("software")
	if b == nil {
		t.Fatal("Get(software) returned nil")
	}
	if b.Name() != "software" {
		t.Errorf("Get(software).Name() = %q, want %q", b.Name(), "software")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	b := Get("nonexistent")
	if b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := Available()
	found := false
	for _, name := range available {
		if name == "software" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'software'")
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	// Software should be the default when no GPU backend is registered.
	if b.Name() != "software" {
		t.Logf("Default() returned %q (may vary based on available backends)", b.Name())
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	b := MustDefault()
	if b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	if b == nil {
		t.Fatal("InitDefault() returned nil backend")
	}
	defer b.Close()

	if b.CanAccelerate(100, 100) {
		t.Log("default backend reports it can accelerate")
	}
}

func TestRegistryUnregister(t *testing.T) {
	testFactory := func() Backend {
		return &SoftwareBackend{}
	}
	Register("test-backend", testFactory)

	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")

	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}

func TestRegistryIsRegistered(t *testing.T) {
	if !IsRegistered("software") {
		t.Error("software should be registered")
	}
	if IsRegistered("nonexistent") {
		t.Error("nonexistent should not be registered")
	}
}

func TestSoftwareBackendClose(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b.Close()
}

// Benchmark tests

func BenchmarkSoftwareBackendDispatch(b *testing.B) {
	backend := NewSoftwareBackend()
	_ = backend.Init()
	defer backend.Close()

	target := &rawshade.ShadeTarget{Width: 800, Height: 600, Stride: 3200, Data: make([]byte, 800*600*4)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = backend.Dispatch(target, rawshade.TileInputs{})
	}
}
