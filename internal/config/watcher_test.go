package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, `foreground = "#000000"`)

	changes := make(chan *Config, 16)
	w := NewWatcher(path, nil, func(cfg *Config) {
		changes <- cfg
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte(`foreground = "#777777"`), 0o600); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	// A single write can surface as several events; wait for the final content.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Foreground == "#777777" {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	path := writeConfig(t, `foreground = "#000000"`)
	w := NewWatcher(path, nil, func(*Config) {})

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop() did not return after cancel")
	}
}
