package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFile_Watch(t *testing.T) {
	t.Run("reloads on change", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "watched.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: first\n"), 0o600))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		names := make(chan string, 16)
		done := make(chan error, 1)
		go func() {
			done <- NewFile(path).Watch(ctx, func(s *Scenario, err error) {
				if err != nil {
					return
				}
				select {
				case names <- s.Name:
				default:
				}
			})
		}()

		// Keep rewriting until the watcher is up and has seen a write.
		require.Eventually(t, func() bool {
			if err := os.WriteFile(path, []byte("name: second\n"), 0o600); err != nil {
				return false
			}
			select {
			case name := <-names:
				return name == "second"
			case <-time.After(4 * watchDebounce):
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)

		cancel()
		require.ErrorIs(t, <-done, context.Canceled)
	})

	t.Run("reports load errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: ok\n"), 0o600))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errs := make(chan error, 16)
		done := make(chan error, 1)
		go func() {
			done <- NewFile(path).Watch(ctx, func(_ *Scenario, err error) {
				if err == nil {
					return
				}
				select {
				case errs <- err:
				default:
				}
			})
		}()

		var got error
		require.Eventually(t, func() bool {
			if err := os.WriteFile(path, []byte("colour: blue\n"), 0o600); err != nil {
				return false
			}
			select {
			case got = <-errs:
				return true
			case <-time.After(4 * watchDebounce):
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)
		require.Error(t, got)

		cancel()
		<-done
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", "s.yaml")
		err := NewFile(path).Watch(context.Background(), func(*Scenario, error) {})
		require.Error(t, err)
	})
}
