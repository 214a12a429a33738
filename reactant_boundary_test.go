package reactant

import (
	"errors"
	"sync"
	"testing"

	"github.com/antlr-labs/reactant/internal"
	"github.com/stretchr/testify/assert"
)

func TestErrorBoundary(t *testing.T) {
	t.Run("renders content while nothing fails", func(t *testing.T) {
		count := NewSignal(1)

		b := ErrorBoundary(
			func() int { return count.Read() * 10 },
			func(err error) int { return -1 },
		)

		assert.Equal(t, 10, b.Read())

		count.Write(2)
		assert.Equal(t, 20, b.Read())
	})

	t.Run("switches to fallback when a dependency is in error", func(t *testing.T) {
		boom := errors.New("boom")
		failing := NewAsyncComputed(func() (int, error) { return 0, boom })

		resolved := make(chan struct{})
		closeResolved := sync.OnceFunc(func() { close(resolved) })
		NewEffect(func() {
			defer func() {
				// a Pending read retries on its own once settled; only a
				// terminal StatusError means failing has actually resolved
				if _, ok := recover().(*internal.StatusError); ok {
					closeResolved()
				}
			}()
			failing.Read()
		})
		<-resolved

		b := ErrorBoundary(
			func() int { return failing.Read() },
			func(err error) int {
				assert.ErrorIs(t, err, boom)
				return -1
			},
		)

		assert.Equal(t, -1, b.Read())
	})
}

func TestSuspense(t *testing.T) {
	t.Run("renders content when nothing is pending", func(t *testing.T) {
		count := NewSignal(5)

		b := Suspense(
			func() int { return count.Read() },
			func() int { return -1 },
		)

		assert.Equal(t, 5, b.Read())
	})

	t.Run("renders fallback while an async dependency is pending, then content", func(t *testing.T) {
		release := make(chan struct{})
		ac := NewAsyncComputed(func() (int, error) {
			<-release
			return 99, nil
		})

		b := Suspense(
			func() int { return ac.Read() },
			func() int { return -1 },
		)

		assert.Equal(t, -1, b.Read())

		resolved := make(chan struct{})
		NewEffect(func() {
			if b.Read() == 99 {
				close(resolved)
			}
		})

		close(release)
		<-resolved

		assert.Equal(t, 99, b.Read())
	})
}
