package claim_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectoken-labs/ledgerd/internal/claim"
)

// acquire claims issuer for workerID and returns the exclusion list the pick
// callback observed.
func acquire(t *testing.T, r *claim.Registry, workerID, issuer string) []string {
	t.Helper()

	var observed []string
	err := r.Acquire(workerID, func(excluded []string) (string, error) {
		observed = excluded
		return issuer, nil
	})
	require.NoError(t, err)
	return observed
}

func TestRegistry_ExcludesOtherWorkersClaims(t *testing.T) {
	registry := claim.NewRegistry()

	assert.Empty(t, acquire(t, registry, "worker-1", "0xissuerA"))
	assert.Equal(t, []string{"0xissuerA"}, acquire(t, registry, "worker-2", "0xissuerB"))

	// A worker with no claims sees everything claimed by others
	assert.ElementsMatch(t, []string{"0xissuerA", "0xissuerB"}, acquire(t, registry, "worker-3", ""))
}

func TestRegistry_OwnClaimIsNotExcluded(t *testing.T) {
	registry := claim.NewRegistry()

	acquire(t, registry, "worker-1", "0xissuerA")

	assert.Empty(t, acquire(t, registry, "worker-1", "0xissuerA"))
}

func TestRegistry_EmptyPickRecordsNoClaim(t *testing.T) {
	registry := claim.NewRegistry()

	acquire(t, registry, "worker-1", "")

	assert.Empty(t, acquire(t, registry, "worker-2", ""))
}

func TestRegistry_PickErrorRecordsNoClaim(t *testing.T) {
	registry := claim.NewRegistry()

	err := registry.Acquire("worker-1", func([]string) (string, error) {
		return "", assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	assert.Empty(t, acquire(t, registry, "worker-2", ""))
}

func TestRegistry_ReleaseDropsClaim(t *testing.T) {
	registry := claim.NewRegistry()

	acquire(t, registry, "worker-1", "0xissuerA")
	registry.Release("worker-1")

	assert.Empty(t, acquire(t, registry, "worker-2", ""))

	// Releasing twice is harmless
	registry.Release("worker-1")
}

func TestRegistry_ReclaimReplacesIssuer(t *testing.T) {
	registry := claim.NewRegistry()

	acquire(t, registry, "worker-1", "0xissuerA")
	acquire(t, registry, "worker-1", "0xissuerB")

	assert.Equal(t, []string{"0xissuerB"}, acquire(t, registry, "worker-2", ""))
}

// Two workers racing through Acquire must serialize: the second worker's
// query may not start until the first worker's claim is recorded, so the
// second always sees the first issuer in its exclusion list.
func TestRegistry_AcquireHoldsLockAcrossPick(t *testing.T) {
	registry := claim.NewRegistry()

	firstPicking := make(chan struct{})
	firstProceed := make(chan struct{})
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_ = registry.Acquire("worker-1", func([]string) (string, error) {
			close(firstPicking)
			<-firstProceed
			return "0xissuerA", nil
		})
	}()

	<-firstPicking

	var secondExcluded []string
	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		_ = registry.Acquire("worker-2", func(excluded []string) (string, error) {
			secondExcluded = excluded
			return "", nil
		})
	}()

	// The second worker must be blocked while the first holds the registry.
	select {
	case <-secondDone:
		t.Fatal("second acquire ran while the first still held the registry")
	case <-time.After(50 * time.Millisecond):
	}

	close(firstProceed)
	<-firstDone
	<-secondDone

	assert.Equal(t, []string{"0xissuerA"}, secondExcluded)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := claim.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			workerID := fmt.Sprintf("worker-%d", n)
			issuer := fmt.Sprintf("0xissuer%d", n)
			for j := 0; j < 100; j++ {
				err := registry.Acquire(workerID, func([]string) (string, error) {
					return issuer, nil
				})
				if err != nil {
					t.Error(err)
					return
				}
				registry.Release(workerID)
			}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, acquire(t, registry, "worker-final", ""))
}
