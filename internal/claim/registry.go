package claim

import (
	"sync"
)

// Registry tracks which issuer each batch worker is currently processing so
// concurrent workers never act on the same issuer's account at once. Claims
// are in-memory per process; the deployment runs one process per batch kind.
type Registry struct {
	mu     sync.Mutex
	claims map[string]string // worker ID -> claimed issuer address
}

// NewRegistry creates an empty claim registry
func NewRegistry() *Registry {
	return &Registry{claims: make(map[string]string)}
}

// Acquire runs pick under the registry mutex, passing it the issuers other
// workers currently hold, and records the claim for the issuer pick returns.
// The mutex stays held across the work query and the claim record, so two
// workers can never both be handed the same issuer's work between querying
// and claiming. pick returns the empty string when it found nothing.
func (r *Registry) Acquire(workerID string, pick func(excludedIssuers []string) (string, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var excluded []string
	for worker, issuer := range r.claims {
		if worker != workerID {
			excluded = append(excluded, issuer)
		}
	}

	issuer, err := pick(excluded)
	if err != nil {
		return err
	}
	if issuer != "" {
		r.claims[workerID] = issuer
	}
	return nil
}

// Release drops the worker's claim. It must run whether the work item
// succeeded or failed.
func (r *Registry) Release(workerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.claims, workerID)
}
