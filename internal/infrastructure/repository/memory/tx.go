package memory

import (
	"context"
	"sync"
)

// store is implemented by the in-memory repositories so a unit of work
// can be undone. snapshot returns a closure that restores the state the
// repository had when snapshot was called.
type store interface {
	snapshot() func()
}

// TxRunner serializes units of work with a single mutex and restores
// the registered stores when a unit of work fails, so a multi-step
// operation is all-or-nothing here as it is on postgres.
type TxRunner struct {
	mu     sync.Mutex
	stores []store
}

func NewTxRunner(stores ...store) *TxRunner {
	return &TxRunner{stores: stores}
}

func (t *TxRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	restores := make([]func(), 0, len(t.stores))
	for _, s := range t.stores {
		restores = append(restores, s.snapshot())
	}

	if err := fn(ctx); err != nil {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
		return err
	}

	return nil
}
