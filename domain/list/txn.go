package list

import "arenalist/infra/logging"

// txn is the undo log of a bulk mutation. Steps run newest first.
type txn struct {
	undo []func()
}

func (t *txn) push(fn func()) {
	t.undo = append(t.undo, fn)
}

func (t *txn) rollback(op string, cause error) {
	logging.Logger().Debug("list: rolling back", "op", op, "steps", len(t.undo), "cause", cause)
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}
