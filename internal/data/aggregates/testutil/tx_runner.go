package testutil

import (
	"context"
	"sync"

	"github.com/yungbote/storefront-backend/internal/data/aggregates"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
)

// InjectedTxRunner wraps a TxRunner and injects failures around its body.
// A nil Inner runs fn without a transaction.
type InjectedTxRunner struct {
	Inner aggregates.TxRunner

	FailBegin  error
	FailCommit error

	mu            sync.Mutex
	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.BeginCalls++
	failBegin, failCommit := r.FailBegin, r.FailCommit
	r.mu.Unlock()

	if failBegin != nil {
		return failBegin
	}

	body := func(dbc dbctx.Context) error {
		if fn != nil {
			if err := fn(dbc); err != nil {
				return err
			}
		}
		// Returning the commit failure from inside Inner rolls its tx back.
		return failCommit
	}

	var err error
	if r.Inner != nil {
		err = r.Inner.InTx(ctx, body)
	} else {
		err = body(dbctx.Context{Ctx: ctx})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.RollbackCalls++
		return err
	}
	r.CommitCalls++
	return nil
}

func (r *InjectedTxRunner) Counts() (begin, commit, rollback int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.BeginCalls, r.CommitCalls, r.RollbackCalls
}
