package dialog

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Token carries a callback id opaquely through the toolkit while a
// request is outstanding. The toolkit owns it from request time until
// it hands it back in the completion callback.
type Token struct {
	// CallbackID is the caller-chosen correlation id, round-tripped
	// unchanged into the completion event.
	CallbackID int64

	// requestID correlates bridge log events for this request.
	requestID string
}

// tokenTable is the bridge-owned slab of outstanding tokens. It exists
// only to enforce exactly-one-release and to let teardown clear slots;
// the bridge keeps no other per-request state.
type tokenTable struct {
	mu   sync.Mutex
	live map[*Token]struct{}
}

func newTokenTable() *tokenTable {
	return &tokenTable{live: make(map[*Token]struct{})}
}

// register allocates a token for one request.
func (t *tokenTable) register(callbackID int64) *Token {
	tok := &Token{
		CallbackID: callbackID,
		requestID:  ulid.Make().String(),
	}

	t.mu.Lock()
	t.live[tok] = struct{}{}
	t.mu.Unlock()

	metricTokensOutstanding.Inc()
	return tok
}

// lookup resolves the opaque params a completion callback handed back.
// It returns false for values the table never issued or that were
// already released.
func (t *tokenTable) lookup(params any) (*Token, bool) {
	tok, ok := params.(*Token)
	if !ok {
		return nil, false
	}

	t.mu.Lock()
	_, live := t.live[tok]
	t.mu.Unlock()

	if !live {
		return nil, false
	}
	return tok, true
}

// release frees a token. Exactly one release per registration.
func (t *tokenTable) release(tok *Token) bool {
	t.mu.Lock()
	_, live := t.live[tok]
	if live {
		delete(t.live, tok)
	}
	t.mu.Unlock()

	if live {
		metricTokensOutstanding.Dec()
	}
	return live
}

// outstanding returns the number of live tokens.
func (t *tokenTable) outstanding() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// drain clears every slot on bridge teardown. Late callbacks for
// drained tokens are ignored.
func (t *tokenTable) drain() int {
	t.mu.Lock()
	n := len(t.live)
	t.live = make(map[*Token]struct{})
	t.mu.Unlock()

	metricTokensOutstanding.Sub(float64(n))
	return n
}
