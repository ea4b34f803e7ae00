package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/enokjanuario/primeholding/internal/client/api"
	"github.com/enokjanuario/primeholding/internal/client/models"
	"github.com/enokjanuario/primeholding/internal/logging"
)

// State is the session lifecycle position.
type State int

const (
	// StateInitializing: the one-time startup check is still running.
	StateInitializing State = iota
	// StateAnonymous: nobody is logged in.
	StateAnonymous
	// StateAuthenticating: a login call is outstanding.
	StateAuthenticating
	// StateAuthenticated: a profile is loaded.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Snapshot is the externally observable session state. It is recomputed on
// every transition, never mutated in place, and is the sole input to the
// route guard.
type Snapshot struct {
	State State
	User  *models.Investidor
	Err   string
	// CheckedAt is when the profile was last confirmed with the backend.
	CheckedAt time.Time
}

// Loading reports whether a session-mutating network call is outstanding.
func (s Snapshot) Loading() bool {
	return s.State == StateInitializing || s.State == StateAuthenticating
}

// Authenticated reports whether a user is logged in.
func (s Snapshot) Authenticated() bool { return s.User != nil }

var (
	// ErrNotAuthenticated: the operation needs a logged-in session.
	ErrNotAuthenticated = errors.New("nenhuma sessão ativa")

	// ErrIdentityChanged: a refresh returned a different principal than the
	// one logged in. The backend broke the session contract; the stale
	// profile is kept and the caller should force a re-login.
	ErrIdentityChanged = errors.New("identidade da sessão mudou")
)

// Context is the process-wide authority for "who is logged in right now".
//
// It is safe for concurrent use. Each mutating operation captures a
// generation counter before its network call and discards the result if a
// logout (or a newer login) superseded it meanwhile.
type Context struct {
	svc   Service
	clock clockwork.Clock
	log   logging.Logger

	mu        sync.Mutex
	state     State
	user      *models.Investidor
	errMsg    string
	checkedAt time.Time
	gen       uint64
	subs      map[int]func(Snapshot)
	nextSub   int

	initOnce sync.Once
}

type ContextOption func(*Context)

func WithClock(c clockwork.Clock) ContextOption {
	return func(sc *Context) { sc.clock = c }
}

func WithContextLogger(l logging.Logger) ContextOption {
	return func(sc *Context) { sc.log = l }
}

// NewContext creates the session context in StateInitializing. Call
// Initialize to run the one-time startup check.
func NewContext(svc Service, opts ...ContextOption) *Context {
	sc := &Context{
		svc:   svc,
		clock: clockwork.NewRealClock(),
		log:   logging.Nop(),
		state: StateInitializing,
		subs:  map[int]func(Snapshot){},
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Snapshot returns the current observable state.
func (sc *Context) Snapshot() Snapshot {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.snapshotLocked()
}

func (sc *Context) snapshotLocked() Snapshot {
	return Snapshot{State: sc.state, User: sc.user, Err: sc.errMsg, CheckedAt: sc.checkedAt}
}

// Subscribe registers fn to be called with the fresh snapshot after every
// transition. The returned function unsubscribes.
func (sc *Context) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	sc.mu.Lock()
	id := sc.nextSub
	sc.nextSub++
	sc.subs[id] = fn
	sc.mu.Unlock()

	return func() {
		sc.mu.Lock()
		delete(sc.subs, id)
		sc.mu.Unlock()
	}
}

// notifyLocked snapshots the observer list; the caller must invoke the
// returned closure after releasing the lock.
func (sc *Context) notifyLocked() func() {
	snap := sc.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(sc.subs))
	for _, fn := range sc.subs {
		fns = append(fns, fn)
	}
	return func() {
		for _, fn := range fns {
			fn(snap)
		}
	}
}

// Initialize runs the automatic startup transition exactly once per context
// lifetime: with no stored credential the state becomes Anonymous without
// any network call; otherwise the profile is fetched, and any failure ends
// the stored session silently.
func (sc *Context) Initialize(ctx context.Context) {
	sc.initOnce.Do(func() { sc.initialize(ctx) })
}

func (sc *Context) initialize(ctx context.Context) {
	sc.mu.Lock()
	if !sc.svc.HasCredential() {
		sc.state = StateAnonymous
		notify := sc.notifyLocked()
		sc.mu.Unlock()
		notify()
		return
	}
	myGen := sc.gen
	sc.mu.Unlock()

	user, err := sc.svc.CurrentUser(ctx)

	sc.mu.Lock()
	if sc.gen != myGen {
		// A logout (or login) happened while the check was in flight.
		sc.mu.Unlock()
		return
	}
	if err != nil {
		// Expired or rejected credential on startup is the normal silent
		// path: drop it and come up anonymous, no error surfaced.
		sc.log.Info(ctx, "stored session rejected", "error", err)
		sc.svc.Logout()
		sc.state = StateAnonymous
		sc.user = nil
	} else {
		sc.state = StateAuthenticated
		sc.user = user
		sc.checkedAt = sc.clock.Now()
	}
	notify := sc.notifyLocked()
	sc.mu.Unlock()
	notify()
}

// Login authenticates and, on success, transitions to Authenticated. On
// failure the state returns to Anonymous with the failure message surfaced
// in the snapshot, and the error is propagated to the caller.
func (sc *Context) Login(ctx context.Context, email, senha string) error {
	sc.mu.Lock()
	sc.gen++
	myGen := sc.gen
	sc.state = StateAuthenticating
	sc.errMsg = ""
	notify := sc.notifyLocked()
	sc.mu.Unlock()
	notify()

	user, err := sc.svc.Login(ctx, email, senha)

	sc.mu.Lock()
	if sc.gen != myGen {
		// Superseded by a logout or a newer login; this resolution must not
		// move the state.
		sc.mu.Unlock()
		return err
	}
	if err != nil {
		sc.state = StateAnonymous
		sc.user = nil
		sc.errMsg = err.Error()
	} else {
		sc.state = StateAuthenticated
		sc.user = user
		sc.errMsg = ""
		sc.checkedAt = sc.clock.Now()
	}
	notify = sc.notifyLocked()
	sc.mu.Unlock()
	notify()
	return err
}

// Logout ends the session synchronously: the credential is cleared locally
// and the state becomes Anonymous. Calling it repeatedly is harmless. Any
// in-flight login or refresh resolution is invalidated.
func (sc *Context) Logout() {
	sc.mu.Lock()
	sc.gen++
	sc.state = StateAnonymous
	sc.user = nil
	sc.errMsg = ""
	sc.svc.Logout()
	notify := sc.notifyLocked()
	sc.mu.Unlock()
	notify()
}

// RefreshUser re-fetches the current profile and replaces it wholesale.
// A rejected credential ends the session silently (no snapshot error);
// other failures are returned to the caller with the state untouched.
// The principal's identity must be stable across refreshes.
func (sc *Context) RefreshUser(ctx context.Context) (*models.Investidor, error) {
	sc.mu.Lock()
	if sc.state != StateAuthenticated || sc.user == nil {
		sc.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	myGen := sc.gen
	currentID := sc.user.ID
	sc.mu.Unlock()

	user, err := sc.svc.CurrentUser(ctx)

	sc.mu.Lock()
	if sc.gen != myGen {
		sc.mu.Unlock()
		return nil, err
	}
	if err != nil {
		if errors.Is(err, api.ErrUnauthenticated) {
			// Session expired: forced logout, nothing surfaced to the UI.
			sc.log.Info(ctx, "session expired")
			sc.svc.Logout()
			sc.state = StateAnonymous
			sc.user = nil
			sc.errMsg = ""
			notify := sc.notifyLocked()
			sc.mu.Unlock()
			notify()
			return nil, err
		}
		sc.mu.Unlock()
		return nil, err
	}
	if user.ID != currentID {
		sc.log.Error(ctx, "identity changed on refresh", "was", currentID, "got", user.ID)
		sc.mu.Unlock()
		return nil, ErrIdentityChanged
	}
	sc.user = user
	sc.checkedAt = sc.clock.Now()
	notify := sc.notifyLocked()
	sc.mu.Unlock()
	notify()
	return user, nil
}

// ClearError drops the surfaced error without otherwise altering state.
func (sc *Context) ClearError() {
	sc.mu.Lock()
	sc.errMsg = ""
	notify := sc.notifyLocked()
	sc.mu.Unlock()
	notify()
}
