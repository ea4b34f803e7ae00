package session

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/enokjanuario/primeholding/internal/client/api"
	"github.com/enokjanuario/primeholding/internal/client/models"
)

// fakeService implements Service with scriptable results. The optional
// hooks run inside the faked network call, which lets a test interleave a
// logout while a login or refresh is "in flight".
type fakeService struct {
	LoginRet  *models.Investidor
	LoginErr  error
	LoginHook func()

	CurrentRet  *models.Investidor
	CurrentErr  error
	CurrentHook func()

	HasCredentialRet bool

	LoginCalls   int
	CurrentCalls int
	LogoutCalls  int
}

func (f *fakeService) Login(ctx context.Context, email, senha string) (*models.Investidor, error) {
	f.LoginCalls++
	if f.LoginHook != nil {
		f.LoginHook()
	}
	return f.LoginRet, f.LoginErr
}

func (f *fakeService) CurrentUser(ctx context.Context) (*models.Investidor, error) {
	f.CurrentCalls++
	if f.CurrentHook != nil {
		f.CurrentHook()
	}
	return f.CurrentRet, f.CurrentErr
}

func (f *fakeService) ChangePassword(ctx context.Context, senhaAtual, novaSenha string) error {
	return nil
}

func (f *fakeService) RecoverPassword(ctx context.Context, email string) error { return nil }

func (f *fakeService) Logout() {
	f.LogoutCalls++
	f.HasCredentialRet = false
}

func (f *fakeService) HasCredential() bool { return f.HasCredentialRet }

func anaFixture() *models.Investidor {
	return &models.Investidor{ID: "inv-1", Nome: "Ana", Email: "ana@example.com"}
}

func TestNewContext_StartsInitializing(t *testing.T) {
	sc := NewContext(&fakeService{})
	snap := sc.Snapshot()
	require.Equal(t, StateInitializing, snap.State)
	require.True(t, snap.Loading())
	require.False(t, snap.Authenticated())
}

func TestInitialize_NoCredential_AnonymousWithoutNetwork(t *testing.T) {
	fs := &fakeService{}
	sc := NewContext(fs)

	sc.Initialize(context.Background())

	require.Equal(t, StateAnonymous, sc.Snapshot().State)
	require.Zero(t, fs.CurrentCalls)
}

func TestInitialize_ValidCredential_Authenticated(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fs := &fakeService{HasCredentialRet: true, CurrentRet: anaFixture()}
	sc := NewContext(fs, WithClock(clock))

	sc.Initialize(context.Background())

	snap := sc.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.Equal(t, "inv-1", snap.User.ID)
	require.Equal(t, clock.Now(), snap.CheckedAt)
}

func TestInitialize_RejectedCredential_SilentAnonymous(t *testing.T) {
	fs := &fakeService{
		HasCredentialRet: true,
		CurrentErr:       &api.Error{Status: 401, Message: "token expirado", Kind: api.ErrUnauthenticated},
	}
	sc := NewContext(fs)

	sc.Initialize(context.Background())

	snap := sc.Snapshot()
	require.Equal(t, StateAnonymous, snap.State)
	require.Empty(t, snap.Err)
	require.Equal(t, 1, fs.LogoutCalls)
}

func TestInitialize_RunsOnlyOnce(t *testing.T) {
	fs := &fakeService{HasCredentialRet: true, CurrentRet: anaFixture()}
	sc := NewContext(fs)

	sc.Initialize(context.Background())
	sc.Initialize(context.Background())

	require.Equal(t, 1, fs.CurrentCalls)
}

func TestLogin_Success(t *testing.T) {
	fs := &fakeService{LoginRet: anaFixture()}
	sc := NewContext(fs)
	sc.Initialize(context.Background())

	var states []State
	unsub := sc.Subscribe(func(s Snapshot) { states = append(states, s.State) })
	defer unsub()

	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))

	snap := sc.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.Equal(t, "inv-1", snap.User.ID)
	require.Equal(t, []State{StateAuthenticating, StateAuthenticated}, states)
}

func TestLogin_Failure_AnonymousWithMessage(t *testing.T) {
	fs := &fakeService{LoginErr: &api.Error{Status: 401, Message: "credenciais inválidas", Kind: api.ErrInvalidCredentials}}
	sc := NewContext(fs)
	sc.Initialize(context.Background())

	err := sc.Login(context.Background(), "ana@example.com", "errada")
	require.ErrorIs(t, err, api.ErrInvalidCredentials)

	snap := sc.Snapshot()
	require.Equal(t, StateAnonymous, snap.State)
	require.Nil(t, snap.User)
	require.Equal(t, "credenciais inválidas", snap.Err)
}

func TestLogin_PreviousErrorClearedOnRetry(t *testing.T) {
	fs := &fakeService{LoginErr: &api.Error{Status: 401, Message: "credenciais inválidas", Kind: api.ErrInvalidCredentials}}
	sc := NewContext(fs)
	sc.Initialize(context.Background())

	_ = sc.Login(context.Background(), "ana@example.com", "errada")
	require.NotEmpty(t, sc.Snapshot().Err)

	fs.LoginErr = nil
	fs.LoginRet = anaFixture()
	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))
	require.Empty(t, sc.Snapshot().Err)
}

func TestLogout_Idempotent(t *testing.T) {
	fs := &fakeService{LoginRet: anaFixture()}
	sc := NewContext(fs)
	sc.Initialize(context.Background())
	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))

	sc.Logout()
	first := sc.Snapshot()
	sc.Logout()
	sc.Logout()
	last := sc.Snapshot()

	require.Equal(t, StateAnonymous, first.State)
	require.Equal(t, first.State, last.State)
	require.Nil(t, last.User)
	require.Empty(t, last.Err)
	require.Equal(t, 3, fs.LogoutCalls)
}

func TestLogin_SupersededByLogout_ResultDiscarded(t *testing.T) {
	fs := &fakeService{LoginRet: anaFixture()}
	sc := NewContext(fs)
	sc.Initialize(context.Background())

	// The user logs out while the login response is still on the wire.
	fs.LoginHook = func() { sc.Logout() }

	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))

	snap := sc.Snapshot()
	require.Equal(t, StateAnonymous, snap.State)
	require.Nil(t, snap.User)
}

func TestLogin_SupersededByNewerLogin_FirstResultDiscarded(t *testing.T) {
	ana := anaFixture()
	bia := &models.Investidor{ID: "inv-2", Nome: "Bia", Email: "bia@example.com"}

	fs := &fakeService{}
	sc := NewContext(fs)
	sc.Initialize(context.Background())

	fs.LoginRet = ana
	fs.LoginHook = func() {
		// The second attempt starts and finishes while the first resolves.
		fs.LoginHook = nil
		fs.LoginRet = bia
		require.NoError(t, sc.Login(context.Background(), "bia@example.com", "Senha@123"))
		fs.LoginRet = ana
	}

	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))

	// The newer attempt's profile must win.
	require.Equal(t, "inv-2", sc.Snapshot().User.ID)
}

func TestRefreshUser_NotAuthenticated(t *testing.T) {
	sc := NewContext(&fakeService{})
	sc.Initialize(context.Background())

	_, err := sc.RefreshUser(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRefreshUser_Success_ReplacesProfile(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fs := &fakeService{LoginRet: anaFixture()}
	sc := NewContext(fs, WithClock(clock))
	sc.Initialize(context.Background())
	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))
	loginCheck := sc.Snapshot().CheckedAt

	clock.Advance(5 * time.Minute)
	updated := anaFixture()
	updated.Nome = "Ana Maria"
	fs.CurrentRet = updated

	user, err := sc.RefreshUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", user.Nome)

	snap := sc.Snapshot()
	require.Equal(t, "Ana Maria", snap.User.Nome)
	require.Equal(t, loginCheck.Add(5*time.Minute), snap.CheckedAt)
}

func TestRefreshUser_Expired_ForcedSilentLogout(t *testing.T) {
	fs := &fakeService{LoginRet: anaFixture()}
	sc := NewContext(fs)
	sc.Initialize(context.Background())
	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))

	fs.CurrentErr = &api.Error{Status: 401, Message: "token expirado", Kind: api.ErrUnauthenticated}

	_, err := sc.RefreshUser(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthenticated)

	snap := sc.Snapshot()
	require.Equal(t, StateAnonymous, snap.State)
	require.Nil(t, snap.User)
	require.Empty(t, snap.Err)
	require.Equal(t, 1, fs.LogoutCalls)
}

func TestRefreshUser_NetworkFailure_StateKept(t *testing.T) {
	fs := &fakeService{LoginRet: anaFixture()}
	sc := NewContext(fs)
	sc.Initialize(context.Background())
	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))

	fs.CurrentErr = &api.Error{Status: 0, Message: "erro de conexão com o servidor", Kind: api.ErrNetwork}

	_, err := sc.RefreshUser(context.Background())
	require.ErrorIs(t, err, api.ErrNetwork)

	snap := sc.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.Equal(t, "inv-1", snap.User.ID)
	require.Zero(t, fs.LogoutCalls)
}

func TestRefreshUser_IdentityChanged_KeepsOldProfile(t *testing.T) {
	fs := &fakeService{LoginRet: anaFixture()}
	sc := NewContext(fs)
	sc.Initialize(context.Background())
	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))

	fs.CurrentRet = &models.Investidor{ID: "inv-99", Nome: "Outro"}

	_, err := sc.RefreshUser(context.Background())
	require.ErrorIs(t, err, ErrIdentityChanged)
	require.Equal(t, "inv-1", sc.Snapshot().User.ID)
}

func TestRefreshUser_SupersededByLogout_ResultDiscarded(t *testing.T) {
	fs := &fakeService{LoginRet: anaFixture()}
	sc := NewContext(fs)
	sc.Initialize(context.Background())
	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))

	fs.CurrentRet = anaFixture()
	fs.CurrentHook = func() { sc.Logout() }

	_, err := sc.RefreshUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, sc.Snapshot().User)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	fs := &fakeService{LoginRet: anaFixture()}
	sc := NewContext(fs)
	sc.Initialize(context.Background())

	var calls int
	unsub := sc.Subscribe(func(Snapshot) { calls++ })

	require.NoError(t, sc.Login(context.Background(), "ana@example.com", "Senha@123"))
	require.Equal(t, 2, calls)

	unsub()
	sc.Logout()
	require.Equal(t, 2, calls)
}

func TestClearError(t *testing.T) {
	fs := &fakeService{LoginErr: &api.Error{Status: 401, Message: "credenciais inválidas", Kind: api.ErrInvalidCredentials}}
	sc := NewContext(fs)
	sc.Initialize(context.Background())
	_ = sc.Login(context.Background(), "ana@example.com", "errada")

	sc.ClearError()
	snap := sc.Snapshot()
	require.Empty(t, snap.Err)
	require.Equal(t, StateAnonymous, snap.State)
}
