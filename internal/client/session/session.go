package session

import (
	"context"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/api"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/repositories/tokens"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/logging"
)

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateLoading         State = "loading"
	StateAuthenticated   State = "authenticated"
)

// Result is the outcome of a session operation. Message carries the
// human-readable failure reason shown to the user.
type Result struct {
	Success bool
	Message string
}

func ok() Result             { return Result{Success: true} }
func fail(msg string) Result { return Result{Success: false, Message: msg} }

// Notifier receives the transient user-facing messages (the toast channel).
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Manager implements the session lifecycle. It is designed for the
// single-threaded cooperative execution model: one writer, no internal
// locking.
type Manager struct {
	client api.Client
	repo   tokens.Repository
	notify Notifier
	log    logging.Logger

	state   State
	user    *models.User
	loading bool
}

func NewManager(client api.Client, repo tokens.Repository, notify Notifier, log logging.Logger) *Manager {
	return &Manager{
		client: client,
		repo:   repo,
		notify: notify,
		log:    log,
		state:  StateUnauthenticated,
	}
}

func (m *Manager) State() State { return m.state }

// CurrentUser returns the fetched user record, or nil. Non-nil implies an
// access token is installed.
func (m *Manager) CurrentUser() *models.User { return m.user }

func (m *Manager) IsAuthenticated() bool { return m.state == StateAuthenticated }

func (m *Manager) IsLoading() bool { return m.loading }

// Init restores a persisted session at startup. With a stored credential
// pair the manager enters Loading and validates the token by fetching the
// user; without one it starts Unauthenticated.
func (m *Manager) Init(ctx context.Context) {
	pair, err := m.repo.Load(ctx)
	if err != nil {
		m.log.Error(ctx, "loading persisted credentials failed", "error", err)
		m.state = StateUnauthenticated
		return
	}
	if pair.IsZero() {
		m.state = StateUnauthenticated
		return
	}

	m.state = StateLoading
	m.client.SetToken(pair.Access)
	m.FetchCurrentUser(ctx)
}

// Login exchanges credentials for a token pair, persists the pair, installs
// the authorization header, and fetches the user record. The result reflects
// the authentication call; a subsequent user-fetch failure clears the
// session through Logout.
func (m *Manager) Login(ctx context.Context, username, password string) Result {
	pair, err := m.client.Login(ctx, username, password)
	if err != nil {
		msg := api.Message(err, "login failed")
		m.notify.Error(msg)
		return fail(msg)
	}

	m.adoptTokens(ctx, pair.Access, pair.Refresh)
	m.notify.Success("logged in")
	return ok()
}

// Register submits the registration payload. It does not log the user in.
// Mismatched password confirmation is rejected client-side before any
// request is issued.
func (m *Manager) Register(ctx context.Context, form models.RegistrationForm) Result {
	if form.Password != form.Password2 {
		msg := "passwords do not match"
		m.notify.Error(msg)
		return fail(msg)
	}

	if err := m.client.Register(ctx, form); err != nil {
		msg := api.Message(err, "registration failed")
		m.notify.Error(msg)
		return fail(msg)
	}

	m.notify.Success("registered, please verify your email")
	return ok()
}

// FetchCurrentUser requests /users/me/ with the active credential. Any
// failure (expired token, network error) forces a logout. The loading flag
// is cleared regardless of outcome.
func (m *Manager) FetchCurrentUser(ctx context.Context) Result {
	m.loading = true
	defer func() { m.loading = false }()

	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		m.log.Error(ctx, "fetching current user failed", "error", err)
		m.Logout(ctx)
		return fail("session expired")
	}

	m.user = user
	m.state = StateAuthenticated
	return ok()
}

// SetTokens adopts a credential pair issued out-of-band (the external
// provider callback), then validates it by fetching the user.
func (m *Manager) SetTokens(ctx context.Context, access, refresh string) Result {
	m.adoptTokens(ctx, access, refresh)
	if m.state != StateAuthenticated {
		return fail("authentication failed")
	}
	return ok()
}

// adoptTokens persists the pair, installs the header, and fetches the user.
// Persistence failure degrades to an in-memory session: the process keeps
// working, the session just does not survive a restart.
func (m *Manager) adoptTokens(ctx context.Context, access, refresh string) {
	if err := m.repo.Save(ctx, tokens.Pair{Access: access, Refresh: refresh}); err != nil {
		m.log.Warn(ctx, "persisting credentials failed", "error", err)
	}
	m.client.SetToken(access)
	m.FetchCurrentUser(ctx)
}

// UpdateUser sends the multipart profile update. On success the user record
// is replaced with the response body; on failure the previous record stays
// untouched.
func (m *Manager) UpdateUser(ctx context.Context, update models.ProfileUpdate) Result {
	user, err := m.client.UpdateCurrentUser(ctx, update)
	if err != nil {
		msg := api.Message(err, "profile update failed")
		m.notify.Error(msg)
		return fail(msg)
	}

	m.user = user
	m.notify.Success("profile updated")
	return ok()
}

// Logout clears the persisted pair, the authorization header, and the user
// record. Safe to call when already logged out.
func (m *Manager) Logout(ctx context.Context) {
	wasAuthenticated := m.state == StateAuthenticated

	if err := m.repo.Clear(ctx); err != nil {
		m.log.Error(ctx, "clearing persisted credentials failed", "error", err)
	}
	m.client.ClearToken()
	m.user = nil
	m.state = StateUnauthenticated

	if wasAuthenticated {
		m.notify.Info("logged out")
	}
}

// RequestPasswordReset asks the backend to email a reset token.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) Result {
	if err := m.client.RequestPasswordReset(ctx, email); err != nil {
		msg := api.Message(err, "password reset request failed")
		m.notify.Error(msg)
		return fail(msg)
	}
	m.notify.Success("password reset email sent")
	return ok()
}

// ConfirmPasswordReset validates the token and sets the new password.
func (m *Manager) ConfirmPasswordReset(ctx context.Context, token, password string) Result {
	if err := m.client.ValidateResetToken(ctx, token); err != nil {
		msg := api.Message(err, "invalid or expired reset token")
		m.notify.Error(msg)
		return fail(msg)
	}
	if err := m.client.ConfirmPasswordReset(ctx, token, password); err != nil {
		msg := api.Message(err, "password reset failed")
		m.notify.Error(msg)
		return fail(msg)
	}
	m.notify.Success("password changed")
	return ok()
}
