package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/repositories/tokens"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/session"
)

// stubInputs replaces the interactive input seams. Text prompts answer from
// the given queue in order; password prompts always return pw.
func stubInputs(t *testing.T, answers []string, pw []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		return append([]byte(nil), pw...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeSession struct {
	authenticated bool
	user          *models.User

	lastLoginUser string
	lastLoginPass string
	lastForm      models.RegistrationForm
	lastAccess    string
	lastRefresh   string
	lastEmail     string
	lastUpdate    models.ProfileUpdate
	logoutCalled  bool
	setTokens     int
}

func (f *fakeSession) State() session.State {
	if f.authenticated {
		return session.StateAuthenticated
	}
	return session.StateUnauthenticated
}
func (f *fakeSession) CurrentUser() *models.User { return f.user }
func (f *fakeSession) IsAuthenticated() bool     { return f.authenticated }
func (f *fakeSession) Init(ctx context.Context)  {}

func (f *fakeSession) Login(ctx context.Context, username, password string) session.Result {
	f.lastLoginUser, f.lastLoginPass = username, password
	return session.Result{Success: true}
}

func (f *fakeSession) Register(ctx context.Context, form models.RegistrationForm) session.Result {
	f.lastForm = form
	return session.Result{Success: true}
}

func (f *fakeSession) Logout(ctx context.Context) { f.logoutCalled = true }

func (f *fakeSession) SetTokens(ctx context.Context, access, refresh string) session.Result {
	f.setTokens++
	f.lastAccess, f.lastRefresh = access, refresh
	return session.Result{Success: true}
}

func (f *fakeSession) FetchCurrentUser(ctx context.Context) session.Result {
	return session.Result{Success: true}
}

func (f *fakeSession) UpdateUser(ctx context.Context, update models.ProfileUpdate) session.Result {
	f.lastUpdate = update
	return session.Result{Success: true}
}

func (f *fakeSession) RequestPasswordReset(ctx context.Context, email string) session.Result {
	f.lastEmail = email
	return session.Result{Success: true}
}

func (f *fakeSession) ConfirmPasswordReset(ctx context.Context, token, password string) session.Result {
	return session.Result{Success: true}
}

type memTokens struct {
	pair tokens.Pair
}

func (m *memTokens) Load(ctx context.Context) (tokens.Pair, error) { return m.pair, nil }

func (m *memTokens) Save(ctx context.Context, pair tokens.Pair) error {
	m.pair = pair
	return nil
}

func (m *memTokens) Clear(ctx context.Context) error {
	m.pair = tokens.Pair{}
	return nil
}

func TestRegister_SubmitsForm(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice", "alice@example.org", "Alice", "Martin"}, []byte("pw123"))

	f := &fakeSession{}
	a := &App{session: f}

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.lastForm.Username != "alice" || f.lastForm.Email != "alice@example.org" {
		t.Fatalf("form mismatch: %+v", f.lastForm)
	}
	if f.lastForm.Password != "pw123" || f.lastForm.Password2 != "pw123" {
		t.Fatalf("passwords not forwarded: %+v", f.lastForm)
	}
}

func TestLogin_ForwardsCredentials(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice"}, []byte("pw123"))

	f := &fakeSession{}
	a := &App{session: f}

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.lastLoginUser != "alice" || f.lastLoginPass != "pw123" {
		t.Fatalf("credentials mismatch: %q %q", f.lastLoginUser, f.lastLoginPass)
	}
}

func TestLogout_DelegatesToSession(t *testing.T) {
	silencePrintln(t)

	f := &fakeSession{authenticated: true}
	a := &App{session: f}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("session.Logout not called")
	}
}

func TestCallback_AdoptsTokensFromURL(t *testing.T) {
	silencePrintln(t)

	f := &fakeSession{authenticated: true}
	a := &App{session: f}

	url := "http://127.0.0.1/callback?access=A1&refresh=R1"
	if err := a.Callback(context.Background(), []string{url}); err != nil {
		t.Fatalf("Callback err: %v", err)
	}
	if f.setTokens != 1 || f.lastAccess != "A1" || f.lastRefresh != "R1" {
		t.Fatalf("tokens not adopted: %+v", f)
	}
}

func TestCallback_ErrorURLDoesNotTouchSession(t *testing.T) {
	silencePrintln(t)

	f := &fakeSession{}
	a := &App{session: f}

	url := "http://127.0.0.1/callback?error=access_denied"
	if err := a.Callback(context.Background(), []string{url}); err == nil {
		t.Fatal("want error for a failed callback")
	}
	if f.setTokens != 0 {
		t.Fatal("SetTokens must not be called on a failed callback")
	}
}

func TestForgot_SubmitsEmail(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice@example.org"}, nil)

	f := &fakeSession{}
	a := &App{session: f}

	if err := a.Forgot(context.Background()); err != nil {
		t.Fatalf("Forgot err: %v", err)
	}
	if f.lastEmail != "alice@example.org" {
		t.Fatalf("email mismatch: %q", f.lastEmail)
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	var lines []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	a := &App{session: &fakeSession{}}
	if err := a.Whoami(context.Background()); err != nil {
		t.Fatalf("Whoami err: %v", err)
	}
	if len(lines) != 1 || lines[0] != "Not logged in." {
		t.Fatalf("unexpected output: %v", lines)
	}
}

func TestWhoami_PrintsAccount(t *testing.T) {
	silencePrintln(t)

	f := &fakeSession{
		authenticated: true,
		user:          &models.User{Username: "alice", Email: "alice@example.org"},
	}
	a := &App{session: f, tokens: &memTokens{}}

	if err := a.Whoami(context.Background()); err != nil {
		t.Fatalf("Whoami err: %v", err)
	}
}

func TestUpdateProfile_EmptyAnswersKeepValues(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"", "", "", "", ""}, nil)

	f := &fakeSession{
		authenticated: true,
		user: &models.User{
			Username:      "alice",
			FirstName:     "Alice",
			LastName:      "Martin",
			Bio:           "home cook",
			CulinaryLevel: 2,
		},
	}
	a := &App{session: f}

	if err := a.UpdateProfile(context.Background()); err != nil {
		t.Fatalf("UpdateProfile err: %v", err)
	}
	if f.lastUpdate.FirstName != "Alice" || f.lastUpdate.Bio != "home cook" || f.lastUpdate.CulinaryLevel != 2 {
		t.Fatalf("current values not kept: %+v", f.lastUpdate)
	}
}
