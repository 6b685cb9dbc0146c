package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/session"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and attempts to create a new
// account. Outcomes are reported through the session notifier; the password
// byte slices are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	password2, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password2)

	a.session.Register(ctx, models.RegistrationForm{
		Username:  username,
		Email:     email,
		Password:  string(password),
		Password2: string(password2),
		FirstName: firstName,
		LastName:  lastName,
	})
	return nil
}

// Login prompts for credentials and authenticates. The session manager
// persists the token pair and loads the account; failure leaves the session
// anonymous and the saved tokens untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.session.Login(ctx, username, string(password))
	return nil
}

// Logout discards the session and the saved tokens.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}

// Whoami prints the authenticated account and the access-token expiry.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s>", u.Username, u.Email))
	if u.FirstName != "" || u.LastName != "" {
		printlnFn(u.FirstName, u.LastName)
	}
	printlnFn("Culinary level:", u.CulinaryLevel)

	pair, err := a.tokens.Load(ctx)
	if err == nil {
		if exp, ok := session.TokenExpiry(pair.Access); ok {
			printlnFn("Access token expires:", exp.Format("2006-01-02 15:04:05"))
		}
	}
	return nil
}

// Callback completes a social login: it parses the redirect URL pasted by
// the user and adopts the token pair it carries.
func (a *App) Callback(ctx context.Context, args []string) error {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		raw, err = getSimpleText(a.reader, "Paste the callback URL", os.Stdout)
		if err != nil {
			return err
		}
	}

	access, refresh, err := session.ParseCallbackURL(raw)
	if err != nil {
		printlnFn("Social login failed:", err.Error())
		return err
	}

	a.session.SetTokens(ctx, access, refresh)
	return nil
}

// Forgot requests a password reset email.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter account email", os.Stdout)
	if err != nil {
		return err
	}
	a.session.RequestPasswordReset(ctx, email)
	return nil
}

// Reset confirms a password reset with the emailed token.
func (a *App) Reset(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.session.ConfirmPasswordReset(ctx, token, string(password))
	return nil
}

// Profile prints the extended profile (dietary restrictions, allergies).
func (a *App) Profile(ctx context.Context) error {
	profile, err := a.dashboard.Profile(ctx)
	if err != nil {
		printlnFn("Could not load profile:", err.Error())
		return err
	}

	printlnFn("Dietary restrictions:")
	for _, d := range profile.DietaryRestrictions {
		printlnFn("  -", d.Name)
	}
	printlnFn("Allergies:")
	for _, al := range profile.Allergies {
		printlnFn("  -", al.Name)
	}
	return nil
}

// UpdateProfile prompts for the editable account fields and submits them.
// Empty answers keep the current values; the picture path, when given,
// is attached to the multipart request.
func (a *App) UpdateProfile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	firstName, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", u.FirstName), os.Stdout)
	if err != nil {
		return err
	}
	if firstName == "" {
		firstName = u.FirstName
	}

	lastName, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", u.LastName), os.Stdout)
	if err != nil {
		return err
	}
	if lastName == "" {
		lastName = u.LastName
	}

	bio, err := getSimpleText(a.reader, "Bio", os.Stdout)
	if err != nil {
		return err
	}
	if bio == "" {
		bio = u.Bio
	}

	level := u.CulinaryLevel
	if s, err := getSimpleText(a.reader, fmt.Sprintf("Culinary level [%d]", u.CulinaryLevel), os.Stdout); err == nil && s != "" {
		if n, convErr := strconv.Atoi(s); convErr == nil {
			level = n
		}
	}

	picture, err := getSimpleText(a.reader, "Profile picture path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	a.session.UpdateUser(ctx, models.ProfileUpdate{
		FirstName:     firstName,
		LastName:      lastName,
		Bio:           bio,
		CulinaryLevel: level,
		PicturePath:   picture,
	})
	return nil
}
