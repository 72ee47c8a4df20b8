package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/minilearn/internal/auth"
	"github.com/dmitrijs2005/minilearn/internal/common"
)

// getSimpleText, getPassword and sleepFn are indirections used to facilitate
// testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	sleepFn       = sleepContext
)

const demoHint = "Try: student@example.com / password123"

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login prompts for email and password, waits for the configured login
// delay and then checks the credentials. A rejected login prints the demo
// hint and is not an error.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	a.println("Logging in...")
	if err := sleepFn(ctx, a.loginDelay); err != nil {
		return err
	}

	user, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.println("Invalid email or password")
			a.println(demoHint)
			return nil
		}
		return err
	}

	a.printf("Welcome back, %s! 🎉\n", user.Name)
	return a.Home(ctx)
}

// Signup prompts for name, email and password. Input is validated before the
// login delay, so a rejected form returns immediately.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	in := auth.SignupInput{Email: email, Password: string(password), Name: name}
	if err := auth.ValidateSignup(in); err != nil {
		a.println(validationMessage(err))
		return nil
	}

	a.println("Creating account...")
	if err := sleepFn(ctx, a.loginDelay); err != nil {
		return err
	}

	user, err := a.sessions.Signup(ctx, in)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			a.println(validationMessage(err))
			return nil
		}
		return err
	}

	a.printf("Account created! Welcome, %s! 🎊\n", user.Name)
	return a.Home(ctx)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrNameTooShort):
		return "Please enter your name"
	case errors.Is(err, common.ErrInvalidEmail):
		return "Please enter a valid email"
	case errors.Is(err, common.ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	default:
		return err.Error()
	}
}

// Logout ends the session and returns to the login screen. Completed
// courses stay on the device.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	a.showLoginScreen()
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.sessions.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		a.println("Not logged in")
		return nil
	}
	a.printf("%s <%s> (id %s)\n", user.Name, user.Email, user.ID)
	return nil
}

func (a *App) showLoginScreen() {
	a.println("🎓 Mini E-Learning")
	a.println("Login or create an account to start learning (commands: login, signup)")
}
