package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/minilearn/internal/access"
)

// getStatus renders the prompt suffix, e.g. " (Alex Student)".
func (a *App) getStatus(ctx context.Context) string {
	user, err := a.sessions.CurrentUser(ctx)
	if err != nil || user == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", user.Name)
}

// Root resolves the landing screen and runs the REPL. Anonymous visitors
// choose between login and signup first; a failed or skipped attempt still
// drops into the REPL.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to Mini E-Learning (type 'help' for commands)")

	landing, err := a.policy.ResolveLanding(ctx)
	if err != nil {
		a.logger.Error(ctx, "error resolving landing", "error", err)
		a.println("Error:", err)
		landing = access.LandingLogin
	}

	switch landing {
	case access.LandingHome:
		if err := a.Home(ctx); err != nil {
			a.println("Error:", err)
		}
	default:
		a.showLoginScreen()
		if err := a.landingForm(ctx); err != nil {
			a.logger.Debug(ctx, "initial login skipped", "error", err)
		}
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

// landingForm asks which of the two login-screen forms to fill in. An empty
// answer means login; anything else goes straight to the REPL.
func (a *App) landingForm(ctx context.Context) error {
	choice, err := getSimpleText(a.reader, "Login or sign up? [login/signup]", a.out)
	if err != nil {
		return err
	}

	switch strings.ToLower(choice) {
	case "", "login", "l":
		return a.Login(ctx)
	case "signup", "sign up", "s":
		return a.Signup(ctx)
	default:
		a.println("Skipped. Type 'help' for commands")
		return nil
	}
}
