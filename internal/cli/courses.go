package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/minilearn/internal/access"
	"github.com/dmitrijs2005/minilearn/internal/catalog"
	"github.com/dmitrijs2005/minilearn/internal/common"
)

const quote = `"Education is the most powerful weapon which you can use to change the world." - Nelson Mandela`

// completedForDisplay returns the completion set, or nil when the visitor
// may not see progress.
func (a *App) completedForDisplay(ctx context.Context) ([]string, error) {
	show, err := a.policy.GateProgressDisplay(ctx)
	if err != nil || !show {
		return nil, err
	}
	return a.progress.Completed(ctx)
}

// Home lists the catalog. Anonymous visitors get the login screen instead,
// since the landing policy is gated.
func (a *App) Home(ctx context.Context) error {
	landing, err := a.policy.ResolveLanding(ctx)
	if err != nil {
		return err
	}
	if landing == access.LandingLogin {
		a.println("Please login to browse the courses")
		a.showLoginScreen()
		return nil
	}

	completed, err := a.completedForDisplay(ctx)
	if err != nil {
		return err
	}

	a.println("🎓 My Mini E-Learning Platform")
	a.println("Start Your Learning Journey")

	if len(completed) > 0 {
		if err := a.Progress(ctx); err != nil {
			return err
		}
	}
	a.println()

	for _, c := range a.catalog.All() {
		done := slices.Contains(completed, c.ID)
		badge := ""
		if done {
			badge = "  ✓ Completed"
		}
		a.printf("[%s] %s %s%s\n", c.ID, c.Icon, c.Title, badge)
		a.printf("    %s\n", c.Description)
		a.printf("    %s · %s\n", c.Difficulty, c.Duration)
	}

	a.println()
	a.println(quote)
	return nil
}

func (a *App) lookup(id string) (*catalog.Course, bool) {
	course, err := a.catalog.ByID(id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.println("Course not found")
		}
		return nil, false
	}
	return course, true
}

// Show prints the course detail page.
func (a *App) Show(ctx context.Context, id string) error {
	course, ok := a.lookup(id)
	if !ok {
		return nil
	}

	completed, err := a.completedForDisplay(ctx)
	if err != nil {
		return err
	}
	done := slices.Contains(completed, course.ID)

	a.printf("%s %s\n", course.Icon, course.Title)
	status := ""
	if done {
		status = " · Completed"
	}
	a.printf("%s · %s%s\n", course.Difficulty, course.Duration, status)
	a.println(course.Description)
	a.println()
	a.println("About This Course")
	a.println(course.LongDescription)
	a.println()

	if done {
		a.println("Course Completed! 🎉")
	} else {
		a.printf("Type 'complete %s' when you've finished all the lessons!\n", course.ID)
	}
	return nil
}

// Complete marks a course as completed if the access policy allows it.
func (a *App) Complete(ctx context.Context, id string) error {
	course, ok := a.lookup(id)
	if !ok {
		return nil
	}

	action, err := a.policy.ResolveCourseAction(ctx, course.ID)
	if err != nil {
		return err
	}

	switch action {
	case access.ActionRequireLogin:
		a.println("Please login to track your progress")
		a.println("Type 'login' to sign in")
	case access.ActionAlreadyDone:
		a.println("You've already completed this course! 🎉")
	case access.ActionAllow:
		if err := a.progress.MarkComplete(ctx, course.ID); err != nil {
			return err
		}
		a.println("Congratulations! Course marked as completed! 🎊")
		a.println("Keep up the great work!")
	default:
		return fmt.Errorf("unexpected course action %q", action)
	}
	return nil
}

// Progress prints "Your Progress: x/y courses completed (p%)".
func (a *App) Progress(ctx context.Context) error {
	show, err := a.policy.GateProgressDisplay(ctx)
	if err != nil {
		return err
	}
	if !show {
		a.println("Please login to track your progress")
		return nil
	}

	st, err := a.progress.Stats(ctx, a.catalog.Len())
	if err != nil {
		return err
	}
	a.printf("Your Progress: %d/%d courses completed (%d%%)\n", st.Completed, st.Total, st.Percent)
	return nil
}

// requireSignedIn prints the login hint and reports false for anonymous
// visitors.
func (a *App) requireSignedIn(ctx context.Context) (bool, error) {
	ok, err := a.sessions.IsAuthenticated(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		a.println("Please login to track your progress")
	}
	return ok, nil
}

// Reset forgets completed courses. Like marking a course, it needs a
// signed-in visitor.
func (a *App) Reset(ctx context.Context) error {
	if ok, err := a.requireSignedIn(ctx); err != nil || !ok {
		return err
	}
	if err := a.progress.Reset(ctx); err != nil {
		return err
	}
	a.println("Progress reset")
	return nil
}

// Wipe removes every value the app keeps on this device, session included.
// It needs a signed-in visitor, as Reset does.
func (a *App) Wipe(ctx context.Context) error {
	if ok, err := a.requireSignedIn(ctx); err != nil || !ok {
		return err
	}
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.println("All local data removed")
	a.showLoginScreen()
	return nil
}
