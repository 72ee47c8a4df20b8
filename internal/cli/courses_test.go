package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/minilearn/internal/access"
	"github.com/dmitrijs2005/minilearn/internal/common"
)

func TestHome_Anonymous(t *testing.T) {
	ctx := context.Background()
	a, out, _, _ := newTestApp(t)
	// progress left on the device by an earlier session
	require.NoError(t, a.progress.MarkComplete(ctx, "1"))

	landing, err := a.policy.ResolveLanding(ctx)
	require.NoError(t, err)
	require.Equal(t, access.LandingLogin, landing)

	require.NoError(t, a.Home(ctx))

	s := out.String()
	assert.Contains(t, s, "Please login to browse the courses")
	assert.Contains(t, s, "Login or create an account")
	assert.NotContains(t, s, "Intro to Python")
	assert.NotContains(t, s, "Completed")
	assert.NotContains(t, s, "Your Progress")
}

func TestHome_SignedInListsCatalog(t *testing.T) {
	ctx := context.Background()
	a, out, _, _ := newTestApp(t)
	loginAs(t, a, "student@example.com", "password123")

	require.NoError(t, a.Home(ctx))

	s := out.String()
	assert.Contains(t, s, "[1] 🐍 Intro to Python\n")
	assert.Contains(t, s, "[4] ⚛️ React Fundamentals")
	assert.NotContains(t, s, "Please login")
}

func TestHome_SignedInWithoutProgress(t *testing.T) {
	ctx := context.Background()
	a, out, _, _ := newTestApp(t)
	loginAs(t, a, "student@example.com", "password123")

	require.NoError(t, a.Home(ctx))

	assert.NotContains(t, out.String(), "Your Progress")
	assert.NotContains(t, out.String(), "✓ Completed")
}

func TestHome_SignedInWithProgress(t *testing.T) {
	ctx := context.Background()
	a, out, _, _ := newTestApp(t)
	loginAs(t, a, "student@example.com", "password123")
	require.NoError(t, a.progress.MarkComplete(ctx, "3"))

	require.NoError(t, a.Home(ctx))

	s := out.String()
	assert.Contains(t, s, "Your Progress: 1/4 courses completed (25%)")
	assert.Contains(t, s, "[3] 🤖 AI for Beginners  ✓ Completed")
	assert.Equal(t, 1, strings.Count(s, "✓ Completed"))
}

func TestShow(t *testing.T) {
	ctx := context.Background()
	a, out, _, _ := newTestApp(t)

	require.NoError(t, a.Show(ctx, "2"))
	s := out.String()
	assert.Contains(t, s, "🌐 Web Development Basics")
	assert.Contains(t, s, "Beginner · 6 weeks\n")
	assert.Contains(t, s, "About This Course")
	assert.Contains(t, s, "Type 'complete 2'")

	out.Reset()
	require.NoError(t, a.Show(ctx, "nope"))
	assert.Equal(t, "Course not found\n", out.String())
}

func TestShow_CompletedCourse(t *testing.T) {
	ctx := context.Background()
	a, out, _, _ := newTestApp(t)
	loginAs(t, a, "student@example.com", "password123")
	require.NoError(t, a.progress.MarkComplete(ctx, "2"))

	require.NoError(t, a.Show(ctx, "2"))

	assert.Contains(t, out.String(), "Beginner · 6 weeks · Completed")
	assert.Contains(t, out.String(), "Course Completed! 🎉")
}

func TestComplete_Anonymous(t *testing.T) {
	a, out, mem, _ := newTestApp(t)

	require.NoError(t, a.Complete(context.Background(), "1"))

	assert.Contains(t, out.String(), "Please login to track your progress")
	assert.Zero(t, mem.Len())
}

func TestComplete_ThenAlreadyDone(t *testing.T) {
	ctx := context.Background()
	a, out, _, _ := newTestApp(t)
	loginAs(t, a, "student@example.com", "password123")

	require.NoError(t, a.Complete(ctx, "2"))
	assert.Contains(t, out.String(), "Congratulations! Course marked as completed! 🎊")

	out.Reset()
	require.NoError(t, a.Complete(ctx, "2"))
	assert.Contains(t, out.String(), "You've already completed this course! 🎉")

	ids, err := a.progress.Completed(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids)

	out.Reset()
	require.NoError(t, a.Progress(ctx))
	assert.Equal(t, "Your Progress: 1/4 courses completed (25%)\n", out.String())
}

func TestComplete_UnknownCourse(t *testing.T) {
	a, out, mem, _ := newTestApp(t)
	loginAs(t, a, "student@example.com", "password123")

	require.NoError(t, a.Complete(context.Background(), "42"))

	assert.Equal(t, "Course not found\n", out.String())
	assert.Equal(t, 1, mem.Len())
}

func TestComplete_StoreUnavailable(t *testing.T) {
	a, _, mem, _ := newTestApp(t)
	loginAs(t, a, "student@example.com", "password123")
	mem.SetError(errors.New("quota exceeded"))

	err := a.Complete(context.Background(), "1")
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestProgress_Anonymous(t *testing.T) {
	a, out, _, _ := newTestApp(t)

	require.NoError(t, a.Progress(context.Background()))
	assert.Equal(t, "Please login to track your progress\n", out.String())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	a, out, _, _ := newTestApp(t)
	require.NoError(t, a.progress.MarkComplete(ctx, "1"))

	require.NoError(t, a.Reset(ctx))
	assert.Contains(t, out.String(), "Please login to track your progress")
	done, err := a.progress.IsCompleted(ctx, "1")
	require.NoError(t, err)
	assert.True(t, done)

	loginAs(t, a, "student@example.com", "password123")
	out.Reset()
	require.NoError(t, a.Reset(ctx))
	assert.Equal(t, "Progress reset\n", out.String())

	ids, err := a.progress.Completed(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestWipe(t *testing.T) {
	ctx := context.Background()
	a, out, mem, _ := newTestApp(t)
	loginAs(t, a, "student@example.com", "password123")
	require.NoError(t, a.progress.MarkComplete(ctx, "1"))

	require.NoError(t, a.Wipe(ctx))

	assert.Zero(t, mem.Len())
	assert.Contains(t, out.String(), "All local data removed")
	assert.False(t, a.isLoggedIn(ctx))
}

func TestWipe_Anonymous(t *testing.T) {
	ctx := context.Background()
	a, out, mem, _ := newTestApp(t)
	// progress left on the device by an earlier session
	require.NoError(t, a.progress.MarkComplete(ctx, "1"))

	require.NoError(t, a.Reset(ctx))
	require.NoError(t, a.Wipe(ctx))

	assert.Equal(t, "Please login to track your progress\nPlease login to track your progress\n", out.String())
	assert.Equal(t, 1, mem.Len())

	ids, err := a.progress.Completed(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)
}

func TestWipe_StoreUnavailable(t *testing.T) {
	a, _, mem, _ := newTestApp(t)
	mem.SetError(errors.New("storage disabled"))

	require.ErrorIs(t, a.Wipe(context.Background()), common.ErrStoreUnavailable)
}
