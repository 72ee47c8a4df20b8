package access

import "context"

type sessionReader interface {
	IsAuthenticated(ctx context.Context) (bool, error)
}

type completionReader interface {
	IsCompleted(ctx context.Context, courseID string) (bool, error)
}

type Policy struct {
	sessions sessionReader
	progress completionReader
}

// NewPolicy takes an *auth.SessionStore and a *progress.Store, or anything
// with the same read methods.
func NewPolicy(sessions sessionReader, progress completionReader) *Policy {
	return &Policy{sessions: sessions, progress: progress}
}

func (p *Policy) ResolveLanding(ctx context.Context) (Landing, error) {
	ok, err := p.sessions.IsAuthenticated(ctx)
	if err != nil {
		return "", err
	}
	return DecideLanding(ok), nil
}

// ResolveCourseAction does not read the completion set for anonymous
// visitors.
func (p *Policy) ResolveCourseAction(ctx context.Context, courseID string) (CourseAction, error) {
	ok, err := p.sessions.IsAuthenticated(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return DecideCourseAction(false, false), nil
	}

	done, err := p.progress.IsCompleted(ctx, courseID)
	if err != nil {
		return "", err
	}
	return DecideCourseAction(true, done), nil
}

func (p *Policy) GateProgressDisplay(ctx context.Context) (bool, error) {
	ok, err := p.sessions.IsAuthenticated(ctx)
	if err != nil {
		return false, err
	}
	return DecideProgressDisplay(ok), nil
}
