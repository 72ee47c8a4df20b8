// Package access decides what a visitor may see and do. The Decide*
// functions are pure; Policy gathers their inputs from the session and
// progress stores.
package access

type Landing string

const (
	LandingHome  Landing = "home"
	LandingLogin Landing = "login"
)

type CourseAction string

const (
	ActionAllow        CourseAction = "allow"
	ActionRequireLogin CourseAction = "require_login"
	ActionAlreadyDone  CourseAction = "already_done"
)

// DecideLanding sends anonymous visitors to the login screen.
func DecideLanding(authenticated bool) Landing {
	if authenticated {
		return LandingHome
	}
	return LandingLogin
}

// DecideCourseAction answers a request to mark a course complete.
// Sign-in is checked before completion state.
func DecideCourseAction(authenticated, completed bool) CourseAction {
	if !authenticated {
		return ActionRequireLogin
	}
	if completed {
		return ActionAlreadyDone
	}
	return ActionAllow
}

// DecideProgressDisplay reports whether completion badges and the progress
// summary may be shown.
func DecideProgressDisplay(authenticated bool) bool {
	return authenticated
}
