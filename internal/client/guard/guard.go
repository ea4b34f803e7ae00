// Package guard decides, per navigation, whether a view may render for the
// current session snapshot. The decision is a pure function so the hosting
// layer can re-evaluate it on every snapshot change without side effects.
package guard

import (
	"github.com/enokjanuario/primeholding/internal/client/models"
	"github.com/enokjanuario/primeholding/internal/client/session"
)

// Requirement is a view's declared access level.
type Requirement int

const (
	// Public: rendered for anybody; the login view is the canonical case.
	Public Requirement = iota
	// AnyAuthenticated: any logged-in user.
	AnyAuthenticated
	// ElevatedOnly: administrators only.
	ElevatedOnly
)

func (r Requirement) String() string {
	switch r {
	case Public:
		return "public"
	case AnyAuthenticated:
		return "any-authenticated"
	case ElevatedOnly:
		return "elevated-only"
	}
	return "unknown"
}

// Route is a navigation target.
type Route string

const (
	RouteLogin     Route = "/login"
	RouteDashboard Route = "/dashboard"
	RouteAdmin     Route = "/admin"
)

// Action is what the host must do with the requested view.
type Action int

const (
	// Render the requested view.
	Render Action = iota
	// ShowLoading: a session check is outstanding; defer the decision.
	ShowLoading
	// Redirect to Outcome.Target instead of rendering.
	Redirect
)

func (a Action) String() string {
	switch a {
	case Render:
		return "render"
	case ShowLoading:
		return "loading"
	case Redirect:
		return "redirect"
	}
	return "unknown"
}

// Outcome is the guard's decision. Target is set only for Redirect.
type Outcome struct {
	Action Action
	Target Route
}

// HomeFor returns the role-appropriate home route.
func HomeFor(role models.Role) Route {
	if role == models.RoleElevated {
		return RouteAdmin
	}
	return RouteDashboard
}

// Decide maps a session snapshot and a view requirement to exactly one
// outcome. It is total over (loading, user presence, role, requirement) and
// idempotent: re-evaluating an unchanged snapshot yields the same outcome,
// so redirects cannot loop.
func Decide(snap session.Snapshot, req Requirement) Outcome {
	if snap.Loading() {
		return Outcome{Action: ShowLoading}
	}

	if !snap.Authenticated() {
		if req == Public {
			return Outcome{Action: Render}
		}
		return Outcome{Action: Redirect, Target: RouteLogin}
	}

	switch req {
	case Public:
		// A logged-in user has no business on the login view; send them home.
		return Outcome{Action: Redirect, Target: HomeFor(snap.User.Role)}
	case ElevatedOnly:
		if snap.User.Role != models.RoleElevated {
			return Outcome{Action: Redirect, Target: RouteDashboard}
		}
		return Outcome{Action: Render}
	default: // AnyAuthenticated
		return Outcome{Action: Render}
	}
}
