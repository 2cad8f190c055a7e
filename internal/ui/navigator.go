package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/internal/gateway"
	"github.com/taskdesk/taskdesk/internal/session"
)

// Route identifies a screen
type Route string

const (
	RouteLogin          Route = "login"
	RouteRegister       Route = "register"
	RouteForgot         Route = "forgot"
	RouteReset          Route = "reset"
	RouteVerify         Route = "verify"
	RouteDashboard      Route = "dashboard"
	RouteTasks          Route = "tasks"
	RouteTaskForm       Route = "task-form"
	RouteChangePassword Route = "change-password"
	RouteProfile        Route = "profile"
	RouteProfileEdit    Route = "profile-edit"
)

// publicOnly routes bounce an authenticated user to the dashboard
var publicOnly = map[Route]bool{
	RouteLogin:    true,
	RouteRegister: true,
	RouteForgot:   true,
	RouteReset:    true,
}

// authOnly routes bounce an unauthenticated user to login
var authOnly = map[Route]bool{
	RouteDashboard:      true,
	RouteTasks:          true,
	RouteTaskForm:       true,
	RouteChangePassword: true,
	RouteProfile:        true,
	RouteProfileEdit:    true,
}

// ResolveRoute applies the access rules: unknown routes fall back to login,
// public-only screens are unreachable while authenticated and vice versa.
// Verification is reachable in both states.
func ResolveRoute(route Route, authenticated bool) Route {
	if route == RouteVerify {
		return route
	}
	if publicOnly[route] {
		if authenticated {
			return RouteDashboard
		}
		return route
	}
	if authOnly[route] {
		if !authenticated {
			return RouteLogin
		}
		return route
	}
	return RouteLogin
}

// Navigator builds screens and moves between them. It owns the one-shot
// parameters a screen can hand to the next one (success banner, tokens, the
// task id being edited).
type Navigator struct {
	window   fyne.Window
	session  *session.Store
	loc      *Localization
	settings *config.Settings

	auth  *gateway.AuthGateway
	tasks *gateway.TaskGateway
	users *gateway.UserGateway

	banner      string
	resetToken  string
	verifyToken string
	editTaskID  int
}

// NewNavigator creates the navigator. Call Start to show the first screen.
func NewNavigator(window fyne.Window, sess *session.Store, loc *Localization, settings *config.Settings,
	auth *gateway.AuthGateway, tasks *gateway.TaskGateway, users *gateway.UserGateway) *Navigator {
	return &Navigator{
		window:   window,
		session:  sess,
		loc:      loc,
		settings: settings,
		auth:     auth,
		tasks:    tasks,
		users:    users,
	}
}

// Start shows the initial screen: the dashboard when a persisted session was
// restored, login otherwise. It also subscribes to the session store so that
// losing the session from any path lands on the login screen.
func (n *Navigator) Start() {
	n.session.Subscribe(func() {
		if !n.session.IsAuthenticated() {
			n.Open(RouteLogin)
		}
	})

	if n.session.IsAuthenticated() {
		n.Open(RouteDashboard)
		return
	}
	n.Open(RouteLogin)
}

// Open navigates to a route, applying access rules.
func (n *Navigator) Open(route Route) {
	resolved := ResolveRoute(route, n.session.IsAuthenticated())
	if resolved != route {
		log.Printf("ui: route %s redirected to %s", route, resolved)
	}
	n.window.SetContent(n.build(resolved))
}

// OpenWithBanner navigates and hands a one-shot success message to the target
// screen.
func (n *Navigator) OpenWithBanner(route Route, banner string) {
	n.banner = banner
	n.Open(route)
}

// OpenReset navigates to the reset-password screen with a recovery token.
func (n *Navigator) OpenReset(token string) {
	n.resetToken = token
	n.Open(RouteReset)
}

// OpenVerify navigates to the verification screen with a verification token.
func (n *Navigator) OpenVerify(token string) {
	n.verifyToken = token
	n.Open(RouteVerify)
}

// OpenTaskForm navigates to the task form; taskID zero means a new task.
func (n *Navigator) OpenTaskForm(taskID int) {
	n.editTaskID = taskID
	n.Open(RouteTaskForm)
}

// Logout clears the session. The session subscription set up in Start moves
// the window to the login screen.
func (n *Navigator) Logout() {
	n.auth.Logout()
}

// takeBanner returns the pending one-shot banner and clears it
func (n *Navigator) takeBanner() string {
	banner := n.banner
	n.banner = ""
	return banner
}

// build constructs the screen for an already-resolved route
func (n *Navigator) build(route Route) fyne.CanvasObject {
	switch route {
	case RouteRegister:
		return newRegisterScreen(n)
	case RouteForgot:
		return newForgotPasswordScreen(n)
	case RouteReset:
		token := n.resetToken
		n.resetToken = ""
		return newResetPasswordScreen(n, token)
	case RouteVerify:
		token := n.verifyToken
		n.verifyToken = ""
		return newVerifyScreen(n, token)
	case RouteDashboard:
		return newDashboardScreen(n)
	case RouteTasks:
		return newTaskListScreen(n)
	case RouteTaskForm:
		taskID := n.editTaskID
		n.editTaskID = 0
		return newTaskFormScreen(n, taskID)
	case RouteChangePassword:
		return newChangePasswordScreen(n)
	case RouteProfile:
		return newProfileScreen(n)
	case RouteProfileEdit:
		return newProfileEditScreen(n)
	default:
		return newLoginScreen(n)
	}
}
