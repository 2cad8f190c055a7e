package ui

import (
	"image/color"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/taskdesk/taskdesk/internal/api"
)

// newFormWrap pads a form to the shared minimum width so centered screens do
// not collapse to the width of their widest label.
func newFormWrap(content fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(FormMinWidth, 0))
	return container.NewVBox(spacer, content)
}

// taskErrorText maps a gateway error to the user-facing message for task
// operations. Expired-session errors get a dedicated message because the
// caller also schedules a redirect to login.
func taskErrorText(loc *Localization, err error, fallbackKey string) string {
	switch api.StatusCode(err) {
	case http.StatusUnauthorized:
		return loc.GetText(KeySessionExpired)
	case http.StatusForbidden:
		return loc.GetText(KeyNoPermission)
	case http.StatusNotFound:
		return loc.GetText(KeyTaskNotFound)
	default:
		return api.ErrorMessage(err, loc.GetText(fallbackKey))
	}
}

// isUnauthorized reports whether an error came back as HTTP 401
func isUnauthorized(err error) bool {
	return api.StatusCode(err) == http.StatusUnauthorized
}

// redirectToLoginAfterDelay shows the session-expired flow: the caller has
// already surfaced the message, this waits briefly so the user can read it,
// then clears the session and returns to login.
func (n *Navigator) redirectToLoginAfterDelay() {
	go func() {
		time.Sleep(RedirectDelay)
		fyne.Do(func() {
			n.Logout()
		})
	}()
}
