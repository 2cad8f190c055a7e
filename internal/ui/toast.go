package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ToastKind selects the accent color of a toast notification
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
	ToastInfo
)

// ShowToast displays a transient notification in the top-right corner of the
// window. It hides itself after ToastAutoHide.
func ShowToast(window fyne.Window, message string, kind ToastKind) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	var accentName fyne.ThemeColorName
	switch kind {
	case ToastSuccess:
		accentName = theme.ColorNameSuccess
	case ToastError:
		accentName = theme.ColorNameError
	default:
		accentName = theme.ColorNamePrimary
	}
	accent := canvas.NewRectangle(theme.Color(accentName))
	accent.SetMinSize(fyne.NewSize(4, ToastHeight))

	content := container.NewBorder(nil, nil, accent, nil, label)
	popup := widget.NewPopUp(content, window.Canvas())

	canvasSize := window.Canvas().Size()
	popup.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	popup.Move(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	popup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			popup.Hide()
		})
	}()
}
