package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Layout sizing
const (
	FormMinWidth   float32 = 360
	ScreenPadding  float32 = 16
	StatsCardWidth float32 = 110
	DetailDialogW  float32 = 420
	DetailDialogH  float32 = 320
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 64
	ToastMargin   float32 = 20
	ToastAutoHide         = 4 * time.Second
)

// Delays
const (
	// RedirectDelay is the pause before forced navigation after a
	// user-visible message (session expiry, post-success redirects)
	RedirectDelay = 2 * time.Second
)

// Password strength levels
const (
	StrengthNone = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)
