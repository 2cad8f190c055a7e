package ui

// Package ui contains the Fyne-based desktop user interface. One file per
// screen: each screen collects input, calls a gateway, updates its local state
// and asks the Navigator to move on. Route guards live in the Navigator. All
// user-facing strings are localized via Localization.
