package ui

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"fyne.io/fyne/v2"

	"github.com/taskdesk/taskdesk/internal/model"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Chain combines validators; the first failure wins.
func Chain(validators ...fyne.StringValidator) fyne.StringValidator {
	return func(value string) error {
		for _, v := range validators {
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Required rejects empty or whitespace-only input
func Required(loc *Localization) fyne.StringValidator {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(loc.GetText(KeyFieldRequired))
		}
		return nil
	}
}

// MinLength rejects non-empty input shorter than n characters. Empty input
// passes so the rule composes with Required. Lengths count runes, not bytes,
// so accented input is measured the way the user sees it.
func MinLength(loc *Localization, n int) fyne.StringValidator {
	return func(value string) error {
		if value != "" && utf8.RuneCountInString(value) < n {
			return fmt.Errorf(loc.GetText(KeyMinChars), n)
		}
		return nil
	}
}

// MaxLength rejects input longer than n characters, counting runes
func MaxLength(loc *Localization, n int) fyne.StringValidator {
	return func(value string) error {
		if utf8.RuneCountInString(value) > n {
			return fmt.Errorf(loc.GetText(KeyMaxChars), n)
		}
		return nil
	}
}

// EmailFormat rejects non-empty input that does not look like an email address
func EmailFormat(loc *Localization) fyne.StringValidator {
	return func(value string) error {
		if value != "" && !emailPattern.MatchString(value) {
			return errors.New(loc.GetText(KeyEmailInvalid))
		}
		return nil
	}
}

// DueDateNotPast rejects a parseable due date earlier than today. Applied on
// task creation only; editing an overdue task keeps its original date.
func DueDateNotPast(loc *Localization, now time.Time) fyne.StringValidator {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return func(value string) error {
		date, ok := model.ParseDueDate(value)
		if ok && date.Before(today) {
			return errors.New(loc.GetText(KeyDateInPast))
		}
		return nil
	}
}

// PasswordStrength scores a password into none/weak/medium/strong and returns
// the level with the localization key for its label.
func PasswordStrength(password string) (int, string) {
	if password == "" {
		return StrengthNone, ""
	}

	score := 0
	if len(password) >= 6 {
		score++
	}
	if len(password) >= 10 {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		return !letter && !digit
	}) {
		score++
	}

	switch {
	case score <= 2:
		return StrengthWeak, KeyStrengthWeak
	case score <= 4:
		return StrengthMedium, KeyStrengthMedium
	default:
		return StrengthStrong, KeyStrengthStrong
	}
}
