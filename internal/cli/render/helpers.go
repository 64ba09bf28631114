package render

import (
	"strings"

	"github.com/fatih/color"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	msg := message

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

var (
	keyStyle     = color.New(color.FgCyan, color.Bold)
	labelStyle   = color.New(color.Faint)
	unsetStyle   = color.New(color.Faint)
	testnetStyle = color.New(color.FgYellow)
	mainnetStyle = color.New(color.FgGreen)
)

// valueOrUnset renders an empty value as a faint "undefined"
func valueOrUnset(v string) string {
	if v == "" {
		return unsetStyle.Sprint("undefined")
	}
	return v
}
