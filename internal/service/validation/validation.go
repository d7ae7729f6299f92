package validation

import "regexp"

var identityPattern = regexp.MustCompile(`^[0-9]{1,20}$`)

// ValidateIdentity reports whether id looks like a Telegram user id: the
// decimal form of a positive 64-bit integer.
func ValidateIdentity(id string) bool {
	return identityPattern.MatchString(id)
}

var labelPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _\-]{0,62}$`)

// ValidateLabel reports whether s is usable as a wheel sector label or bet
// choice: short, printable, no control or markup characters.
func ValidateLabel(s string) bool {
	return labelPattern.MatchString(s)
}
