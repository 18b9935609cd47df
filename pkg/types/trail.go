package types

import "errors"

// ErrInvalidTrailName is returned when a trail name fails ValidateTrailName.
var ErrInvalidTrailName = errors.New("invalid trail name")

// maxTrailNameLen bounds trail names; they become SQLite table name prefixes.
const maxTrailNameLen = 32

// ValidateTrailName checks a trail name against the allow-listed character
// set before it may be interpolated into any table name or query text.
// A valid name starts with a lowercase letter and continues with lowercase
// letters, digits, or underscores, up to 32 bytes.
func ValidateTrailName(trail string) error {
	if len(trail) == 0 || len(trail) > maxTrailNameLen {
		return ErrInvalidTrailName
	}
	for i := 0; i < len(trail); i++ {
		c := trail[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		case c == '_' && i > 0:
		default:
			return ErrInvalidTrailName
		}
	}
	return nil
}
