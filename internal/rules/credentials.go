package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 20
	minPasswordLength = 3
	maxPasswordLength = 50
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var reservedUsernames = []string{
	"admin", "root", "system", "null", "undefined",
	"test", "guest", "public", "private", "api",
	"www", "mail", "ftp", "localhost", "server",
}

var commonPasswords = []string{
	"password", "123456", "qwerty", "abc123",
	"password123", "admin", "user", "guest",
	"12345678", "111111", "000000",
}

// CheckLoginCredentials applies the length bounds shared by login and
// registration.
func CheckLoginCredentials(username, password string) Result {
	if strings.TrimSpace(username) == "" {
		return fail("Username cannot be empty")
	}
	if strings.TrimSpace(password) == "" {
		return fail("Password cannot be empty")
	}

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if len(username) < minUsernameLength {
		return fail(fmt.Sprintf("Username must be at least %d characters long", minUsernameLength))
	}
	if len(username) > maxUsernameLength {
		return fail(fmt.Sprintf("Username cannot be longer than %d characters", maxUsernameLength))
	}
	if len(password) < minPasswordLength {
		return fail(fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}

	return ok("Valid login credentials")
}

// CheckRegistrationCredentials layers the pattern, reserved-name and
// password-strength rules on top of the login checks.
func CheckRegistrationCredentials(username, password string) Result {
	if r := CheckLoginCredentials(username, password); !r.Valid {
		return r
	}

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if !usernamePattern.MatchString(username) {
		return fail("Username can only contain letters, numbers, hyphens, and underscores")
	}
	if IsReservedUsername(username) {
		return fail("Username is reserved and cannot be used")
	}
	if len(password) > maxPasswordLength {
		return fail(fmt.Sprintf("Password cannot be longer than %d characters", maxPasswordLength))
	}
	if IsWeakPassword(password) {
		return fail("Password is too weak. Avoid common passwords and consider using a mix of characters")
	}
	if IsPasswordSameAsUsername(username, password) {
		return fail("Password must differ from the username")
	}

	return ok("Valid registration credentials")
}

func IsReservedUsername(username string) bool {
	lower := strings.ToLower(strings.TrimSpace(username))
	for _, name := range reservedUsernames {
		if lower == name {
			return true
		}
	}
	return false
}

func IsWeakPassword(password string) bool {
	lower := strings.ToLower(password)
	for _, common := range commonPasswords {
		if lower == common {
			return true
		}
	}
	return false
}

func IsPasswordSameAsUsername(username, password string) bool {
	return strings.EqualFold(strings.TrimSpace(username), strings.TrimSpace(password))
}

// SecurityLevel grades credential strength. Closed set.
type SecurityLevel string

const (
	SecurityVeryWeak SecurityLevel = "very_weak"
	SecurityWeak     SecurityLevel = "weak"
	SecurityModerate SecurityLevel = "moderate"
	SecurityStrong   SecurityLevel = "strong"
)

// SecurityAssessment is strength feedback for a credential pair. It is
// advice only and never blocks registration beyond what the
// registration checks already reject.
type SecurityAssessment struct {
	Level       SecurityLevel `json:"level"`
	Message     string        `json:"message"`
	Suggestions []string      `json:"suggestions"`
}

// AssessCredentialSecurity grades a credential pair. Anything the
// registration checks reject is very weak; passing pairs are graded by
// password length and character variety.
func AssessCredentialSecurity(username, password string) SecurityAssessment {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return SecurityAssessment{
			Level:       SecurityVeryWeak,
			Message:     "Missing credentials",
			Suggestions: []string{"Provide both username and password"},
		}
	}

	if r := CheckRegistrationCredentials(username, password); !r.Valid {
		return SecurityAssessment{
			Level:       SecurityVeryWeak,
			Message:     r.Message,
			Suggestions: []string{"Fix validation errors"},
		}
	}

	password = strings.TrimSpace(password)

	if len(password) < 6 {
		return SecurityAssessment{
			Level:       SecurityWeak,
			Message:     "Short password",
			Suggestions: []string{"Consider using a longer password"},
		}
	}

	if len(password) >= 8 && HasVariedCharacters(password) {
		return SecurityAssessment{
			Level:       SecurityStrong,
			Message:     "Good credential security",
			Suggestions: []string{},
		}
	}

	return SecurityAssessment{
		Level:       SecurityModerate,
		Message:     "Acceptable security",
		Suggestions: []string{"Consider adding varied characters"},
	}
}

// HasVariedCharacters reports whether the password draws on at least
// three character classes. Used for strength feedback, not as a hard
// requirement.
func HasVariedCharacters(password string) bool {
	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	variety := 0
	for _, v := range []bool{hasLower, hasUpper, hasDigit, hasSpecial} {
		if v {
			variety++
		}
	}
	return variety >= 3
}
