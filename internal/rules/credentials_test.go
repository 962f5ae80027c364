package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckLoginCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		valid    bool
	}{
		{"valid", "alice", "secret", true},
		{"minimum lengths", "abc", "abc", true},
		{"empty username", "", "secret", false},
		{"empty password", "alice", "", false},
		{"blank password", "alice", "   ", false},
		{"username too short", "ab", "secret", false},
		{"username too long", strings.Repeat("a", 21), "secret", false},
		{"password too short", "alice", "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckLoginCredentials(tt.username, tt.password)
			assert.Equal(t, tt.valid, r.Valid, r.Message)
		})
	}
}

func TestCheckRegistrationCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		valid    bool
	}{
		{"valid", "alice", "s3cretX", true},
		{"hyphen and underscore allowed", "ski-fan_99", "s3cretX", true},
		{"illegal characters", "alice!", "s3cretX", false},
		{"space in username", "al ice", "s3cretX", false},
		{"reserved username", "admin", "s3cretX", false},
		{"reserved case insensitive", "Root", "s3cretX", false},
		{"common password", "alice", "qwerty", false},
		{"password equals username", "alice", "alice", false},
		{"password equals username ignoring case", "alice", "ALICE", false},
		{"password too long", "alice", strings.Repeat("x", 51), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckRegistrationCredentials(tt.username, tt.password)
			assert.Equal(t, tt.valid, r.Valid, r.Message)
		})
	}
}

func TestIsReservedUsername(t *testing.T) {
	assert.True(t, IsReservedUsername("admin"))
	assert.True(t, IsReservedUsername("  LOCALHOST  "))
	assert.False(t, IsReservedUsername("alice"))
}

func TestIsWeakPassword(t *testing.T) {
	assert.True(t, IsWeakPassword("password123"))
	assert.True(t, IsWeakPassword("123456"))
	assert.False(t, IsWeakPassword("tr0mb0ne-Kick"))
}

func TestAssessCredentialSecurity(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		level    SecurityLevel
	}{
		{"missing credentials", "", "", SecurityVeryWeak},
		{"blank password", "alice", "   ", SecurityVeryWeak},
		{"password equals username", "alice", "alice", SecurityVeryWeak},
		{"common password", "alice", "qwerty", SecurityVeryWeak},
		{"reserved username", "admin", "Tr0mb0ne-Kick", SecurityVeryWeak},
		{"short password", "alice", "abcde", SecurityWeak},
		{"long but uniform", "alice", "abcdefghij", SecurityModerate},
		{"varied but short of eight", "alice", "Abc-123", SecurityModerate},
		{"long and varied", "alice", "Tr0mb0ne-Kick", SecurityStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AssessCredentialSecurity(tt.username, tt.password)
			assert.Equal(t, tt.level, a.Level, a.Message)
			assert.NotNil(t, a.Suggestions)
		})
	}
}

func TestAssessCredentialSecurityStrongHasNoSuggestions(t *testing.T) {
	a := AssessCredentialSecurity("alice", "Tr0mb0ne-Kick")
	assert.Equal(t, SecurityStrong, a.Level)
	assert.Empty(t, a.Suggestions)
}

func TestHasVariedCharacters(t *testing.T) {
	assert.True(t, HasVariedCharacters("Abc123"))
	assert.True(t, HasVariedCharacters("abc-123"))
	assert.False(t, HasVariedCharacters("abcdef"))
	assert.False(t, HasVariedCharacters("abc123"))
}
