package assistant

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks construction preconditions for domain types.
var validate = validator.New()

// UserProfile holds a user's personal details and preferences. Profiles are
// constructed once and treated as immutable afterwards.
type UserProfile struct {
	Name        string `validate:"required"`
	Age         int    `validate:"gte=0"`
	Preferences map[string]string
	Premium     bool
}

// NewUserProfile validates and builds a user profile. The preferences map is
// copied so later mutation by the caller cannot leak into the profile.
func NewUserProfile(name string, age int, preferences map[string]string, premium bool) (*UserProfile, error) {
	prefs := make(map[string]string, len(preferences))
	for k, v := range preferences {
		prefs[k] = v
	}

	profile := &UserProfile{
		Name:        name,
		Age:         age,
		Preferences: prefs,
		Premium:     premium,
	}
	if err := validate.Struct(profile); err != nil {
		return nil, fmt.Errorf("invalid user profile: %w", err)
	}

	return profile, nil
}

// Preference returns the named preference value, or fallback when the key is
// not set.
func (p *UserProfile) Preference(key, fallback string) string {
	if v, ok := p.Preferences[key]; ok {
		return v
	}
	return fallback
}
