package database

import (
	"encoding/json"
	"fmt"
	"time"
)

// Profile is the persisted form of a user profile. Preferences are stored as
// a JSON object in a TEXT column since SQLite has no native map type.
type Profile struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Name        string `db:"name"`
	Age         int    `db:"age"`
	Premium     bool   `db:"premium"`
	Preferences string `db:"preferences"`
}

// NewProfile builds a profile row from the domain values, encoding the
// preferences map as JSON.
func NewProfile(name string, age int, premium bool, preferences map[string]string) (*Profile, error) {
	if preferences == nil {
		preferences = map[string]string{}
	}
	encoded, err := json.Marshal(preferences)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preferences: %w", err)
	}

	return &Profile{
		Name:        name,
		Age:         age,
		Premium:     premium,
		Preferences: string(encoded),
	}, nil
}

// PreferenceMap decodes the stored preferences JSON back into a map.
func (p *Profile) PreferenceMap() (map[string]string, error) {
	prefs := map[string]string{}
	if p.Preferences == "" {
		return prefs, nil
	}
	if err := json.Unmarshal([]byte(p.Preferences), &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode preferences for profile %q: %w", p.Name, err)
	}
	return prefs, nil
}

// StudySession is a scheduled study session recorded by the study assistant.
type StudySession struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	Topic       string    `db:"topic"`
	ScheduledAt time.Time `db:"scheduled_at"`
}
