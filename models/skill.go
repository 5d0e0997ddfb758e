package models

import "time"

// Skill is a single tracked skill owned by one account. The pair
// (UserID, Name) is unique: saving a skill under an existing name fully
// overwrites its last-practice date and decay rate.
type Skill struct {
	// SkillID is the internal unique identifier of the record.
	// Persistence-layer only, never exposed via JSON.
	SkillID int64 `json:"-"`

	// UserID is the owning account identifier. Filled from the
	// authenticated request context, never trusted from the payload.
	UserID int64 `json:"-"`

	// Name identifies the skill within the account.
	Name string `json:"name"`

	// LastPractice is the calendar date the skill was last practiced.
	LastPractice Date `json:"last_practice"`

	// DecayRate is the per-day exponential decay constant.
	// The accepted input range is [0.01, 0.1].
	DecayRate float64 `json:"decay_rate"`

	// UpdatedAt is the timestamp of the last save of this record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Skill model.
func (s Skill) TableName() string {
	return "skills"
}

// CurvePoint is one sample of a decay curve: the strength percentage at a
// given number of days after the last practice. Values are unrounded.
type CurvePoint struct {
	Day      int     `json:"day"`
	Strength float64 `json:"strength"`
}

// SkillReport is the derived dashboard state for one skill. It is computed
// fresh on every read and never persisted; recomputation is the source of
// truth, so no staleness problem exists.
type SkillReport struct {
	Skill Skill `json:"skill"`

	// DaysElapsed is the integer day difference between today and the
	// last-practice date, floored at zero.
	DaysElapsed int `json:"days_elapsed"`

	// Score is the current strength percentage, rounded to 2 decimals.
	Score float64 `json:"score"`

	// Status is the tier label for Score ("Healthy", "Needs attention",
	// "Critical").
	Status string `json:"status"`

	// Advice is the practice recommendation for the tier.
	Advice string `json:"advice"`

	// Curve holds the (day, strength) samples from day 0 through
	// DaysElapsed inclusive.
	Curve []CurvePoint `json:"curve"`

	// Stale fires when the skill has not been practiced for more than a
	// week. Independent of Critical.
	Stale bool `json:"stale"`

	// Critical fires when Score has fallen below the critical threshold.
	Critical bool `json:"critical"`

	// Adjacent lists related skills worth picking up next.
	Adjacent []string `json:"adjacent"`
}
