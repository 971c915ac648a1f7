package personnel

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Access levels span 1 (basic access, limited operations) to 5 (full
// administrative access). The level is stored data, not an enforced
// permission.
const (
	MinAccessLevel = 1
	MaxAccessLevel = 5
)

// Position is a job title with an access tier and a gross salary. Many
// employees may hold the same position; the id never changes once minted.
type Position struct {
	ID          string
	Name        string
	AccessLevel int
	Salary      float64
}

// PositionRecord is the persisted form of a Position.
type PositionRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AccessLevel int     `json:"access_level"`
	Salary      float64 `json:"salary"`
}

// NewPosition validates the fields and mints a fresh id.
func NewPosition(name string, accessLevel int, salary float64) (*Position, error) {
	return newPosition(name, accessLevel, salary, "")
}

func newPosition(name string, accessLevel int, salary float64, id string) (*Position, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: position name must not be empty", ErrValidation)
	}
	if accessLevel < MinAccessLevel || accessLevel > MaxAccessLevel {
		return nil, fmt.Errorf("%w: access level must be between %d and %d",
			ErrValidation, MinAccessLevel, MaxAccessLevel)
	}
	if salary < 0 {
		return nil, fmt.Errorf("%w: salary must not be negative", ErrValidation)
	}
	if id == "" {
		id = uuid.NewString()
	}
	return &Position{ID: id, Name: name, AccessLevel: accessLevel, Salary: salary}, nil
}

// PositionFromRecord rebuilds a Position from its persisted form. A missing
// access level defaults to the lowest tier; a missing id mints a new one, so
// records must carry their id to round-trip identity.
func PositionFromRecord(rec PositionRecord) (*Position, error) {
	if rec.AccessLevel == 0 {
		rec.AccessLevel = MinAccessLevel
	}
	return newPosition(rec.Name, rec.AccessLevel, rec.Salary, rec.ID)
}

// Record returns the persisted form of the position.
func (p *Position) Record() PositionRecord {
	return PositionRecord{
		ID:          p.ID,
		Name:        p.Name,
		AccessLevel: p.AccessLevel,
		Salary:      p.Salary,
	}
}

func (p *Position) String() string {
	return fmt.Sprintf("%s (ID: %s) | level %d | salary %.2f",
		p.Name, p.ID, p.AccessLevel, p.Salary)
}
