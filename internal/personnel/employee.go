package personnel

import (
	"fmt"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// HireDateLayout is the wire format for hire dates.
const HireDateLayout = "2006-01-02"

// Employee is a person record holding exactly one Position. The position is
// shared, never owned: updating it through the store is visible to every
// employee that holds it.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Position  *Position
	HireDate  time.Time
}

// EmployeeRecord is the persisted form of an Employee. The position is
// referenced by id and resolved against the loaded position set on restore.
type EmployeeRecord struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	PositionID string `json:"position_id"`
	HireDate   string `json:"hire_date"`
}

// NewEmployee validates the fields and mints a fresh id. The hire date may
// not fall after today (date granularity).
func NewEmployee(first, last string, pos *Position, hireDate, today time.Time) (*Employee, error) {
	return newEmployee(first, last, pos, hireDate, today, "")
}

func newEmployee(first, last string, pos *Position, hireDate, today time.Time, id string) (*Employee, error) {
	if !ValidName(first) {
		return nil, fmt.Errorf("%w: first name %q must contain only letters and start with an uppercase letter",
			ErrValidation, first)
	}
	if !ValidName(last) {
		return nil, fmt.Errorf("%w: last name %q must contain only letters and start with an uppercase letter",
			ErrValidation, last)
	}
	if pos == nil {
		return nil, fmt.Errorf("%w: employee requires a position", ErrValidation)
	}
	if dateOnly(hireDate).After(dateOnly(today)) {
		return nil, fmt.Errorf("%w: hire date %s must not be in the future",
			ErrValidation, hireDate.Format(HireDateLayout))
	}
	if id == "" {
		id = uuid.NewString()
	}
	return &Employee{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Position:  pos,
		HireDate:  dateOnly(hireDate),
	}, nil
}

// EmployeeFromRecord rebuilds an Employee, resolving the position id against
// the already-loaded position set. An unparseable date or a dangling
// position id wraps ErrSkipRecord so the load can drop the record and keep
// going; every other failure is fatal, exactly as at construction time.
func EmployeeFromRecord(rec EmployeeRecord, positions map[string]*Position, today time.Time) (*Employee, error) {
	hireDate, err := time.Parse(HireDateLayout, rec.HireDate)
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable hire date %q for %s %s",
			ErrSkipRecord, rec.HireDate, rec.FirstName, rec.LastName)
	}
	pos, ok := positions[rec.PositionID]
	if !ok {
		return nil, fmt.Errorf("%w: position %s not found for %s %s",
			ErrSkipRecord, rec.PositionID, rec.FirstName, rec.LastName)
	}
	return newEmployee(rec.FirstName, rec.LastName, pos, hireDate, today, rec.ID)
}

// Record returns the persisted form of the employee.
func (e *Employee) Record() EmployeeRecord {
	return EmployeeRecord{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		PositionID: e.Position.ID,
		HireDate:   e.HireDate.Format(HireDateLayout),
	}
}

// FullName is the display name used by listings and search results.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e *Employee) String() string {
	return fmt.Sprintf("%s (ID: %s) | %s | hired %s",
		e.FullName(), e.ID, e.Position.Name, e.HireDate.Format(HireDateLayout))
}

// ValidName reports whether the whole string is alphabetic with an uppercase
// first rune. Internal whitespace, digits and punctuation all fail.
func ValidName(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
