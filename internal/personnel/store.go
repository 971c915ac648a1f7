// Package personnel owns the position and employee collections, enforces
// their invariants and writes every change through to a persistence
// collaborator as one whole document.
package personnel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/okovalenko/kadry/internal/payroll"
)

// OpLog receives audit lines for store operations and restore-time skips.
type OpLog interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// Store is the in-memory register backed by a persistence collaborator.
// Single-actor access: no locking, every operation runs to completion.
type Store struct {
	persistence PersistenceStore
	log         OpLog
	now         func() time.Time

	positions map[string]*Position
	employees []*Employee
}

// StoreOption customizes a Store during construction.
type StoreOption func(*Store)

// WithClock overrides the clock used as "today" for hire date checks.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithOpLog attaches an audit log.
func WithOpLog(log OpLog) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore builds an empty store around the persistence collaborator. Call
// Load to restore previously persisted state.
func NewStore(persistence PersistenceStore, opts ...StoreOption) *Store {
	store := &Store{
		persistence: persistence,
		now:         time.Now,
		positions:   make(map[string]*Position),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// LoadNote reports one record dropped during restore.
type LoadNote struct {
	RecordID string
	Reason   string
}

// Load replaces the in-memory state with the persisted document. A missing
// document is the first-run case: an empty store is created and persisted to
// establish the file. Employee records with an unparseable hire date or a
// dangling position reference are dropped and reported, not fatal.
func (s *Store) Load() ([]LoadNote, error) {
	doc, err := s.persistence.ReadAll()
	if errors.Is(err, ErrNoDocument) {
		s.positions = make(map[string]*Position)
		s.employees = nil
		if err := s.persist(); err != nil {
			return nil, err
		}
		s.logf("created empty register")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	positions := make(map[string]*Position, len(doc.Positions))
	for _, rec := range doc.Positions {
		pos, err := PositionFromRecord(rec)
		if err != nil {
			return nil, err
		}
		positions[pos.ID] = pos
	}

	var notes []LoadNote
	var employees []*Employee
	today := s.now()
	for _, rec := range doc.Employees {
		emp, err := EmployeeFromRecord(rec, positions, today)
		if err != nil {
			if errors.Is(err, ErrSkipRecord) {
				notes = append(notes, LoadNote{RecordID: rec.ID, Reason: err.Error()})
				s.warnf("skipped record %s: %v", rec.ID, err)
				continue
			}
			return nil, err
		}
		employees = append(employees, emp)
	}

	s.positions = positions
	s.employees = employees
	s.logf("loaded %d positions, %d employees (%d skipped)",
		len(positions), len(employees), len(notes))
	return notes, nil
}

// Persist rewrites the whole document. Every mutating operation calls this;
// it is exported for callers that need to force a write.
func (s *Store) Persist() error {
	return s.persist()
}

// AddPosition validates, inserts and persists a new position.
func (s *Store) AddPosition(name string, accessLevel int, salary float64) (*Position, error) {
	if other := s.findPositionByName(name); other != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, strings.TrimSpace(name))
	}
	pos, err := NewPosition(name, accessLevel, salary)
	if err != nil {
		return nil, err
	}
	s.positions[pos.ID] = pos
	if err := s.persist(); err != nil {
		return nil, err
	}
	s.logf("added position %s (%s)", pos.Name, pos.ID)
	return pos, nil
}

// PositionPatch carries the optional fields of a position update. A nil
// field is left untouched.
type PositionPatch struct {
	Name        *string
	AccessLevel *int
	Salary      *float64
}

// UpdatePosition applies a patch after every supplied field passes
// validation; a failing field leaves the position and the file unchanged.
func (s *Store) UpdatePosition(id string, patch PositionPatch) (*Position, error) {
	pos, ok := s.positions[id]
	if !ok {
		return nil, fmt.Errorf("%w: position %s", ErrNotFound, id)
	}
	name := pos.Name
	if patch.Name != nil {
		name = *patch.Name
		if other := s.findPositionByName(name); other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, strings.TrimSpace(name))
		}
	}
	accessLevel := pos.AccessLevel
	if patch.AccessLevel != nil {
		accessLevel = *patch.AccessLevel
	}
	salary := pos.Salary
	if patch.Salary != nil {
		salary = *patch.Salary
	}
	updated, err := newPosition(name, accessLevel, salary, id)
	if err != nil {
		return nil, err
	}
	// Write through the shared pointer so employees holding the position
	// see the change.
	*pos = *updated
	if err := s.persist(); err != nil {
		return nil, err
	}
	s.logf("updated position %s (%s)", pos.Name, pos.ID)
	return pos, nil
}

// DeletePosition removes a position nobody holds.
func (s *Store) DeletePosition(id string) error {
	pos, ok := s.positions[id]
	if !ok {
		return fmt.Errorf("%w: position %s", ErrNotFound, id)
	}
	for _, emp := range s.employees {
		if emp.Position.ID == id {
			return fmt.Errorf("%w: %s is held by %s", ErrReferenced, pos.Name, emp.FullName())
		}
	}
	delete(s.positions, id)
	if err := s.persist(); err != nil {
		return err
	}
	s.logf("deleted position %s (%s)", pos.Name, pos.ID)
	return nil
}

// AddEmployee validates, appends and persists a new employee holding the
// referenced position.
func (s *Store) AddEmployee(first, last, positionID string, hireDate time.Time) (*Employee, error) {
	pos, ok := s.positions[positionID]
	if !ok {
		return nil, fmt.Errorf("%w: position %s", ErrNotFound, positionID)
	}
	emp, err := NewEmployee(first, last, pos, hireDate, s.now())
	if err != nil {
		return nil, err
	}
	s.employees = append(s.employees, emp)
	if err := s.persist(); err != nil {
		return nil, err
	}
	s.logf("added employee %s (%s)", emp.FullName(), emp.ID)
	return emp, nil
}

// EmployeePatch carries the optional fields of an employee update. A nil
// field is left untouched.
type EmployeePatch struct {
	FirstName  *string
	LastName   *string
	PositionID *string
	HireDate   *time.Time
}

// UpdateEmployee re-validates every supplied field exactly as construction
// would and applies the patch only when all of them pass.
func (s *Store) UpdateEmployee(id string, patch EmployeePatch) (*Employee, error) {
	emp := s.findEmployee(id)
	if emp == nil {
		return nil, fmt.Errorf("%w: employee %s", ErrNotFound, id)
	}
	first := emp.FirstName
	if patch.FirstName != nil {
		first = *patch.FirstName
	}
	last := emp.LastName
	if patch.LastName != nil {
		last = *patch.LastName
	}
	pos := emp.Position
	if patch.PositionID != nil {
		p, ok := s.positions[*patch.PositionID]
		if !ok {
			return nil, fmt.Errorf("%w: position %s", ErrNotFound, *patch.PositionID)
		}
		pos = p
	}
	hireDate := emp.HireDate
	if patch.HireDate != nil {
		hireDate = *patch.HireDate
	}
	updated, err := newEmployee(first, last, pos, hireDate, s.now(), id)
	if err != nil {
		return nil, err
	}
	*emp = *updated
	if err := s.persist(); err != nil {
		return nil, err
	}
	s.logf("updated employee %s (%s)", emp.FullName(), emp.ID)
	return emp, nil
}

// DeleteEmployee removes an employee by id, preserving the order of the rest.
func (s *Store) DeleteEmployee(id string) error {
	for i, emp := range s.employees {
		if emp.ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			if err := s.persist(); err != nil {
				return err
			}
			s.logf("deleted employee %s (%s)", emp.FullName(), emp.ID)
			return nil
		}
	}
	return fmt.Errorf("%w: employee %s", ErrNotFound, id)
}

// ListEmployees returns a new slice sorted ascending by the key. Ties keep
// the stored order; the stored collection itself is never reordered.
func (s *Store) ListEmployees(key SortKey) []*Employee {
	listed := make([]*Employee, len(s.employees))
	copy(listed, s.employees)
	sort.SliceStable(listed, func(i, j int) bool {
		return key.less(listed[i], listed[j])
	})
	return listed
}

// SearchEmployees returns employees whose first or last name contains the
// query as a case-insensitive substring. An empty result is not an error.
func (s *Store) SearchEmployees(query string) []*Employee {
	q := strings.ToLower(query)
	var found []*Employee
	for _, emp := range s.employees {
		if strings.Contains(strings.ToLower(emp.FirstName), q) ||
			strings.Contains(strings.ToLower(emp.LastName), q) {
			found = append(found, emp)
		}
	}
	return found
}

// PayrollLine pairs an employee with the gross and net amounts of one
// statement row.
type PayrollLine struct {
	Employee *Employee
	Gross    float64
	Net      float64
}

// PayrollInfo returns the per-employee statement lines and their aggregate
// summary for the current collection.
func (s *Store) PayrollInfo() ([]PayrollLine, payroll.Summary) {
	lines := make([]PayrollLine, 0, len(s.employees))
	grosses := make([]float64, 0, len(s.employees))
	for _, emp := range s.employees {
		gross := emp.Position.Salary
		lines = append(lines, PayrollLine{Employee: emp, Gross: gross, Net: payroll.Net(gross)})
		grosses = append(grosses, gross)
	}
	return lines, payroll.Summarize(grosses)
}

// Position returns the position with the given id.
func (s *Store) Position(id string) (*Position, error) {
	pos, ok := s.positions[id]
	if !ok {
		return nil, fmt.Errorf("%w: position %s", ErrNotFound, id)
	}
	return pos, nil
}

// Positions returns all positions ordered by name.
func (s *Store) Positions() []*Position {
	positions := make([]*Position, 0, len(s.positions))
	for _, pos := range s.positions {
		positions = append(positions, pos)
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return nameCollator.CompareString(positions[i].Name, positions[j].Name) < 0
	})
	return positions
}

// Employees returns the employees in stored order.
func (s *Store) Employees() []*Employee {
	employees := make([]*Employee, len(s.employees))
	copy(employees, s.employees)
	return employees
}

func (s *Store) persist() error {
	if err := s.persistence.WriteAll(s.document()); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// document snapshots the collections in a deterministic order: positions by
// name, employees as stored.
func (s *Store) document() Document {
	positionRecs := make([]PositionRecord, 0, len(s.positions))
	for _, pos := range s.Positions() {
		positionRecs = append(positionRecs, pos.Record())
	}
	employeeRecs := make([]EmployeeRecord, 0, len(s.employees))
	for _, emp := range s.employees {
		employeeRecs = append(employeeRecs, emp.Record())
	}
	return Document{Positions: positionRecs, Employees: employeeRecs}
}

func (s *Store) findPositionByName(name string) *Position {
	name = strings.TrimSpace(name)
	for _, pos := range s.positions {
		if strings.EqualFold(pos.Name, name) {
			return pos
		}
	}
	return nil
}

func (s *Store) findEmployee(id string) *Employee {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp
		}
	}
	return nil
}

func (s *Store) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Info(format, args...)
	}
}

func (s *Store) warnf(format string, args ...any) {
	if s.log != nil {
		s.log.Warn(format, args...)
	}
}
