package tui

import (
	"fmt"

	"github.com/okovalenko/kadry/internal/personnel"
)

// Form builders. Each submit closure calls exactly one store operation and
// turns its result into a status line; store failures come back verbatim so
// the footer can show the reason and the menu loop continues.

func (a *App) addPositionForm() *form {
	return newForm("Add position",
		func(values []string) (string, error) {
			pos, err := a.store.AddPosition(values[0], intValue(values[1]), floatValue(values[2]))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Added position %s (ID: %s)", pos.Name, pos.ID), nil
		},
		newField("Position name", fieldText, false),
		newField(fmt.Sprintf("Access level (%d-%d)", personnel.MinAccessLevel, personnel.MaxAccessLevel), fieldInt, false),
		newField("Salary", fieldFloat, false),
	)
}

func (a *App) updatePositionForm() *form {
	return newForm("Update position",
		func(values []string) (string, error) {
			var patch personnel.PositionPatch
			if values[1] != "" {
				patch.Name = &values[1]
			}
			if values[2] != "" {
				level := intValue(values[2])
				patch.AccessLevel = &level
			}
			if values[3] != "" {
				salary := floatValue(values[3])
				patch.Salary = &salary
			}
			pos, err := a.store.UpdatePosition(values[0], patch)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated position %s (ID: %s)", pos.Name, pos.ID), nil
		},
		newField("Position ID", fieldText, false),
		newField("New name", fieldText, true),
		newField("New access level", fieldInt, true),
		newField("New salary", fieldFloat, true),
	)
}

func (a *App) deletePositionForm() *form {
	return newForm("Delete position",
		func(values []string) (string, error) {
			if err := a.store.DeletePosition(values[0]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted position %s", values[0]), nil
		},
		newField("Position ID", fieldText, false),
	)
}

func (a *App) addEmployeeForm() *form {
	return newForm("Add employee",
		func(values []string) (string, error) {
			emp, err := a.store.AddEmployee(values[0], values[1], values[2], dateValue(values[3]))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Added employee %s (ID: %s)", emp.FullName(), emp.ID), nil
		},
		newField("First name", fieldText, false),
		newField("Last name", fieldText, false),
		newField("Position ID", fieldText, false),
		newField("Hire date (YYYY-MM-DD)", fieldDate, false),
	)
}

func (a *App) updateEmployeeForm() *form {
	return newForm("Update employee",
		func(values []string) (string, error) {
			var patch personnel.EmployeePatch
			if values[1] != "" {
				patch.FirstName = &values[1]
			}
			if values[2] != "" {
				patch.LastName = &values[2]
			}
			if values[3] != "" {
				patch.PositionID = &values[3]
			}
			if values[4] != "" {
				date := dateValue(values[4])
				patch.HireDate = &date
			}
			emp, err := a.store.UpdateEmployee(values[0], patch)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated employee %s (ID: %s)", emp.FullName(), emp.ID), nil
		},
		newField("Employee ID", fieldText, false),
		newField("New first name", fieldText, true),
		newField("New last name", fieldText, true),
		newField("New position ID", fieldText, true),
		newField("New hire date (YYYY-MM-DD)", fieldDate, true),
	)
}

func (a *App) deleteEmployeeForm() *form {
	return newForm("Delete employee",
		func(values []string) (string, error) {
			if err := a.store.DeleteEmployee(values[0]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted employee %s", values[0]), nil
		},
		newField("Employee ID", fieldText, false),
	)
}

func (a *App) searchForm() *form {
	return newForm("Search employees",
		func(values []string) (string, error) {
			found := a.store.SearchEmployees(values[0])
			a.output = renderEmployees(fmt.Sprintf("Found %d employees for %q", len(found), values[0]), found)
			a.state = stateOutput
			return fmt.Sprintf("Found %d employees", len(found)), nil
		},
		newField("Name contains", fieldText, false),
	)
}
