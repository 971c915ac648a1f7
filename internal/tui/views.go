package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okovalenko/kadry/internal/payroll"
	"github.com/okovalenko/kadry/internal/personnel"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("105"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func renderPositions(positions []*personnel.Position) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Positions"))
	b.WriteString("\n\n")
	if len(positions) == 0 {
		b.WriteString(labelStyle.Render("No positions yet."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-36s  %-24s  %-5s  %12s", "ID", "NAME", "LEVEL", "SALARY")))
	b.WriteString("\n")
	for _, pos := range positions {
		b.WriteString(fmt.Sprintf("%-36s  %-24s  %-5d  %12.2f\n",
			pos.ID, pos.Name, pos.AccessLevel, pos.Salary))
	}
	return b.String()
}

func renderEmployees(title string, employees []*personnel.Employee) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	if len(employees) == 0 {
		b.WriteString(labelStyle.Render("No employees found."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-36s  %-24s  %-20s  %s", "ID", "NAME", "POSITION", "HIRED")))
	b.WriteString("\n")
	for _, emp := range employees {
		b.WriteString(fmt.Sprintf("%-36s  %-24s  %-20s  %s\n",
			emp.ID, emp.FullName(), emp.Position.Name,
			emp.HireDate.Format(personnel.HireDateLayout)))
	}
	return b.String()
}

func renderPayroll(lines []personnel.PayrollLine, summary payroll.Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Payroll statement"))
	b.WriteString("\n\n")
	if len(lines) == 0 {
		b.WriteString(labelStyle.Render("No employees on the payroll."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-24s  %-20s  %12s  %12s", "NAME", "POSITION", "GROSS", "NET")))
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(fmt.Sprintf("%-24s  %-20s  %12.2f  %12.2f\n",
			line.Employee.FullName(), line.Employee.Position.Name, line.Gross, line.Net))
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Totals"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total gross:   %12.2f\n", summary.TotalGross))
	b.WriteString(fmt.Sprintf("Total net:     %12.2f\n", summary.TotalNet))
	b.WriteString(fmt.Sprintf("Average gross: %12.2f\n", summary.AverageGross))
	b.WriteString(fmt.Sprintf("Average net:   %12.2f\n", summary.AverageNet))
	return b.String()
}
