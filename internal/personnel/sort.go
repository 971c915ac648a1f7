package personnel

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of an employee listing.
type SortKey int

const (
	SortByLastName SortKey = iota
	SortByPosition
	SortByHireDate
)

// nameCollator orders names case-insensitively with Ukrainian collation
// rules, so Cyrillic surnames sort the way a person would file them.
var nameCollator = collate.New(language.Ukrainian, collate.IgnoreCase)

// ParseSortKey maps the wire/UI names onto the enumeration. Unknown names
// report false; callers fall back to the default key.
func ParseSortKey(name string) (SortKey, bool) {
	switch name {
	case "last_name":
		return SortByLastName, true
	case "position":
		return SortByPosition, true
	case "hire_date":
		return SortByHireDate, true
	default:
		return SortByLastName, false
	}
}

func (k SortKey) String() string {
	switch k {
	case SortByPosition:
		return "position"
	case SortByHireDate:
		return "hire_date"
	default:
		return "last_name"
	}
}

// less compares two employees under the key. Ties are left to the caller's
// stable sort, which preserves input order.
func (k SortKey) less(a, b *Employee) bool {
	switch k {
	case SortByPosition:
		return nameCollator.CompareString(a.Position.Name, b.Position.Name) < 0
	case SortByHireDate:
		return a.HireDate.Before(b.HireDate)
	default:
		return nameCollator.CompareString(a.LastName, b.LastName) < 0
	}
}
