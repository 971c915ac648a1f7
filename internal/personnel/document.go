package personnel

// Document is the full persisted state: two ordered record sequences.
// Employees reference positions by id, never by embedding.
type Document struct {
	Positions []PositionRecord `json:"positions"`
	Employees []EmployeeRecord `json:"employees"`
}

// PersistenceStore is the collaborator that reads and writes the document.
// ReadAll returns ErrNoDocument when nothing has been persisted yet; every
// mutating store operation rewrites the whole document through WriteAll.
type PersistenceStore interface {
	ReadAll() (Document, error)
	WriteAll(Document) error
}
