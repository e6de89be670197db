package symbol

// Finder represents an object that can search through its declarations
// with a given criteria
type Finder interface {
	By(criteria func(d *VariableDeclaration) bool) []*VariableDeclaration
	ByName(name string) []*VariableDeclaration
}
