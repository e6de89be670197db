package mapping

import (
	"github.com/NickyBoy89/varrefactor/replacement"
	"github.com/NickyBoy89/varrefactor/symbol"
)

// Mapping is a confirmed correspondence between one statement of the old
// version and one statement of the new version of a method body
type Mapping struct {
	Fragment1    *Fragment
	Fragment2    *Fragment
	Replacements []replacement.Replacement
	// Whether the two statements are textually identical
	Exact      bool
	Operation1 *symbol.Operation
	Operation2 *symbol.Operation
}

// PairKey identifies a mapping by the locations of its two statements
type PairKey struct {
	Fragment1 Key
	Fragment2 Key
}

// Key returns the mapping's identity
func (m *Mapping) Key() PairKey {
	return PairKey{Fragment1: m.Fragment1.Key(), Fragment2: m.Fragment2.Key()}
}

// ContainsReplacement reports whether r is one of the mapping's replacements
func (m *Mapping) ContainsReplacement(r replacement.Replacement) bool {
	return replacement.Contains(m.Replacements, r)
}

// MethodInvocationReplacements returns every call-for-call replacement of the mapping
func (m *Mapping) MethodInvocationReplacements() []*replacement.MethodInvocationReplacement {
	var found []*replacement.MethodInvocationReplacement
	for _, r := range m.Replacements {
		if mir, ok := r.(*replacement.MethodInvocationReplacement); ok {
			found = append(found, mir)
		}
	}
	return found
}

func (m *Mapping) String() string {
	return m.Fragment1.Text + " <-> " + m.Fragment2.Text
}
