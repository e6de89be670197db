package refactoring

import (
	"encoding/hex"
	"strings"
	"sync"

	"lukechampine.com/blake3"

	"github.com/NickyBoy89/varrefactor/symbol"
)

// Fingerprint is the content hash of a refactoring. Refactorings with equal
// fingerprints describe the same change
type Fingerprint [32]byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// FingerprintOf computes blake3(type + "\n" + description + "\n" + declaration locations)
func FingerprintOf(r Refactoring) Fingerprint {
	var b strings.Builder
	b.WriteString(r.Type().String())
	b.WriteByte('\n')
	b.WriteString(r.String())
	b.WriteByte('\n')
	for _, decl := range declarationsOf(r) {
		b.WriteString(decl.Location.String())
		b.WriteByte(';')
	}
	return blake3.Sum256([]byte(b.String()))
}

func declarationsOf(r Refactoring) []*symbol.VariableDeclaration {
	switch r := r.(type) {
	case *RenameVariable:
		return []*symbol.VariableDeclaration{r.Original, r.Renamed}
	case *ChangeVariableType:
		return []*symbol.VariableDeclaration{r.Original, r.Changed}
	case *MergeVariable:
		return append(append([]*symbol.VariableDeclaration{}, r.Merged...), r.New)
	case *SplitVariable:
		return append([]*symbol.VariableDeclaration{r.Old}, r.Split...)
	case *ExtractVariable:
		return []*symbol.VariableDeclaration{r.Declaration}
	case *InlineVariable:
		return []*symbol.VariableDeclaration{r.Declaration}
	case *CandidateAttribute:
		var decls []*symbol.VariableDeclaration
		if r.OriginalDeclaration != nil {
			decls = append(decls, r.OriginalDeclaration)
		}
		if r.RenamedDeclaration != nil {
			decls = append(decls, r.RenamedDeclaration)
		}
		return decls
	}
	return nil
}

// Registry is an insertion-ordered collection of refactorings, shared between
// the analyses of a whole comparison. It is safe for concurrent use
type Registry struct {
	mu    sync.RWMutex
	index map[Fingerprint]int
	items []Refactoring
}

// NewRegistry creates a registry holding the given refactorings
func NewRegistry(refactorings ...Refactoring) *Registry {
	reg := &Registry{index: make(map[Fingerprint]int)}
	for _, r := range refactorings {
		reg.Add(r)
	}
	return reg
}

// Add inserts r, returning false if an equal refactoring was already present
func (reg *Registry) Add(r Refactoring) bool {
	fp := FingerprintOf(r)

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.index == nil {
		reg.index = make(map[Fingerprint]int)
	}
	if _, ok := reg.index[fp]; ok {
		return false
	}
	reg.index[fp] = len(reg.items)
	reg.items = append(reg.items, r)
	return true
}

// Contains reports whether an equal refactoring is present
func (reg *Registry) Contains(r Refactoring) bool {
	fp := FingerprintOf(r)

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	_, ok := reg.index[fp]
	return ok
}

// Len returns the number of refactorings
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.items)
}

// All returns a snapshot of the refactorings in insertion order
func (reg *Registry) All() []Refactoring {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return append([]Refactoring(nil), reg.items...)
}

// OfType returns a snapshot of every refactoring of concrete type T
func OfType[T Refactoring](reg *Registry) []T {
	var found []T
	for _, r := range reg.All() {
		if t, ok := r.(T); ok {
			found = append(found, t)
		}
	}
	return found
}
