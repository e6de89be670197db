package refactoring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickyBoy89/varrefactor/symbol"
)

func declaration(name, typ, file string, start int, parameter bool) *symbol.VariableDeclaration {
	return &symbol.VariableDeclaration{
		Name:      name,
		Type:      symbol.NewType(typ),
		Parameter: parameter,
		Location:  symbol.Location{File: file, Start: start, End: start + 5},
	}
}

func TestRegistryDeduplicates(t *testing.T) {
	op := &symbol.Operation{ClassName: "Shop", Name: "checkout"}
	rename := &RenameVariable{
		Original:        declaration("total", "int", "old", 10, false),
		Renamed:         declaration("sum", "int", "new", 10, false),
		OperationBefore: op,
		OperationAfter:  op,
	}
	same := &RenameVariable{
		Original:        declaration("total", "int", "old", 10, false),
		Renamed:         declaration("sum", "int", "new", 10, false),
		OperationBefore: op,
		OperationAfter:  op,
	}
	elsewhere := &RenameVariable{
		Original:        declaration("total", "int", "old", 80, false),
		Renamed:         declaration("sum", "int", "new", 80, false),
		OperationBefore: op,
		OperationAfter:  op,
	}

	reg := NewRegistry(rename)
	assert.False(t, reg.Add(same), "equal refactorings are registered once")
	assert.True(t, reg.Contains(same))
	assert.True(t, reg.Add(elsewhere), "same names at another location are a different variable")
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []Refactoring{rename, elsewhere}, reg.All())
	assert.Equal(t, FingerprintOf(rename), FingerprintOf(same))
	assert.NotEqual(t, FingerprintOf(rename), FingerprintOf(elsewhere))
}

func TestOfType(t *testing.T) {
	op := &symbol.Operation{ClassName: "Shop", Name: "checkout"}
	extract := &ExtractVariable{Declaration: declaration("price", "double", "new", 3, false), Operation: op}
	inline := &InlineVariable{Declaration: declaration("tmp", "double", "old", 3, false), Operation: op}
	reg := NewRegistry(extract, inline)

	extracts := OfType[*ExtractVariable](reg)
	require.Len(t, extracts, 1)
	assert.Same(t, extract, extracts[0])
	assert.Len(t, OfType[*InlineVariable](reg), 1)
	assert.Empty(t, OfType[*RenameVariable](reg))
}

func TestRegistryConcurrentAdd(t *testing.T) {
	reg := NewRegistry()
	op := &symbol.Operation{ClassName: "Shop", Name: "checkout"}

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ind := 0; ind < 50; ind++ {
				reg.Add(&ExtractVariable{Declaration: declaration("v", "int", "new", ind, false), Operation: op})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Len())
}

func TestRenameType(t *testing.T) {
	op := &symbol.Operation{ClassName: "Shop", Name: "checkout"}
	local := &RenameVariable{
		Original:       declaration("a", "int", "old", 1, false),
		Renamed:        declaration("b", "int", "new", 1, false),
		OperationAfter: op,
	}
	parameter := &RenameVariable{
		Original:       declaration("a", "int", "old", 1, true),
		Renamed:        declaration("b", "int", "new", 1, true),
		OperationAfter: op,
	}

	assert.Equal(t, RenameVariableType, local.Type())
	assert.Equal(t, RenameParameterType, parameter.Type())
	assert.Equal(t, "Rename Variable\ta : int to b : int in method checkout() from class Shop", local.String())
}
