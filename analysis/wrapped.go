package analysis

import (
	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/replacement"
)

// findParametersWrappedInLocalVariables finds parameters that were replaced
// by a different parameter wrapped into a new local, e.g. `load(Path path)`
// becoming `load(File file)` that starts with `Path path = new Path(file)`.
// The rename of path to file is backed by the mappings that use both; one
// without any such mapping is not reported
func (a *Analysis) findParametersWrappedInLocalVariables() {
	for _, statement := range a.nonMappedLeavesT2 {
		for _, decl := range statement.Declarations {
			creation := decl.Initializer.CreationCoveringEntireFragment()
			if creation == nil {
				continue
			}
			for _, arg := range creation.Arguments {
				v2, ok2 := a.declaration2(replacement.Variable("", arg))
				v1, ok1 := a.declaration1(replacement.Variable(decl.Name, ""))
				if !ok1 || !ok2 {
					continue
				}
				references := mapping.FindReferences(v1.Declaration, v2.Declaration, a.mappings)
				if references.Len() == 0 {
					a.log.WithField("argument", arg).Debug("Wrapped parameter has no references")
					continue
				}
				a.acceptRename(v1, v2, references)
			}
		}
	}
}
