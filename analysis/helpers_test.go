package analysis

import (
	"context"
	"sort"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickyBoy89/varrefactor/javamodel"
	"github.com/NickyBoy89/varrefactor/mapping"
	"github.com/NickyBoy89/varrefactor/refactoring"
	"github.com/NickyBoy89/varrefactor/symbol"
)

func parse(t *testing.T, file, snippet string) *javamodel.Method {
	t.Helper()
	m, err := javamodel.ParseMethod(context.Background(), file, snippet)
	require.NoError(t, err)
	return m
}

func build(t *testing.T, mb *javamodel.MapperBuilder) *mapping.Mapper {
	t.Helper()
	mapper, err := mb.Build()
	require.NoError(t, err)
	return mapper
}

// debugLogger returns a logger recording every entry down to debug level
func debugLogger() (*log.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	return logger, hook
}

func logged(hook *test.Hook, message string) bool {
	for _, entry := range hook.AllEntries() {
		if entry.Message == message {
			return true
		}
	}
	return false
}

func renameNames(renames []*refactoring.RenameVariable) []string {
	var names []string
	for _, r := range renames {
		names = append(names, r.Original.Name+" -> "+r.Renamed.Name)
	}
	return names
}

func declarationNames(decls []*symbol.VariableDeclaration) []string {
	names := make([]string, len(decls))
	for ind, decl := range decls {
		names[ind] = decl.Name
	}
	sort.Strings(names)
	return names
}

// descriptions lists every result of an analysis, so that two analyses can
// be compared as a whole
func descriptions(a *Analysis) []string {
	var out []string
	for _, r := range a.Renames() {
		out = append(out, r.String())
	}
	for _, r := range a.Merges() {
		out = append(out, r.String())
	}
	for _, r := range a.Splits() {
		out = append(out, r.String())
	}
	for _, r := range a.CandidateAttributeRenames() {
		out = append(out, r.String())
	}
	for _, r := range a.CandidateMerges() {
		out = append(out, r.String())
	}
	for _, r := range a.CandidateSplits() {
		out = append(out, r.String())
	}
	for _, r := range a.TypeChanges() {
		out = append(out, r.String())
	}
	return out
}

// evidenced lists every result of an analysis that carries evidence
func evidenced(a *Analysis) []refactoring.Evidenced {
	var out []refactoring.Evidenced
	for _, r := range a.Renames() {
		out = append(out, r)
	}
	for _, r := range a.Merges() {
		out = append(out, r)
	}
	for _, r := range a.Splits() {
		out = append(out, r)
	}
	for _, r := range a.CandidateAttributeRenames() {
		out = append(out, r)
	}
	for _, r := range a.CandidateMerges() {
		out = append(out, r)
	}
	for _, r := range a.CandidateSplits() {
		out = append(out, r)
	}
	for _, r := range a.TypeChanges() {
		out = append(out, r)
	}
	return out
}

// assertSound checks that every result is backed by mappings of mapper
func assertSound(t *testing.T, a *Analysis, mapper *mapping.Mapper) {
	t.Helper()
	for _, r := range evidenced(a) {
		assert.NotZero(t, r.References().Len(), "%s has no evidence", r)
		assert.True(t, r.References().SubsetOf(mapper.Mappings), "%s has evidence outside the mappings", r)
	}
}

// assertDisjoint checks that no rename is also part of a merge or a split
func assertDisjoint(t *testing.T, a *Analysis) {
	t.Helper()
	for _, rename := range a.Renames() {
		for _, merge := range a.Merges() {
			assert.False(t, symbol.ContainsDeclaration(merge.Merged, rename.Original) && merge.New.Equal(rename.Renamed),
				"%s is part of %s", rename, merge)
		}
		for _, split := range a.Splits() {
			assert.False(t, split.Old.Equal(rename.Original) && symbol.ContainsDeclaration(split.Split, rename.Renamed),
				"%s is part of %s", rename, split)
		}
	}
}
