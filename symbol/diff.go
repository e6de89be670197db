package symbol

// ParameterDiff pairs a removed parameter with the added parameter that
// replaced it in the new version of an operation
type ParameterDiff struct {
	Removed *Parameter
	Added   *Parameter
}

// NameChanged reports whether the parameter was renamed
func (pd ParameterDiff) NameChanged() bool {
	return pd.Removed.Name() != pd.Added.Name()
}

// OperationDiff summarizes the signature-level differences between two
// versions of an operation
type OperationDiff struct {
	Before         *Operation
	After          *Operation
	ParameterDiffs []ParameterDiff
}

// RenamedParameters returns the parameter diffs whose name changed
func (od *OperationDiff) RenamedParameters() []ParameterDiff {
	if od == nil {
		return nil
	}
	var renamed []ParameterDiff
	for _, pd := range od.ParameterDiffs {
		if pd.NameChanged() {
			renamed = append(renamed, pd)
		}
	}
	return renamed
}
