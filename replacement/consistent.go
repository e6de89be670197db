package replacement

// Named is anything that renames one name to another
type Named interface {
	Before() string
	After() string
}

// ConsistentRenames partitions renames into the consistent and the
// inconsistent ones, keeping the input order in both. A rename is inconsistent
// when another rename claims the same before-name for a different after-name,
// or the same after-name for a different before-name
func ConsistentRenames[R Named](renames []R) (consistent, inconsistent []R) {
	conflicting := make([]bool, len(renames))
	for i := range renames {
		for j := i + 1; j < len(renames); j++ {
			if conflicts(renames[i], renames[j]) {
				conflicting[i] = true
				conflicting[j] = true
			}
		}
	}
	for ind, rename := range renames {
		if conflicting[ind] {
			inconsistent = append(inconsistent, rename)
		} else {
			consistent = append(consistent, rename)
		}
	}
	return consistent, inconsistent
}

func conflicts(a, b Named) bool {
	sameBefore := a.Before() == b.Before()
	sameAfter := a.After() == b.After()
	return sameBefore != sameAfter
}
