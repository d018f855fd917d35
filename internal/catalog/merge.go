package catalog

import "slices"

// MergeDependencies appends every name not already listed in
// d.Spec.DependsOn, keeping the existing order. Entries are never removed.
// It returns the number of names added.
func MergeDependencies(d *Descriptor, names []string) int {
	added := 0

	for _, name := range names {
		if name == "" || slices.Contains(d.Spec.DependsOn, name) {
			continue
		}

		d.Spec.DependsOn = append(d.Spec.DependsOn, name)
		added++
	}

	return added
}
