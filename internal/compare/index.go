package compare

import (
	"sort"

	"branchdiff/internal/models"
)

// Index holds one branch's packages grouped by architecture. It is built
// once per branch and read-only afterwards. Duplicate (name, arch)
// entries are kept as-is so joins see the same multiplicity the manifest
// had; a name may legitimately appear once per package flavor.
type Index struct {
	byArch map[string][]models.Package
	arches []string
}

// NewIndex groups packages by architecture, preserving manifest order
// within each group. Empty input yields an empty index.
func NewIndex(packages []models.Package) *Index {
	idx := &Index{byArch: make(map[string][]models.Package)}
	for _, pkg := range packages {
		if _, seen := idx.byArch[pkg.Arch]; !seen {
			idx.arches = append(idx.arches, pkg.Arch)
		}
		idx.byArch[pkg.Arch] = append(idx.byArch[pkg.Arch], pkg)
	}
	sort.Strings(idx.arches)
	return idx
}

// Architectures returns the distinct architecture values, sorted.
func (idx *Index) Architectures() []string {
	out := make([]string, len(idx.arches))
	copy(out, idx.arches)
	return out
}

// ByArchitecture returns every package tagged with arch, in manifest order.
func (idx *Index) ByArchitecture(arch string) []models.Package {
	return idx.byArch[arch]
}

// Len returns the total number of package records in the index.
func (idx *Index) Len() int {
	n := 0
	for _, packages := range idx.byArch {
		n += len(packages)
	}
	return n
}
