package compare

import (
	"sort"

	"branchdiff/internal/models"
	"branchdiff/internal/version"
)

// VersionMatch pairs the two versions of a package name present in both
// branches, kept because their relation satisfied the requested filter.
type VersionMatch struct {
	Name          string `json:"name"`
	FirstVersion  string `json:"first_branch_version"`
	SecondVersion string `json:"second_branch_version"`
}

// Result holds the three comparison outcomes for one architecture.
type Result struct {
	FirstOnly  []models.Package
	SecondOnly []models.Package
	Matches    []VersionMatch
}

// Reconcile computes, for one architecture, the packages unique to either
// branch and the version relations between packages shared by name.
//
// The join key is the package name alone: a name appearing more than once
// on a side pairs with every counterpart on the other side. Reconcile has
// no side effects and reads only immutable indices, so repeated calls on
// the same inputs produce identical results.
func Reconcile(first, second *Index, arch string, filter version.Filter) Result {
	a := first.ByArchitecture(arch)
	b := second.ByArchitecture(arch)

	namesA := nameSet(a)
	namesB := nameSet(b)

	var res Result
	for _, pkg := range a {
		if _, shared := namesB[pkg.Name]; !shared {
			res.FirstOnly = append(res.FirstOnly, pkg)
		}
	}
	for _, pkg := range b {
		if _, shared := namesA[pkg.Name]; !shared {
			res.SecondOnly = append(res.SecondOnly, pkg)
		}
	}

	bByName := make(map[string][]models.Package, len(b))
	for _, pkg := range b {
		bByName[pkg.Name] = append(bByName[pkg.Name], pkg)
	}
	for _, pkgA := range a {
		for _, pkgB := range bByName[pkgA.Name] {
			rel := version.Compare(pkgA.Version, pkgB.Version)
			if filter.Matches(rel) {
				res.Matches = append(res.Matches, VersionMatch{
					Name:          pkgA.Name,
					FirstVersion:  pkgA.Version,
					SecondVersion: pkgB.Version,
				})
			}
		}
	}

	return res
}

// UnionArchitectures returns the sorted union of architectures observed
// in either index. The comparison loop walks the union, not the
// intersection: an architecture present in only one branch still gets a
// result, with everything landing in that branch's "only" set.
func UnionArchitectures(first, second *Index) []string {
	seen := make(map[string]struct{})
	for _, arch := range first.Architectures() {
		seen[arch] = struct{}{}
	}
	for _, arch := range second.Architectures() {
		seen[arch] = struct{}{}
	}

	union := make([]string, 0, len(seen))
	for arch := range seen {
		union = append(union, arch)
	}
	sort.Strings(union)
	return union
}

func nameSet(packages []models.Package) map[string]struct{} {
	names := make(map[string]struct{}, len(packages))
	for _, pkg := range packages {
		names[pkg.Name] = struct{}{}
	}
	return names
}
