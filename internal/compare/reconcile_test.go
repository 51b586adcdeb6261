package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchdiff/internal/models"
	"branchdiff/internal/version"
)

func TestReconcileThreeWaySplit(t *testing.T) {
	first := NewIndex([]models.Package{
		{Name: "pkg1", Version: "1.0", Arch: "x86_64"},
		{Name: "pkg2", Version: "2.0", Arch: "x86_64"},
	})
	second := NewIndex([]models.Package{
		{Name: "pkg2", Version: "1.5", Arch: "x86_64"},
		{Name: "pkg3", Version: "1.0", Arch: "x86_64"},
	})

	res := Reconcile(first, second, "x86_64", version.FilterGreater)

	require.Len(t, res.FirstOnly, 1)
	assert.Equal(t, "pkg1", res.FirstOnly[0].Name)

	require.Len(t, res.SecondOnly, 1)
	assert.Equal(t, "pkg3", res.SecondOnly[0].Name)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, VersionMatch{Name: "pkg2", FirstVersion: "2.0", SecondVersion: "1.5"}, res.Matches[0])
}

func TestReconcileFilterSelectsRelation(t *testing.T) {
	first := NewIndex([]models.Package{
		{Name: "older", Version: "1.0", Arch: "noarch"},
		{Name: "same", Version: "3.1", Arch: "noarch"},
		{Name: "newer", Version: "2.0", Arch: "noarch"},
	})
	second := NewIndex([]models.Package{
		{Name: "older", Version: "1.1", Arch: "noarch"},
		{Name: "same", Version: "3.1", Arch: "noarch"},
		{Name: "newer", Version: "1.9", Arch: "noarch"},
	})

	cases := []struct {
		filter version.Filter
		names  []string
	}{
		{version.FilterLess, []string{"older"}},
		{version.FilterEqual, []string{"same"}},
		{version.FilterGreater, []string{"newer"}},
		{version.FilterNotEqual, []string{"older", "newer"}},
		{version.FilterGreaterOrEqual, []string{"same", "newer"}},
		{version.FilterLessOrEqual, []string{"older", "same"}},
	}

	for _, c := range cases {
		res := Reconcile(first, second, "noarch", c.filter)
		var names []string
		for _, m := range res.Matches {
			names = append(names, m.Name)
		}
		assert.ElementsMatch(t, c.names, names, "filter %v", c.filter)
	}
}

func TestReconcileArchMissingOnOneSide(t *testing.T) {
	first := NewIndex([]models.Package{
		{Name: "only-here", Version: "1.0", Arch: "riscv64"},
	})
	second := NewIndex(nil)

	res := Reconcile(first, second, "riscv64", version.FilterGreater)

	assert.Len(t, res.FirstOnly, 1)
	assert.Empty(t, res.SecondOnly)
	assert.Empty(t, res.Matches)
}

func TestReconcileEmptyIndices(t *testing.T) {
	res := Reconcile(NewIndex(nil), NewIndex(nil), "x86_64", version.FilterGreater)
	assert.Empty(t, res.FirstOnly)
	assert.Empty(t, res.SecondOnly)
	assert.Empty(t, res.Matches)
}

func TestReconcileMultipliesDuplicateNames(t *testing.T) {
	// The join key is the name alone, so two flavors on one side pair
	// with every counterpart on the other.
	first := NewIndex([]models.Package{
		{Name: "kernel", Version: "6.1", Arch: "x86_64"},
		{Name: "kernel", Version: "6.6", Arch: "x86_64"},
	})
	second := NewIndex([]models.Package{
		{Name: "kernel", Version: "6.4", Arch: "x86_64"},
	})

	res := Reconcile(first, second, "x86_64", version.FilterNotEqual)

	assert.Empty(t, res.FirstOnly)
	assert.Empty(t, res.SecondOnly)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "6.1", res.Matches[0].FirstVersion)
	assert.Equal(t, "6.6", res.Matches[1].FirstVersion)
}

func TestUnionArchitectures(t *testing.T) {
	first := NewIndex([]models.Package{
		{Name: "a", Version: "1", Arch: "x86_64"},
		{Name: "b", Version: "1", Arch: "noarch"},
	})
	second := NewIndex([]models.Package{
		{Name: "c", Version: "1", Arch: "aarch64"},
		{Name: "d", Version: "1", Arch: "noarch"},
	})

	assert.Equal(t, []string{"aarch64", "noarch", "x86_64"}, UnionArchitectures(first, second))
}

func TestReconcileIdempotent(t *testing.T) {
	first := NewIndex([]models.Package{
		{Name: "pkg1", Version: "1.0", Arch: "x86_64"},
		{Name: "pkg2", Version: "2.0", Arch: "x86_64"},
	})
	second := NewIndex([]models.Package{
		{Name: "pkg2", Version: "1.5", Arch: "x86_64"},
	})

	once := Reconcile(first, second, "x86_64", version.FilterGreater)
	twice := Reconcile(first, second, "x86_64", version.FilterGreater)
	assert.Equal(t, once, twice)
}
