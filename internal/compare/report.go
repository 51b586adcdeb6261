package compare

import "branchdiff/internal/models"

// ArchReport is the serialized comparison outcome for one architecture:
// each list with its cardinality alongside.
type ArchReport struct {
	SecondOnlyCount    int              `json:"second_only_count"`
	SecondOnlyPackages []models.Package `json:"second_only_packages"`
	FirstOnlyCount     int              `json:"first_only_count"`
	FirstOnlyPackages  []models.Package `json:"first_only_packages"`
	RelationMatchCount int              `json:"relation_match_count"`
	RelationMatches    []VersionMatch   `json:"relation_matches"`
}

// Report maps architecture name to its comparison outcome. It is the
// root output artifact, built once and never amended.
type Report map[string]ArchReport

// BuildReport materializes counts alongside the lists. All filtering has
// already happened in Reconcile; this is pure aggregation.
func BuildReport(results map[string]Result) Report {
	report := make(Report, len(results))
	for arch, res := range results {
		report[arch] = ArchReport{
			SecondOnlyCount:    len(res.SecondOnly),
			SecondOnlyPackages: packagesOrEmpty(res.SecondOnly),
			FirstOnlyCount:     len(res.FirstOnly),
			FirstOnlyPackages:  packagesOrEmpty(res.FirstOnly),
			RelationMatchCount: len(res.Matches),
			RelationMatches:    matchesOrEmpty(res.Matches),
		}
	}
	return report
}

// Empty sets serialize as [] rather than null.

func packagesOrEmpty(packages []models.Package) []models.Package {
	if packages == nil {
		return []models.Package{}
	}
	return packages
}

func matchesOrEmpty(matches []VersionMatch) []VersionMatch {
	if matches == nil {
		return []VersionMatch{}
	}
	return matches
}
