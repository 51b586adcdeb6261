package cli

import (
	"bufio"
	"os"
	"strings"

	"branchdiff/internal/models"
)

// loadAllowList merges the --packages values with names read from the
// allow-list file, one name per line, deduplicated. Blank lines and
// surrounding whitespace are ignored. An empty result means no
// restriction.
func loadAllowList(names []string, path string) (map[string]struct{}, error) {
	allowed := make(map[string]struct{})
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			allowed[name] = struct{}{}
		}
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if name := strings.TrimSpace(sc.Text()); name != "" {
				allowed[name] = struct{}{}
			}
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}

	return allowed, nil
}

// filterByName keeps only the packages whose name is on the allow-list,
// preserving manifest order.
func filterByName(packages []models.Package, allowed map[string]struct{}) []models.Package {
	kept := make([]models.Package, 0, len(packages))
	for _, pkg := range packages {
		if _, ok := allowed[pkg.Name]; ok {
			kept = append(kept, pkg)
		}
	}
	return kept
}
