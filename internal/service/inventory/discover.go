package inventory

import (
	"path/filepath"
	"sort"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"
)

// Discover scans dir for source workbooks by naming convention.
// Workbooks matching masterPattern contribute the full catalogue and
// those matching vacantPattern mark currently sellable units. When
// neither pattern matches anything, the first generic workbook in the
// directory is used as a legacy single-file source where every row is
// sellable.
func Discover(dir, masterPattern, vacantPattern string) []model.Source {
	masters := globSorted(dir, masterPattern)
	vacants := globSorted(dir, vacantPattern)

	var sources []model.Source
	for _, path := range masters {
		sources = append(sources, model.Source{Path: path, Role: model.RoleMaster})
	}
	for _, path := range vacants {
		sources = append(sources, model.Source{Path: path, Role: model.RoleVacancy})
	}

	if len(sources) == 0 {
		if generic := globSorted(dir, "*.xlsx"); len(generic) > 0 {
			sources = append(sources, model.Source{Path: generic[0], Role: model.RoleLegacy})
		}
	}

	return sources
}

func globSorted(dir, pattern string) []string {
	if pattern == "" {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}
