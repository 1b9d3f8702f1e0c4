package console

import (
	"strings"

	"ums-console/internal/directory"
)

// View composes the search term and the role/system filters into the
// visible subset of the cached listing. It is a pure derivation over
// the repository's cache: recomputed on every change, mutating
// nothing.
type View struct {
	cache *directory.Cache

	Search       string
	RoleFilter   string
	SystemFilter string
}

func NewView(cache *directory.Cache) *View {
	return &View{cache: cache}
}

// ClearFilters resets all three filter dimensions.
func (v *View) ClearFilters() {
	v.Search = ""
	v.RoleFilter = ""
	v.SystemFilter = ""
}

// VisibleRows returns every cached record matching all active
// predicates: case-insensitive substring match on name OR email,
// AND-ed with role and system equality. Empty filters match all.
func (v *View) VisibleRows() []directory.Employee {
	all := v.cache.Snapshot()
	if v.Search == "" && v.RoleFilter == "" && v.SystemFilter == "" {
		return all
	}

	needle := strings.ToLower(v.Search)
	rows := make([]directory.Employee, 0, len(all))
	for _, e := range all {
		nameMatch := strings.Contains(strings.ToLower(e.FullName), needle)
		emailMatch := strings.Contains(strings.ToLower(e.Email), needle)
		if !nameMatch && !emailMatch {
			continue
		}
		if v.RoleFilter != "" && e.Role != v.RoleFilter {
			continue
		}
		if v.SystemFilter != "" && e.System != v.SystemFilter {
			continue
		}
		rows = append(rows, e)
	}
	return rows
}
