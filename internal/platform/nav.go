package platform

import (
	"errors"
	"fmt"

	"heatwatch/internal/domain"
)

// ErrDuplicatePath is returned when two catalog entries share a path.
var ErrDuplicatePath = errors.New("duplicate navigation path")

// Visibility decides whether an entry is shown. It must handle
// domain.RoleAnonymous.
type Visibility func(mode ExecutionMode, role domain.UserRole) bool

// NavEntry is one navigation destination.
type NavEntry struct {
	ID      string     `json:"id"`
	Label   string     `json:"label"`
	Path    string     `json:"path"`
	Visible Visibility `json:"-"`
}

// Catalog is an ordered list of entries; order is display order.
type Catalog []NavEntry

// NewCatalog validates that every path is unique.
func NewCatalog(entries ...NavEntry) (Catalog, error) {
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		if prev, ok := seen[e.Path]; ok {
			return nil, fmt.Errorf("%w: %q used by %q and %q", ErrDuplicatePath, e.Path, prev, e.ID)
		}
		seen[e.Path] = e.ID
	}
	return Catalog(entries), nil
}

// ComputeVisibleNav keeps the entries whose predicate accepts (mode, role),
// preserving catalog order. An entry without a predicate is always shown.
// The result is a fresh slice; the catalog is never modified.
func ComputeVisibleNav(mode ExecutionMode, role domain.UserRole, catalog Catalog) []NavEntry {
	visible := make([]NavEntry, 0, len(catalog))
	for _, e := range catalog {
		if e.Visible == nil || e.Visible(mode, role) {
			visible = append(visible, e)
		}
	}
	return visible
}

// effectiveRole collapses unknown and anonymous roles into the most
// restrictive one.
func effectiveRole(role domain.UserRole) domain.UserRole {
	if !role.IsValid() {
		return domain.RoleClient
	}
	return role
}

// Always shows an entry in every mode for every role.
func Always(ExecutionMode, domain.UserRole) bool { return true }

// OnlyIn shows an entry in the listed modes.
func OnlyIn(modes ...ExecutionMode) Visibility {
	return func(mode ExecutionMode, _ domain.UserRole) bool {
		for _, m := range modes {
			if m == mode {
				return true
			}
		}
		return false
	}
}

// NotIn hides an entry in the listed modes.
func NotIn(modes ...ExecutionMode) Visibility {
	in := OnlyIn(modes...)
	return func(mode ExecutionMode, role domain.UserRole) bool {
		return !in(mode, role)
	}
}

// ForRoles restricts an entry to the given roles.
func ForRoles(roles ...domain.UserRole) Visibility {
	return func(_ ExecutionMode, role domain.UserRole) bool {
		r := effectiveRole(role)
		for _, allowed := range roles {
			if allowed == r {
				return true
			}
		}
		return false
	}
}

// All combines predicates; every one must accept.
func All(preds ...Visibility) Visibility {
	return func(mode ExecutionMode, role domain.UserRole) bool {
		for _, p := range preds {
			if p != nil && !p(mode, role) {
				return false
			}
		}
		return true
	}
}

// DefaultCatalog is the dashboard's navigation. It panics if two entries
// share a path.
func DefaultCatalog() Catalog {
	return mustCatalog(NewCatalog(
		NavEntry{ID: "home", Label: "dashboard", Path: "/dashboard/home", Visible: Always},
		NavEntry{ID: "resources", Label: "Ressources", Path: "/dashboard/ressources", Visible: NotIn(ModeStandaloneApp)},
		NavEntry{ID: "alerts", Label: "alerts", Path: "/dashboard/alerts", Visible: Always},
		NavEntry{ID: "notifications", Label: "notifications", Path: "/dashboard/notifications", Visible: OnlyIn(ModeStandaloneApp)},
		NavEntry{ID: "statistics", Label: "statistics", Path: "/dashboard/statistics", Visible: NotIn(ModeStandaloneApp)},
		NavEntry{ID: "recommendations", Label: "Recommandations", Path: "/dashboard/recommandation", Visible: OnlyIn(ModeStandaloneApp, ModeMobileBrowser)},
		NavEntry{ID: "zones", Label: "zones", Path: "/dashboard/zones", Visible: All(OnlyIn(ModeDesktopBrowser), ForRoles(domain.RoleAdmin))},
		NavEntry{ID: "profile", Label: "profile", Path: "/dashboard/profile", Visible: Always},
	))
}

func mustCatalog(c Catalog, err error) Catalog {
	if err != nil {
		panic(err)
	}
	return c
}
