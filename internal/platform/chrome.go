package platform

import "heatwatch/internal/domain"

// ChromeLayout says which non-content scaffolding is rendered.
type ChromeLayout struct {
	ShowSidebar            bool `json:"show_sidebar"`
	ShowFooter             bool `json:"show_footer"`
	ShowBottomTabBar       bool `json:"show_bottom_tab_bar"`
	ShowConfiguratorButton bool `json:"show_configurator_button"`
}

// ComputeChromeLayout returns the chrome for a mode and role. Desktop gets the
// sidebar and footer (and the configurator button for admins); app-like modes
// get only the bottom tab bar. The two layouts never overlap.
func ComputeChromeLayout(mode ExecutionMode, role domain.UserRole) ChromeLayout {
	if mode.IsAppLike() {
		return ChromeLayout{ShowBottomTabBar: true}
	}
	return ChromeLayout{
		ShowSidebar:            true,
		ShowFooter:             true,
		ShowConfiguratorButton: effectiveRole(role) == domain.RoleAdmin,
	}
}

// Context is one evaluation of the platform policy, computed once per request
// and handed to whatever renders the shell.
type Context struct {
	Mode   ExecutionMode   `json:"mode"`
	Role   domain.UserRole `json:"role"`
	Nav    []NavEntry      `json:"nav"`
	Chrome ChromeLayout    `json:"chrome"`
}

// Evaluate detects the mode from src and computes nav and chrome for role.
func Evaluate(src SignalSource, role domain.UserRole, catalog Catalog) Context {
	mode := DetectExecutionMode(src)
	return Context{
		Mode:   mode,
		Role:   role,
		Nav:    ComputeVisibleNav(mode, role, catalog),
		Chrome: ComputeChromeLayout(mode, role),
	}
}
