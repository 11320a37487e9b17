package platform_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatwatch/internal/domain"
	"heatwatch/internal/platform"
)

const (
	iphoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148"
	androidUA = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/124.0 Mobile Safari/537.36"
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/124.0 Safari/537.36"
)

var (
	allModes = []platform.ExecutionMode{
		platform.ModeStandaloneApp,
		platform.ModeMobileBrowser,
		platform.ModeDesktopBrowser,
	}
	allRoles = []domain.UserRole{
		domain.RoleAdmin,
		domain.RoleAgent,
		domain.RoleExpert,
		domain.RoleClient,
		domain.RoleAnonymous,
		domain.UserRole("superuser"),
	}
	allUAs = []string{"", iphoneUA, androidUA, desktopUA, "BlackBerry9700", "Opera Mini/9.80"}
)

func TestClassifySignals_StandaloneWinsOverUserAgent(t *testing.T) {
	for _, ua := range allUAs {
		for _, s := range []platform.Signals{
			{DisplayModeStandalone: true, UserAgent: ua},
			{NavigatorStandalone: true, UserAgent: ua},
			{Referrer: "android-app://com.heatwatch.twa/", UserAgent: ua},
		} {
			assert.Equal(t, platform.ModeStandaloneApp, platform.ClassifySignals(s), "signals %+v", s)
		}
	}
}

func TestClassifySignals_MobileUserAgents(t *testing.T) {
	for _, ua := range []string{iphoneUA, androidUA, "Mozilla/5.0 (iPad; CPU OS 16_0)", "IEMobile/10.0", "Opera Mini/9.80", "webOS/3.0", "iPod touch"} {
		mode := platform.ClassifySignals(platform.Signals{UserAgent: ua, Referrer: "https://example.sn/"})
		assert.Equal(t, platform.ModeMobileBrowser, mode, ua)
	}
}

func TestClassifySignals_CaseInsensitiveUserAgent(t *testing.T) {
	assert.Equal(t, platform.ModeMobileBrowser, platform.ClassifySignals(platform.Signals{UserAgent: "some ANDROID browser"}))
}

func TestClassifySignals_Desktop(t *testing.T) {
	assert.Equal(t, platform.ModeDesktopBrowser, platform.ClassifySignals(platform.Signals{UserAgent: desktopUA}))
	assert.Equal(t, platform.ModeDesktopBrowser, platform.ClassifySignals(platform.Signals{}))
}

type failingSource struct {
	platform.StaticSignals
	failUA bool
}

func (f failingSource) BrowserUserAgent() (string, error) {
	if f.failUA {
		return "", errors.New("navigator.userAgent unavailable")
	}
	return f.StaticSignals.BrowserUserAgent()
}

type panickingSource struct{ platform.StaticSignals }

func (panickingSource) IsDisplayStandalone() (bool, error) {
	panic("matchMedia is not a function")
}

func TestDetectExecutionMode_FallsBackToDesktop(t *testing.T) {
	assert.Equal(t, platform.ModeDesktopBrowser, platform.DetectExecutionMode(nil))

	src := failingSource{StaticSignals: platform.StaticSignals{UserAgent: iphoneUA}, failUA: true}
	assert.Equal(t, platform.ModeDesktopBrowser, platform.DetectExecutionMode(src))

	assert.NotPanics(t, func() {
		mode := platform.DetectExecutionMode(panickingSource{platform.StaticSignals{NavigatorStandalone: true}})
		assert.Equal(t, platform.ModeDesktopBrowser, mode)
	})
}

func TestDetectExecutionMode_StaticSignals(t *testing.T) {
	assert.Equal(t, platform.ModeStandaloneApp,
		platform.DetectExecutionMode(platform.StaticSignals{DisplayModeStandalone: true, UserAgent: desktopUA}))
	assert.Equal(t, platform.ModeMobileBrowser,
		platform.DetectExecutionMode(platform.StaticSignals{UserAgent: androidUA}))
}

func TestDetectExecutionMode_FromRequestHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("User-Agent", desktopUA)
	assert.Equal(t, platform.ModeDesktopBrowser, platform.DetectExecutionMode(platform.RequestSignals{Request: req}))

	req.Header.Set(platform.HeaderDisplayMode, "Standalone")
	assert.Equal(t, platform.ModeStandaloneApp, platform.DetectExecutionMode(platform.RequestSignals{Request: req}))

	req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(platform.HeaderNavigatorStandalone, "true")
	assert.Equal(t, platform.ModeStandaloneApp, platform.DetectExecutionMode(platform.RequestSignals{Request: req}))

	req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(platform.HeaderNavigatorStandalone, "not-a-bool")
	req.Header.Set("User-Agent", iphoneUA)
	assert.Equal(t, platform.ModeMobileBrowser, platform.DetectExecutionMode(platform.RequestSignals{Request: req}))

	req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Referer", "android-app://com.heatwatch.twa")
	assert.Equal(t, platform.ModeStandaloneApp, platform.DetectExecutionMode(platform.RequestSignals{Request: req}))

	assert.Equal(t, platform.ModeDesktopBrowser, platform.DetectExecutionMode(platform.RequestSignals{}))
}

func TestParseExecutionMode(t *testing.T) {
	assert.Equal(t, platform.ModeStandaloneApp, platform.ParseExecutionMode(" Standalone-App "))
	assert.Equal(t, platform.ModeMobileBrowser, platform.ParseExecutionMode("mobile-browser"))
	assert.Equal(t, platform.ModeDesktopBrowser, platform.ParseExecutionMode("tv"))
}

func isSubsequence(sub []platform.NavEntry, full platform.Catalog) bool {
	i := 0
	for _, e := range full {
		if i < len(sub) && sub[i].Path == e.Path {
			i++
		}
	}
	return i == len(sub)
}

func paths(entries []platform.NavEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}

func TestComputeVisibleNav_OrderPreservingAndIdempotent(t *testing.T) {
	catalog := platform.DefaultCatalog()
	for _, mode := range allModes {
		for _, role := range allRoles {
			first := platform.ComputeVisibleNav(mode, role, catalog)
			second := platform.ComputeVisibleNav(mode, role, catalog)
			assert.True(t, isSubsequence(first, catalog), "mode=%s role=%q", mode, role)
			assert.Equal(t, paths(first), paths(second), "mode=%s role=%q", mode, role)
		}
	}
}

func TestComputeVisibleNav_DefaultCatalogRules(t *testing.T) {
	catalog := platform.DefaultCatalog()

	assert.Equal(t, []string{
		"/dashboard/home",
		"/dashboard/alerts",
		"/dashboard/notifications",
		"/dashboard/recommandation",
		"/dashboard/profile",
	}, paths(platform.ComputeVisibleNav(platform.ModeStandaloneApp, domain.RoleAdmin, catalog)))

	assert.Equal(t, []string{
		"/dashboard/home",
		"/dashboard/ressources",
		"/dashboard/alerts",
		"/dashboard/statistics",
		"/dashboard/recommandation",
		"/dashboard/profile",
	}, paths(platform.ComputeVisibleNav(platform.ModeMobileBrowser, domain.RoleClient, catalog)))

	assert.Equal(t, []string{
		"/dashboard/home",
		"/dashboard/ressources",
		"/dashboard/alerts",
		"/dashboard/statistics",
		"/dashboard/zones",
		"/dashboard/profile",
	}, paths(platform.ComputeVisibleNav(platform.ModeDesktopBrowser, domain.RoleAdmin, catalog)))
}

func TestComputeVisibleNav_AnonymousIsMostRestrictive(t *testing.T) {
	catalog := platform.DefaultCatalog()
	for _, mode := range allModes {
		anon := platform.ComputeVisibleNav(mode, domain.RoleAnonymous, catalog)
		client := platform.ComputeVisibleNav(mode, domain.RoleClient, catalog)
		unknown := platform.ComputeVisibleNav(mode, domain.UserRole("root"), catalog)
		assert.Equal(t, paths(client), paths(anon))
		assert.Equal(t, paths(client), paths(unknown))
	}
}

func TestComputeVisibleNav_NilPredicateAndEmptyCatalog(t *testing.T) {
	catalog, err := platform.NewCatalog(platform.NavEntry{ID: "a", Path: "/a"})
	require.NoError(t, err)
	assert.Len(t, platform.ComputeVisibleNav(platform.ModeDesktopBrowser, domain.RoleAnonymous, catalog), 1)

	out := platform.ComputeVisibleNav(platform.ModeDesktopBrowser, domain.RoleAdmin, nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestNewCatalog_RejectsDuplicatePath(t *testing.T) {
	_, err := platform.NewCatalog(
		platform.NavEntry{ID: "home", Path: "/dashboard/home"},
		platform.NavEntry{ID: "home2", Path: "/dashboard/home"},
	)
	assert.ErrorIs(t, err, platform.ErrDuplicatePath)

	_, err = platform.NewCatalog(platform.DefaultCatalog()...)
	assert.NoError(t, err)
}

func TestComputeChromeLayout_NeverSidebarAndBottomBar(t *testing.T) {
	for _, mode := range allModes {
		for _, role := range allRoles {
			l := platform.ComputeChromeLayout(mode, role)
			assert.False(t, l.ShowSidebar && l.ShowBottomTabBar, "mode=%s role=%q", mode, role)
			assert.True(t, l.ShowSidebar || l.ShowBottomTabBar, "mode=%s role=%q", mode, role)
			assert.Equal(t, l.ShowSidebar, l.ShowFooter)
			if l.ShowConfiguratorButton {
				assert.Equal(t, platform.ModeDesktopBrowser, mode)
				assert.Equal(t, domain.RoleAdmin, role)
			}
		}
	}
}

func TestComputeChromeLayout_Scenarios(t *testing.T) {
	assert.Equal(t, platform.ChromeLayout{ShowBottomTabBar: true},
		platform.ComputeChromeLayout(platform.ModeStandaloneApp, domain.RoleAdmin))

	desktopClient := platform.ComputeChromeLayout(platform.ModeDesktopBrowser, domain.RoleClient)
	assert.False(t, desktopClient.ShowConfiguratorButton)
	assert.True(t, desktopClient.ShowSidebar)
	assert.True(t, desktopClient.ShowFooter)

	assert.Equal(t, platform.ChromeLayout{ShowSidebar: true, ShowFooter: true, ShowConfiguratorButton: true},
		platform.ComputeChromeLayout(platform.ModeDesktopBrowser, domain.RoleAdmin))

	assert.Equal(t, platform.ChromeLayout{ShowBottomTabBar: true},
		platform.ComputeChromeLayout(platform.ModeMobileBrowser, domain.RoleAnonymous))
}

func TestEvaluate(t *testing.T) {
	ctx := platform.Evaluate(platform.StaticSignals{UserAgent: iphoneUA}, domain.RoleClient, platform.DefaultCatalog())
	assert.Equal(t, platform.ModeMobileBrowser, ctx.Mode)
	assert.True(t, ctx.Chrome.ShowBottomTabBar)
	assert.Equal(t, domain.RoleClient, ctx.Role)
	assert.NotEmpty(t, ctx.Nav)
}

func TestDefaultCatalog_UniquePaths(t *testing.T) {
	var catalog platform.Catalog
	require.NotPanics(t, func() { catalog = platform.DefaultCatalog() })

	seen := make(map[string]bool, len(catalog))
	for _, e := range catalog {
		assert.False(t, seen[e.Path], "duplicate path %s", e.Path)
		seen[e.Path] = true
	}
	assert.Len(t, seen, 8)
}
