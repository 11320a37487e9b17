// Package platform classifies how the dashboard is being hosted and derives
// which navigation entries and chrome elements are shown for a given mode and
// role. Every function here is a pure re-evaluation: nothing is cached, so a
// changed environment is picked up on the next call.
package platform

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// ExecutionMode is how the dashboard is currently hosted.
type ExecutionMode string

const (
	ModeStandaloneApp  ExecutionMode = "standalone-app"
	ModeMobileBrowser  ExecutionMode = "mobile-browser"
	ModeDesktopBrowser ExecutionMode = "desktop-browser"
)

// IsAppLike reports whether the mode uses the compact, bottom-tab layout.
func (m ExecutionMode) IsAppLike() bool {
	return m == ModeStandaloneApp || m == ModeMobileBrowser
}

// ParseExecutionMode maps a string back to a mode. Unknown values fall back
// to ModeDesktopBrowser.
func ParseExecutionMode(s string) ExecutionMode {
	switch ExecutionMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeStandaloneApp:
		return ModeStandaloneApp
	case ModeMobileBrowser:
		return ModeMobileBrowser
	default:
		return ModeDesktopBrowser
	}
}

// installedAppReferrer is the referrer prefix Android uses when the page is
// opened from an installed trusted web activity.
const installedAppReferrer = "android-app://"

var mobileUserAgent = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// Signals are the raw environment readings used for classification.
type Signals struct {
	DisplayModeStandalone bool   `json:"display_mode_standalone"`
	NavigatorStandalone   bool   `json:"navigator_standalone"`
	Referrer              string `json:"referrer"`
	UserAgent             string `json:"user_agent"`
}

// SignalSource reads environment signals. Implementations may fail or be
// partially unsupported; DetectExecutionMode never lets that escape.
type SignalSource interface {
	IsDisplayStandalone() (bool, error)
	IsNavigatorStandalone() (bool, error)
	DocumentReferrer() (string, error)
	BrowserUserAgent() (string, error)
}

// StaticSignals is a SignalSource over already-known values.
type StaticSignals Signals

func (s StaticSignals) IsDisplayStandalone() (bool, error)   { return s.DisplayModeStandalone, nil }
func (s StaticSignals) IsNavigatorStandalone() (bool, error) { return s.NavigatorStandalone, nil }
func (s StaticSignals) DocumentReferrer() (string, error)    { return s.Referrer, nil }
func (s StaticSignals) BrowserUserAgent() (string, error)    { return s.UserAgent, nil }

// ClassifySignals applies the classification rule to signals that have
// already been read:
//
//	standalone display mode, standalone navigator or installed-app referrer -> standalone-app
//	mobile user agent                                                        -> mobile-browser
//	anything else                                                            -> desktop-browser
func ClassifySignals(s Signals) ExecutionMode {
	if s.DisplayModeStandalone || s.NavigatorStandalone || strings.Contains(s.Referrer, installedAppReferrer) {
		return ModeStandaloneApp
	}
	if mobileUserAgent.MatchString(s.UserAgent) {
		return ModeMobileBrowser
	}
	return ModeDesktopBrowser
}

// DetectExecutionMode reads the signals from src and classifies them. A nil
// source, a read error or a panic inside the source all yield
// ModeDesktopBrowser; detection must never block rendering.
func DetectExecutionMode(src SignalSource) (mode ExecutionMode) {
	if src == nil {
		return ModeDesktopBrowser
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("platform detection unavailable", slog.String("panic", fmt.Sprint(r)))
			mode = ModeDesktopBrowser
		}
	}()

	signals, err := readSignals(src)
	if err != nil {
		slog.Debug("platform detection unavailable", slog.String("error", err.Error()))
		return ModeDesktopBrowser
	}
	return ClassifySignals(signals)
}

func readSignals(src SignalSource) (Signals, error) {
	var (
		s   Signals
		err error
	)
	if s.DisplayModeStandalone, err = src.IsDisplayStandalone(); err != nil {
		return Signals{}, fmt.Errorf("display mode: %w", err)
	}
	if s.NavigatorStandalone, err = src.IsNavigatorStandalone(); err != nil {
		return Signals{}, fmt.Errorf("navigator standalone: %w", err)
	}
	if s.Referrer, err = src.DocumentReferrer(); err != nil {
		return Signals{}, fmt.Errorf("referrer: %w", err)
	}
	if s.UserAgent, err = src.BrowserUserAgent(); err != nil {
		return Signals{}, fmt.Errorf("user agent: %w", err)
	}
	return s, nil
}
