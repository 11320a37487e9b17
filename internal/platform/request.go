package platform

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// Headers the dashboard shell sends so the server can classify the client.
const (
	HeaderDisplayMode         = "X-Display-Mode"
	HeaderNavigatorStandalone = "X-Navigator-Standalone"
)

var errNoRequest = errors.New("no request")

// RequestSignals reads signals from an incoming HTTP request. The display
// mode comes from X-Display-Mode ("standalone" when the shell's display-mode
// media query matched), the navigator flag from X-Navigator-Standalone, and
// the referrer and user agent from their standard headers.
type RequestSignals struct {
	Request *http.Request
}

func (s RequestSignals) header(name string) (string, error) {
	if s.Request == nil {
		return "", errNoRequest
	}
	return s.Request.Header.Get(name), nil
}

func (s RequestSignals) IsDisplayStandalone() (bool, error) {
	v, err := s.header(HeaderDisplayMode)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(v), "standalone"), nil
}

// IsNavigatorStandalone treats an absent or malformed header as false.
func (s RequestSignals) IsNavigatorStandalone() (bool, error) {
	v, err := s.header(HeaderNavigatorStandalone)
	if err != nil {
		return false, err
	}
	if v == "" {
		return false, nil
	}
	b, perr := strconv.ParseBool(strings.TrimSpace(v))
	if perr != nil {
		return false, nil
	}
	return b, nil
}

func (s RequestSignals) DocumentReferrer() (string, error) {
	if s.Request == nil {
		return "", errNoRequest
	}
	return s.Request.Referer(), nil
}

func (s RequestSignals) BrowserUserAgent() (string, error) {
	if s.Request == nil {
		return "", errNoRequest
	}
	return s.Request.UserAgent(), nil
}
