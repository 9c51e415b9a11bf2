//go:build !tinygo && !cgo

package window

import "errors"

// Run reports that the desktop window is unavailable in this build
func Run(_ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
