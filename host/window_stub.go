//go:build !cgo

package host

import "errors"

// ErrNoWindow is returned by RunWindow when built without cgo.
var ErrNoWindow = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")

func RunWindow(_ Config, _ Logger) error {
	return ErrNoWindow
}
