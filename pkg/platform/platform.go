// Package platform identifies the environment stowd runs in so the
// matching <platform>-* and <hostname>-* config sections can be selected.
package platform

import (
	"os"
	"runtime"
)

// Platform tags used as config section prefixes
const (
	Termux  = "termux"
	Linux   = "linux"
	OSX     = "osx"
	Unknown = "unknown_platform"
)

// EnvTermux is set inside the Termux terminal environment on Android
const EnvTermux = "TERMUX_VERSION"

// Host names the platform tag and hostname used for section lookup
type Host struct {
	Platform string
	Hostname string
}

// Detect returns the platform tag for the running system. It never fails.
func Detect() string {
	if _, ok := os.LookupEnv(EnvTermux); ok {
		return Termux
	}
	return fromGOOS(runtime.GOOS)
}

func fromGOOS(goos string) string {
	switch goos {
	case "linux":
		return Linux
	case "darwin":
		return OSX
	default:
		return Unknown
	}
}

// Hostname returns the machine's hostname, or "" if it cannot be read
func Hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}

// Current returns the Host for this run. A non-empty override replaces the
// detected platform tag.
func Current(override string) Host {
	p := override
	if p == "" {
		p = Detect()
	}
	return Host{Platform: p, Hostname: Hostname()}
}
