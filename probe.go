package sprig

import (
	"fmt"
	"runtime"
)

// DeviceClass selects the default number of textures per draw call.
// Mobile shader compilers degrade well before desktop ones do.
type DeviceClass uint8

const (
	DeviceDesktop DeviceClass = iota
	DeviceMobile
)

const (
	defaultMaxTexturesDesktop = 16
	defaultMaxTexturesMobile  = 4
)

func (c DeviceClass) String() string {
	if c == DeviceMobile {
		return "mobile"
	}
	return "desktop"
}

func (c DeviceClass) defaultMaxTextures() int {
	if c == DeviceMobile {
		return defaultMaxTexturesMobile
	}
	return defaultMaxTexturesDesktop
}

// DetectDeviceClass guesses the device class from the build target.
func DetectDeviceClass() DeviceClass {
	switch runtime.GOOS {
	case "android", "ios":
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

// probeMaxTextures returns the number of textures one draw call may bind:
// the requested (or class default) count, capped by the device's texture
// units and by the number of conditional branches its compiler accepts.
func probeMaxTextures(dev Device, class DeviceClass, requested int) (int, error) {
	n := requested
	if n <= 0 {
		n = class.defaultMaxTextures()
	}
	if units := dev.MaxTextureImageUnits(); units < n {
		n = units
	}
	if n < 1 {
		return 0, ErrNoTextureUnits
	}
	branches := maxIfStatementsInShader(dev, n)
	if branches < n {
		Logger().Info("sprig: texture count capped by shader compiler",
			"requested", n, "branches", branches)
		n = branches
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: shader compiler rejects a single conditional", ErrNoTextureUnits)
	}
	return n, nil
}

// maxIfStatementsInShader returns the largest branch count in [0, limit]
// for which branchProbeShaderSrc compiles. It grows the count exponentially
// until a compile fails, then binary-searches the last gap.
func maxIfStatementsInShader(dev Device, limit int) int {
	if limit <= 0 {
		return 0
	}
	compiles := func(n int) bool {
		sh, err := dev.CompileShader(branchProbeShaderSrc(n))
		if err != nil {
			return false
		}
		sh.Dispose()
		return true
	}

	good, bad := 0, -1
	for n := 1; ; n *= 2 {
		if n > limit {
			n = limit
		}
		if !compiles(n) {
			bad = n
			break
		}
		good = n
		if n == limit {
			return limit
		}
	}
	// Invariant: good compiles, bad does not.
	for bad-good > 1 {
		mid := good + (bad-good)/2
		if compiles(mid) {
			good = mid
		} else {
			bad = mid
		}
	}
	return good
}
