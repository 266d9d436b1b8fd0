package sprig

import (
	"errors"
	"testing"
)

func TestMaxIfStatementsInShader(t *testing.T) {
	tests := []struct {
		name        string
		maxBranches int
		limit       int
		want        int
	}{
		{"unlimited", 0, 16, 16},
		{"capped by compiler", 5, 16, 5},
		{"power of two cap", 8, 16, 8},
		{"cap above limit", 32, 16, 16},
		{"limit not power of two", 0, 6, 6},
		{"zero limit", 0, 0, 0},
		{"compiler rejects one", -1, 16, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice(16)
			dev.maxBranches = tt.maxBranches
			if got := maxIfStatementsInShader(dev, tt.limit); got != tt.want {
				t.Errorf("maxIfStatementsInShader = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxIfStatementsDisposesProbes(t *testing.T) {
	dev := newFakeDevice(16)
	dev.maxBranches = 11
	maxIfStatementsInShader(dev, 16)
	for i, sh := range dev.shaders {
		if !sh.disposed {
			t.Errorf("probe shader %d (%d branches) not disposed", i, sh.branches)
		}
	}
}

func TestProbeMaxTextures(t *testing.T) {
	tests := []struct {
		name        string
		units       int
		maxBranches int
		class       DeviceClass
		requested   int
		want        int
	}{
		{"desktop default", 32, 0, DeviceDesktop, 0, 16},
		{"mobile default", 32, 0, DeviceMobile, 0, 4},
		{"capped by units", 3, 0, DeviceDesktop, 0, 3},
		{"capped by branches", 16, 6, DeviceDesktop, 0, 6},
		{"explicit request", 16, 0, DeviceMobile, 8, 8},
		{"request above units", 4, 0, DeviceDesktop, 8, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice(tt.units)
			dev.maxBranches = tt.maxBranches
			got, err := probeMaxTextures(dev, tt.class, tt.requested)
			if err != nil {
				t.Fatalf("probeMaxTextures: %v", err)
			}
			if got != tt.want {
				t.Errorf("probeMaxTextures = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProbeMaxTexturesNoUnits(t *testing.T) {
	_, err := probeMaxTextures(newFakeDevice(0), DeviceDesktop, 0)
	if !errors.Is(err, ErrNoTextureUnits) {
		t.Errorf("err = %v, want ErrNoTextureUnits", err)
	}
}

func TestProbeMaxTexturesNoBranches(t *testing.T) {
	dev := newFakeDevice(16)
	dev.maxBranches = -1
	_, err := probeMaxTextures(dev, DeviceDesktop, 0)
	if !errors.Is(err, ErrNoTextureUnits) {
		t.Errorf("err = %v, want ErrNoTextureUnits", err)
	}
}

func TestDeviceClassString(t *testing.T) {
	if DeviceDesktop.String() != "desktop" || DeviceMobile.String() != "mobile" {
		t.Errorf("String = %q, %q", DeviceDesktop.String(), DeviceMobile.String())
	}
}
