package identity

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Generator produces synthetic browser user-agent strings.
type Generator interface {
	Generate() string
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() string

func (f GeneratorFunc) Generate() string { return f() }

const windowsPlatform = "Windows NT 10.0; Win64; x64"

type browserProfile struct {
	name       string
	weight     int
	minVersion int
	maxVersion int
	format     func(platform string, version int) string
}

var windowsDesktopProfiles = []browserProfile{
	{
		name:       "chrome",
		weight:     65,
		minVersion: 130,
		maxVersion: 143,
		format: func(platform string, v int) string {
			return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36", platform, v)
		},
	},
	{
		name:       "edge",
		weight:     20,
		minVersion: 130,
		maxVersion: 143,
		format: func(platform string, v int) string {
			return fmt.Sprintf("Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36 Edg/%d.0.0.0", platform, v, v)
		},
	},
	{
		name:       "firefox",
		weight:     15,
		minVersion: 128,
		maxVersion: 146,
		format: func(platform string, v int) string {
			return fmt.Sprintf("Mozilla/5.0 (%s; rv:%d.0) Gecko/20100101 Firefox/%d.0", platform, v, v)
		},
	},
}

// WindowsDesktopGenerator picks a weighted desktop browser on Windows and a
// recent major version for it. Safe for concurrent use.
type WindowsDesktopGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewWindowsDesktopGenerator seeds a generator. A nil source uses a time-based seed.
func NewWindowsDesktopGenerator(src rand.Source) *WindowsDesktopGenerator {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	return &WindowsDesktopGenerator{rnd: rand.New(src)}
}

// Generate returns a user-agent string for a Windows desktop browser.
func (g *WindowsDesktopGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	profile := g.pickProfile()
	version := profile.minVersion + g.rnd.IntN(profile.maxVersion-profile.minVersion+1)
	return profile.format(windowsPlatform, version)
}

func (g *WindowsDesktopGenerator) pickProfile() browserProfile {
	total := 0
	for _, p := range windowsDesktopProfiles {
		total += p.weight
	}
	n := g.rnd.IntN(total)
	for _, p := range windowsDesktopProfiles {
		if n < p.weight {
			return p
		}
		n -= p.weight
	}
	return windowsDesktopProfiles[0]
}
