// Package scenario loads simulation scenarios from YAML documents. The built-in scenarios
// are embedded in the binary; a file path can be given instead of a built-in name.
package scenario

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"solar-sim/internal/physics"
	"solar-sim/internal/simulation"
)

// DefaultName is the scenario used when none is requested.
const DefaultName = "solar"

var (
	// ErrUnknownScenario is returned by Resolve when the name is neither a built-in nor a file.
	ErrUnknownScenario = errors.New("unknown scenario")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid scenario")
)

//go:embed presets/*.yaml
var presets embed.FS

// Timestep is seconds per tick. In YAML it is written as "year", "month" or a number.
type Timestep float64

func (t *Timestep) UnmarshalYAML(n *yaml.Node) error {
	dt, err := simulation.ParseTimestep(strings.TrimSpace(n.Value))
	if err != nil {
		return err
	}
	*t = Timestep(dt)
	return nil
}

type bodyDoc struct {
	Name       string  `yaml:"name"`
	Kind       string  `yaml:"kind"`
	DistanceKm float64 `yaml:"distance_km"`
	Mass       float64 `yaml:"mass"`
	Density    float64 `yaml:"density"`
	Color      string  `yaml:"color"`
}

type bounceDoc struct {
	Count    int     `yaml:"count"`
	Seed     uint64  `yaml:"seed"`
	Boundary float32 `yaml:"boundary"`
	Gravity  float64 `yaml:"gravity"`
	MassMin  float64 `yaml:"mass_min"`
	MassMax  float64 `yaml:"mass_max"`
	Density  float64 `yaml:"density"`
	Speed    float32 `yaml:"speed"`
}

type document struct {
	Name     string     `yaml:"name"`
	Variant  string     `yaml:"variant"`
	Timestep Timestep   `yaml:"timestep"`
	Primary  *bodyDoc   `yaml:"primary"`
	Bodies   []bodyDoc  `yaml:"bodies"`
	Bounce   *bounceDoc `yaml:"bounce"`
}

// Names returns the built-in scenario names in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(presets, "presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Builtin returns the embedded scenario with the given name.
func Builtin(name string) (simulation.Scenario, error) {
	data, err := presets.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return simulation.Scenario{}, fmt.Errorf("%w %q (built-in: %s)", ErrUnknownScenario, name, strings.Join(Names(), ", "))
	}
	return Parse(data)
}

// Load reads a scenario document from path. A document without a name takes the file's
// base name.
func Load(path string) (simulation.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return simulation.Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return simulation.Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Resolve loads nameOrPath as a file when one exists there and as a built-in otherwise.
func Resolve(nameOrPath string) (simulation.Scenario, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultName
	}
	if info, err := os.Stat(nameOrPath); err == nil && !info.IsDir() {
		return Load(nameOrPath)
	}
	return Builtin(nameOrPath)
}

// Parse decodes and validates one YAML scenario document.
func Parse(data []byte) (simulation.Scenario, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return simulation.Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	return doc.scenario()
}

func invalid(name, field, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s: %s", ErrInvalid, name, field, fmt.Sprintf(format, args...))
}

func (d document) scenario() (simulation.Scenario, error) {
	sc := simulation.Scenario{Name: d.Name, Timestep: float64(d.Timestep)}
	if sc.Timestep <= 0 {
		return sc, invalid(d.Name, "timestep", "required")
	}

	switch d.Variant {
	case "", "orbital":
		sc.Variant = simulation.Orbital
	case "bounce":
		sc.Variant = simulation.Bounce
	default:
		return sc, invalid(d.Name, "variant", "want orbital or bounce, got %q", d.Variant)
	}

	if sc.Variant == simulation.Bounce {
		b := d.Bounce
		if b == nil {
			return sc, invalid(d.Name, "bounce", "required for the bounce variant")
		}
		switch {
		case b.Count <= 0:
			return sc, invalid(d.Name, "bounce.count", "must be positive, got %d", b.Count)
		case b.Boundary <= 0:
			return sc, invalid(d.Name, "bounce.boundary", "must be positive, got %g", b.Boundary)
		case b.MassMin <= 0:
			return sc, invalid(d.Name, "bounce.mass_min", "must be positive, got %g", b.MassMin)
		case b.MassMax < b.MassMin:
			return sc, invalid(d.Name, "bounce.mass_max", "must be at least mass_min")
		}
		sc.Bounce = simulation.BounceConfig(*b)
		return sc, nil
	}

	if d.Primary == nil {
		return sc, invalid(d.Name, "primary", "required for the orbital variant")
	}
	primary, err := d.Primary.entry(physics.Star, false)
	if err != nil {
		return sc, invalid(d.Name, "primary", "%v", err)
	}
	sc.Primary = primary
	for i, bd := range d.Bodies {
		e, err := bd.entry(physics.Planet, true)
		if err != nil {
			return sc, invalid(d.Name, "bodies["+strconv.Itoa(i)+"]", "%v", err)
		}
		sc.Bodies = append(sc.Bodies, e)
	}
	return sc, nil
}

func (b bodyDoc) entry(defaultKind physics.Kind, orbiting bool) (simulation.Entry, error) {
	e := simulation.Entry{Name: b.Name, DistanceKm: b.DistanceKm, Mass: b.Mass, Density: b.Density, Kind: defaultKind}
	if b.Mass <= 0 {
		return e, fmt.Errorf("mass must be positive, got %g", b.Mass)
	}
	if orbiting && b.DistanceKm <= 0 {
		return e, fmt.Errorf("distance_km must be positive, got %g", b.DistanceKm)
	}
	if b.Kind != "" {
		kind, err := physics.ParseKind(b.Kind)
		if err != nil {
			return e, err
		}
		e.Kind = kind
	}
	e.Color = [4]float32{1, 1, 1, 1}
	if b.Color != "" {
		c, err := ParseColor(b.Color)
		if err != nil {
			return e, err
		}
		e.Color = c
	}
	return e, nil
}

// ParseColor reads "#rrggbb" or an SVG/CSS color name into an opaque RGBA.
func ParseColor(s string) ([4]float32, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return [4]float32{}, fmt.Errorf("color %q: %w", s, err)
		}
		return [4]float32{float32(c.R), float32(c.G), float32(c.B), 1}, nil
	}
	rgba, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(s, " ", ""))]
	if !ok {
		return [4]float32{}, fmt.Errorf("unknown color %q", s)
	}
	return [4]float32{float32(rgba.R) / 255, float32(rgba.G) / 255, float32(rgba.B) / 255, 1}, nil
}
