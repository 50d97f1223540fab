package debug

import (
	"fmt"
	"runtime"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"solar-sim/internal/physics"
	"solar-sim/internal/simulation"
	"solar-sim/internal/units"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

var title = cases.Title(language.English)

// Debug holds the runtime overlays: FPS, heap and simulation stats, drawn top-right.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastStats    []string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used to draw the overlay. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// StatsLines summarizes sys for the overlay: body census by kind, simulated time and, for
// the bounce variant, contacts in the last tick.
func StatsLines(sys *simulation.System) []string {
	var counts [3]int
	for _, b := range sys.Bodies() {
		if int(b.Kind) < len(counts) {
			counts[b.Kind]++
		}
	}
	var parts []string
	for _, k := range []physics.Kind{physics.Star, physics.Planet, physics.BlackHole} {
		if counts[k] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[k], title.String(k.String())))
		}
	}
	lines := []string{
		fmt.Sprintf("%s: %s", title.String(sys.Name()), strings.Join(parts, ", ")),
	}
	if sys.Variant() == simulation.Orbital {
		lines = append(lines, fmt.Sprintf("Years: %.1f", sys.Elapsed()/units.Year))
	} else {
		lines = append(lines, fmt.Sprintf("Time: %.1fs", sys.Elapsed()), fmt.Sprintf("Contacts: %d", sys.Contacts()))
	}
	return lines
}

func (d *Debug) drawRight(text string, y int32, c rl.Color) {
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, c)
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, c)
}

// Draw renders any enabled overlays. Call after the scene and terminal in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(sys *simulation.System) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") || (d.ShowStats && d.lastStats == nil) {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, y, rl.Green)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, y, rl.Green)
		y += fpsLineHeight
	}
	if d.ShowStats && sys != nil {
		if update {
			d.lastStats = StatsLines(sys)
		}
		for _, line := range d.lastStats {
			d.drawRight(line, y, rl.RayWhite)
			y += fpsLineHeight
		}
	}
}
