package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/pflag"

	"solar-sim/internal/commands"
	"solar-sim/internal/controls"
	"solar-sim/internal/debug"
	"solar-sim/internal/fonts"
	"solar-sim/internal/graphics"
	"solar-sim/internal/logger"
	"solar-sim/internal/physics"
	"solar-sim/internal/render"
	"solar-sim/internal/scenario"
	"solar-sim/internal/simulation"
	"solar-sim/internal/terminal"
)

type config struct {
	scenario   string
	preset     string
	dimensions int
	blackHoles bool
	grid       bool
	policy     string
	timestep   string
	fps        int
	logPath    string
	stats      bool
	list       bool
	headless   int
}

func parseFlags(args []string) (config, *pflag.FlagSet, error) {
	var c config
	fs := pflag.NewFlagSet("solarsim", pflag.ContinueOnError)
	fs.StringVarP(&c.scenario, "scenario", "s", scenario.DefaultName, "built-in scenario name or path to a YAML scenario")
	fs.StringVarP(&c.preset, "preset", "p", "", "option preset ("+strings.Join(simulation.PresetNames(), ", ")+")")
	fs.IntVar(&c.dimensions, "dimensions", 3, "2 keeps every orbit in one plane, 3 inclines them")
	fs.BoolVar(&c.blackHoles, "black-holes", false, "place the scenario's black holes")
	fs.BoolVar(&c.grid, "grid", true, "allow the space-time grid")
	fs.StringVar(&c.policy, "policy", physics.PolicyObserved.String(), "collision response for the bounce variant (observed, impulse)")
	fs.StringVar(&c.timestep, "timestep", "", "seconds per tick, or year/month; empty uses the scenario's")
	fs.IntVar(&c.fps, "fps", 60, "target frames per second")
	fs.StringVar(&c.logPath, "log", logger.DefaultPath, "log file; empty keeps the log in memory")
	fs.BoolVar(&c.stats, "stats", true, "show the FPS and simulation overlay")
	fs.BoolVar(&c.list, "list", false, "list built-in scenarios and presets, then exit")
	fs.IntVar(&c.headless, "headless-ticks", 0, "run this many ticks without a window and report energy drift")
	err := fs.Parse(args)
	return c, fs, err
}

// options merges the preset (or the defaults) with the flags that were set explicitly.
func options(c config, fs *pflag.FlagSet) (simulation.Options, error) {
	opts := simulation.DefaultOptions()
	if c.preset != "" {
		p, err := simulation.Preset(c.preset)
		if err != nil {
			return opts, err
		}
		opts = p
	}
	if c.preset == "" || fs.Changed("dimensions") {
		opts.Dimensions = c.dimensions
	}
	if c.preset == "" || fs.Changed("black-holes") {
		opts.EnableBlackHoles = c.blackHoles
	}
	if c.preset == "" || fs.Changed("grid") {
		opts.EnableGrid = c.grid
	}
	policy, err := physics.ParsePolicy(c.policy)
	if err != nil {
		return opts, err
	}
	opts.Policy = policy
	if c.timestep != "" {
		dt, err := simulation.ParseTimestep(c.timestep)
		if err != nil {
			return opts, err
		}
		opts.Timestep = dt
	}
	return opts, opts.Validate()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "solarsim:", err)
		if errors.Is(err, graphics.ErrWindowInit) {
			os.Exit(-1)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	c, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	if c.list {
		fmt.Println("scenarios:", strings.Join(scenario.Names(), ", "))
		fmt.Println("presets:  ", strings.Join(simulation.PresetNames(), ", "))
		return nil
	}
	opts, err := options(c, fs)
	if err != nil {
		return err
	}
	sc, err := scenario.Resolve(c.scenario)
	if err != nil {
		return err
	}
	sys, err := simulation.New(sc, opts)
	if err != nil {
		return err
	}

	log := logger.New(c.logPath)
	log.Logf("Scenario %s (%s): %d bodies, %d-D, timestep %gs", sc.Name, sc.Variant, len(sys.Bodies()), opts.Dimensions, sys.Timestep())
	if holes := countBlackHoles(sc); holes > 0 && !opts.EnableBlackHoles {
		log.Logf("%d black hole(s) skipped; pass --black-holes to place them", holes)
	}

	if c.headless > 0 {
		return runHeadless(sys, c.headless, log)
	}

	ctl := controls.New(log)
	for _, line := range controls.Banner() {
		fmt.Println(line)
		log.Log(line)
	}

	reg := commands.NewRegistry()
	registerCommands(reg, sys, ctl, log)
	term := terminal.New(log, reg)
	dbg := debug.New()
	dbg.ShowFPS, dbg.ShowMemAlloc, dbg.ShowStats = c.stats, c.stats, c.stats
	ren := render.New()
	in := newInput()

	var frame simulation.Frame
	fontLoaded := false
	update := func() {
		if !fontLoaded {
			fontLoaded = true
			if path := fonts.Find(fonts.BaseDirs()); path != "" {
				font := rl.LoadFontEx(path, 40, nil)
				term.SetFont(font)
				dbg.SetFont(font)
			}
		}
		term.Update()
		if !term.IsOpen() {
			held, pressed := in.poll()
			ctl.Apply(held, pressed)
		}
		if ctl.TakeReset() {
			resetSystem(sys, log)
		}
		if !ctl.Paused {
			sys.Tick()
		}
		frame = sys.Frame(simulation.FrameRequest{ShowGrid: ctl.ShowGrid, Grid3D: ctl.Grid3D})
		ren.SetView(ctl.Camera.View())
	}
	draw := func() {
		ren.Draw(frame)
		term.Draw()
		dbg.Draw(sys)
	}

	w := graphics.DefaultWindow()
	w.TargetFPS = int32(c.fps)
	return graphics.Run(w, update, draw)
}

func countBlackHoles(sc simulation.Scenario) int {
	n := 0
	for _, e := range sc.Bodies {
		if e.Kind == physics.BlackHole {
			n++
		}
	}
	return n
}

func resetSystem(sys *simulation.System, log *logger.Logger) {
	if err := sys.Reset(); err != nil {
		log.Logf("reset: %v", err)
		return
	}
	log.Log("Simulation reset")
}

func runHeadless(sys *simulation.System, ticks int, log *logger.Logger) error {
	w := sys.World()
	e0 := w.Energy()
	for i := 0; i < ticks; i++ {
		sys.Tick()
	}
	e1 := w.Energy()
	drift := 0.0
	if e0 != 0 {
		drift = (e1 - e0) / math.Abs(e0)
	}
	log.Logf("Ran %d ticks (%gs simulated): energy %.6e J -> %.6e J, relative drift %.3e", ticks, sys.Elapsed(), e0, e1, drift)
	for _, line := range log.Lines() {
		fmt.Println(line)
	}
	return nil
}
