package main

import (
	"fmt"

	"solar-sim/internal/commands"
	"solar-sim/internal/controls"
	"solar-sim/internal/logger"
	"solar-sim/internal/physics"
	"solar-sim/internal/simulation"
	"solar-sim/internal/units"
)

// registerCommands wires the console commands ("cmd <name> [flags]") to the running system.
func registerCommands(reg *commands.Registry, sys *simulation.System, ctl *controls.Context, log *logger.Logger) {
	reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			log.Log(line)
		}
		return nil
	})

	gridFS := commands.NewFlagSet("grid")
	grid3D := gridFS.Bool("3d", false, "use the 3D lattice")
	grid2D := gridFS.Bool("2d", false, "use the 2D sheet")
	gridOff := gridFS.Bool("off", false, "hide the grid")
	reg.Register("grid", "show the space-time grid [--3d|--2d] or hide it with --off", gridFS, func([]string) error {
		if *grid3D && *grid2D {
			return fmt.Errorf("grid: --3d and --2d are exclusive")
		}
		if !sys.Options().EnableGrid {
			return fmt.Errorf("grid: disabled for this run (start with --grid)")
		}
		want3D := ctl.Grid3D
		switch {
		case *grid3D:
			want3D = true
		case *grid2D:
			want3D = false
		}
		if want3D != ctl.Grid3D {
			ctl.Toggle(controls.ToggleGridMode)
		}
		if ctl.ShowGrid == *gridOff {
			ctl.Toggle(controls.ToggleGrid)
		}
		return nil
	})

	reg.Register("pause", "pause or resume the simulation", nil, func([]string) error {
		ctl.Toggle(controls.TogglePause)
		return nil
	})

	reg.Register("reset", "restore the initial bodies", nil, func([]string) error {
		ctl.Toggle(controls.RequestReset)
		return nil
	})

	zoomFS := commands.NewFlagSet("zoom")
	distance := zoomFS.Float32("distance", 1000, "camera distance from the origin")
	reg.Register("zoom", "set the camera distance --distance N", zoomFS, func([]string) error {
		ctl.Camera.SetDistance(*distance)
		log.Logf("Camera distance: %g", ctl.Camera.Distance)
		return nil
	})

	policyFS := commands.NewFlagSet("policy")
	policyName := policyFS.String("name", physics.PolicyImpulse.String(), "observed or impulse")
	reg.Register("policy", "set the collision response --name observed|impulse", policyFS, func([]string) error {
		p, err := physics.ParsePolicy(*policyName)
		if err != nil {
			return err
		}
		if !sys.SetPolicy(p) {
			return fmt.Errorf("policy: only the bounce variant has collisions")
		}
		log.Logf("Collision policy: %s", p)
		return nil
	})

	stepFS := commands.NewFlagSet("timestep")
	year := stepFS.Bool("year", false, "one year per tick")
	month := stepFS.Bool("month", false, "one month per tick")
	seconds := stepFS.Float64("seconds", 0, "seconds per tick")
	reg.Register("timestep", "set seconds per tick --year|--month|--seconds N", stepFS, func([]string) error {
		var dt float64
		switch {
		case *year:
			dt = units.Year
		case *month:
			dt = units.Month
		case *seconds > 0:
			dt = *seconds
		default:
			return fmt.Errorf("timestep: pass --year, --month or a positive --seconds")
		}
		sys.SetTimestep(dt)
		log.Logf("Timestep: %gs", sys.Timestep())
		return nil
	})
}
