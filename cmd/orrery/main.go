package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/helioviz/orrery/pkg/camera"
	"github.com/helioviz/orrery/pkg/render"
	"github.com/helioviz/orrery/pkg/scene"
	"github.com/helioviz/orrery/pkg/server"
	"github.com/helioviz/orrery/pkg/telemetry"
	"github.com/helioviz/orrery/pkg/utils"
)

const (
	appName = "orrery"
	version = "v0.2.0"
)

var cfg *utils.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Kinematic solar-system visualization server",
	Long: `Orrery animates a hierarchical set of orbiting bodies on fixed
circular paths and streams the resulting render state (world transforms,
position trails, orbit rings and an orbit-camera view) to websocket
clients once per frame. Orbits are purely kinematic: there is no force
integration, only period- and radius-parameterized motion.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = utils.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulation and stream frames over websocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := buildScene()
		if err != nil {
			return err
		}
		cam := camera.NewOrbit(cfg.Camera.Radius, cfg.Camera.Azimuth, cfg.Camera.Elevation)

		srv := server.New(cfg.Server.ListenAddr, cfg.Server.FrameRate, cfg.Server.StatsWindow, sc, cam)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return srv.Run(ctx)
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Step the simulation headless and report frame statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")
		dt, _ := cmd.Flags().GetFloat64("dt")

		sc, err := buildScene()
		if err != nil {
			return err
		}
		cam := camera.NewOrbit(cfg.Camera.Radius, cfg.Camera.Azimuth, cfg.Camera.Elevation)
		stats := telemetry.NewFrameStats(steps)

		for i := 0; i < steps; i++ {
			start := time.Now()
			sc.Step(dt)
			render.BuildFrame(sc, cam)
			stats.Observe(time.Since(start).Seconds())
		}

		s := stats.Summarize()
		fmt.Printf("steps:   %d (dt=%gs)\n", steps, dt)
		fmt.Printf("mean:    %.3f ms\n", s.MeanMs)
		fmt.Printf("stddev:  %.3f ms\n", s.StddevMs)
		fmt.Printf("p50/p99: %.3f / %.3f ms\n", s.P50Ms, s.P99Ms)
		fmt.Printf("rate:    %.0f frames/s\n", s.FPS)
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return utils.SaveConfig(utils.DefaultConfig())
	},
}

// buildScene loads the configured scene file, or the built-in default
// two-star scene when none is configured.
func buildScene() (*scene.Scene, error) {
	var sc *scene.Scene
	if cfg.Scene.File != "" {
		var err error
		sc, err = scene.LoadFile(cfg.Scene.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene %s: %w", cfg.Scene.File, err)
		}
		log.Printf("loaded scene from %s (%d bodies)", cfg.Scene.File, len(sc.BodyNames()))
	} else {
		sc = scene.Default()
	}
	sc.Sim.Speed = cfg.Simulation.Speed
	sc.Sim.Paused = cfg.Simulation.StartPaused
	return sc, nil
}

func init() {
	benchCmd.Flags().Int("steps", 1000, "number of simulation steps")
	benchCmd.Flags().Float64("dt", 1.0/60, "seconds per step")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
