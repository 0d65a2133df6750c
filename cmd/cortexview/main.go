package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"cortexview/audio"
	"cortexview/config"
	"cortexview/constant"
	"cortexview/core"
	"cortexview/engine"
	"cortexview/event"
	"cortexview/geometry"
	"cortexview/logging"
	"cortexview/network"
	"cortexview/render"
	"cortexview/system"
	"cortexview/telemetry"
)

const version = "0.1.0"

var (
	flagConfig   string
	flagSeed     int64
	flagAddress  string
	flagNetwork  bool
	flagHeadless bool
	flagNoAudio  bool
	flagNoColor  bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	root := &cobra.Command{
		Use:   "cortexview",
		Short: "Terminal visualization of activity as a firing neural network",
		Long: `cortexview renders component activity as a rotating 3D brain in the
terminal: regions light up, signals travel between them, and an overall
health readout decays unless fed. Activity arrives over TCP from an
external application, from local host telemetry, or from the built-in
generator when no feed is connected.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	root.Flags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	root.Flags().Int64Var(&flagSeed, "seed", 0, "simulation random seed (0 derives from time)")
	root.Flags().StringVarP(&flagAddress, "address", "a", "", "activity feed address (host:port)")
	root.Flags().BoolVar(&flagNetwork, "network", false, "connect to the activity feed")
	root.Flags().BoolVar(&flagHeadless, "headless", false, "run the simulation without a terminal UI")
	root.Flags().BoolVar(&flagNoAudio, "no-audio", false, "disable the activation chime")
	root.Flags().BoolVar(&flagNoColor, "no-color", false, "monochrome rendering")
	root.Flags().StringVar(&flagLogFile, "log-file", "", "log destination (default discard)")
	root.Flags().StringVar(&flagLogLevel, "log-level", "", "log verbosity: info or debug")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the cortexview version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("cortexview", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	path := flagConfig
	if path == "" {
		path = os.Getenv("CORTEXVIEW_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	log, logCloser, err := logging.Open(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := engine.NewWorld(core.NewRand(seed), cfg.Sim.PulseDuration.Std())
	world.Resource.Log = log

	if err := geometry.Build(world, cfg.Sim); err != nil {
		return fmt.Errorf("build topology: %w", err)
	}
	log.Info("topology built",
		"regions", len(geometry.Topology),
		"neurons", cfg.Sim.NeuronCount,
		"synapses", cfg.Sim.SynapseCount,
		"seed", seed)

	var chime *audio.Chime
	if cfg.Audio.Enabled {
		chime, err = audio.NewChime()
		if err != nil {
			log.Warn("audio unavailable", "error", err)
		} else {
			world.Resource.Chime = chime
			defer chime.Close()
		}
	}

	activation := system.NewActivationSystem(world)
	world.AddSystem(system.NewGeneratorSystem(world, activation, !cfg.Network.Enabled))
	world.AddSystem(activation)
	world.AddSystem(system.NewSignalSystem(world, activation))
	world.AddSystem(system.NewEffectSystem(world))
	world.AddSystem(system.NewHealthSystem(world))

	driver := engine.NewFrameDriver(world, cfg.Sim.TickInterval.Std())

	if cfg.Network.Enabled {
		client := network.NewClient(cfg.Network, world, log)
		client.Start()
		defer client.Stop()
	}
	if cfg.Telemetry.Enabled {
		sampler := telemetry.NewSampler(cfg.Telemetry, world, log)
		sampler.Start()
		defer sampler.Stop()
	}

	if flagHeadless {
		return runHeadless(world, driver, log)
	}
	return runTerminal(world, driver, cfg, log)
}

// applyFlags lets command-line flags override file values, but only
// the flags the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("seed") {
		cfg.Sim.Seed = flagSeed
	}
	if cmd.Flags().Changed("address") {
		cfg.Network.Address = flagAddress
		cfg.Network.Enabled = true
	}
	if cmd.Flags().Changed("network") {
		cfg.Network.Enabled = flagNetwork
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.File = flagLogFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
}

// runHeadless drives the simulation without a terminal, for profiling
// and for acting as a pure ingress sink. Stops on SIGINT/SIGTERM.
func runHeadless(world *engine.World, driver *engine.FrameDriver, log *slog.Logger) error {
	core.SetCrashHandler(func(r any) {
		fmt.Fprintf(os.Stderr, "cortexview crashed: %v\n%s\n", r, debug.Stack())
		os.Exit(1)
	})

	driver.Start()
	defer driver.Stop()
	log.Info("running headless")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")
	return nil
}

// runTerminal owns the tcell screen: render loop on the driver's frame
// signal, input events on tcell's poll goroutine. A missing or broken
// terminal is fatal; there is no degraded text mode.
func runTerminal(world *engine.World, driver *engine.FrameDriver, cfg config.Config, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Crashed goroutines must restore the terminal before printing
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "cortexview crashed: %v\n%s\n", r, debug.Stack())
		os.Exit(1)
	})
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "cortexview crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	screen.HideCursor()
	screen.Clear()

	renderer := render.NewRenderer(screen, cfg.Sim.ShellRadiusMax, !flagNoColor, log)

	driver.Start()
	defer driver.Stop()

	quit := make(chan struct{})
	core.Go(func() { inputLoop(screen, world, renderer, quit) })

	log.Info("running", "tick_interval", cfg.Sim.TickInterval.Std())

	for {
		select {
		case <-quit:
			return nil
		case <-driver.FrameDone():
			snap := engine.BuildSnapshot(world)
			renderer.Draw(snap, world.Resource.Status)
		case <-time.After(constant.RenderInterval * 4):
			// Keep the screen alive even if the driver stalls
			snap := engine.BuildSnapshot(world)
			renderer.Draw(snap, world.Resource.Status)
		}
	}
}

// inputLoop polls tcell events. Digits fire the matching topology
// region, space fires a random one, tab toggles the metric overlay.
func inputLoop(screen tcell.Screen, world *engine.World, renderer *render.Renderer, quit chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			renderer.HandleResize()

		case *tcell.EventKey:
			switch {
			case tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC:
				close(quit)
				return
			case tev.Rune() == 'q':
				close(quit)
				return
			case tev.Key() == tcell.KeyTab:
				renderer.ToggleOverlay()
			case tev.Rune() == ' ':
				region := geometry.Topology[int(time.Now().UnixNano())%len(geometry.Topology)]
				pushActivity(world, region.ComponentID)
			case tev.Rune() >= '1' && tev.Rune() <= '9':
				idx := int(tev.Rune() - '1')
				if idx < len(geometry.Topology) {
					pushActivity(world, geometry.Topology[idx].ComponentID)
				}
			}

		case nil:
			// Screen finalized
			return
		}
	}
}

func pushActivity(world *engine.World, componentID string) {
	world.PushEvent(event.TypeComponentActivity, &event.ComponentActivityPayload{
		Component: componentID,
		Intensity: 1.0,
	})
}
