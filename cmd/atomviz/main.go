package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/atomviz/internal/atom"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/gui"
	"github.com/san-kum/atomviz/internal/logging"
	"github.com/san-kum/atomviz/internal/playback"
	"github.com/san-kum/atomviz/internal/scene"
	"github.com/san-kum/atomviz/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	seed       int64
	intervalMs int
	theme      string
	// headless playback
	headless bool
	frames   int
)

// main registers the commands and runs the sequence in the configured display
// when no subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "atomviz",
		Short:        "animated history of atomic models",
		SilenceUsage: true,
		RunE:         runDefault,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for electron placement (0 uses the clock)")
	rootCmd.PersistentFlags().IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "milliseconds per frame")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "play the sequence in a window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "play the sequence in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list models",
		Args:  cobra.NoArgs,
		RunE:  listModels,
	}

	showCmd := &cobra.Command{
		Use:   "show [model]",
		Short: "draw one model in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  showModel,
	}
	showCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "advance the sequence on a timer",
		Args:  cobra.NoArgs,
		RunE:  playSequence,
	}
	playCmd.Flags().BoolVar(&headless, "headless", false, "log frames instead of drawing them")
	playCmd.Flags().IntVar(&frames, "frames", 0, "stop after this many advances (0 runs until interrupted)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDISPLAY\tINTERVAL\tWINDOW\tTERMINAL")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%v\t%dx%d@%d\t%dx%d %s\n", name, p.Display, p.Interval(),
					p.Window.Width, p.Window.Height, p.Window.FPS,
					p.Terminal.Width, p.Terminal.Height, p.Terminal.Theme)
			}
			w.Flush()
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(windowCmd, tuiCmd, listCmd, showCmd, playCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves defaults, then the preset, then the config file, then
// any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Terminal.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := viz.LookupTheme(cfg.Terminal.Theme); err != nil {
		return nil, fmt.Errorf("%w: terminal.theme: %w", config.ErrInvalid, err)
	}
	return cfg, nil
}

// terminalTheme resolves a theme name that loadConfig already checked.
func terminalTheme(cfg *config.Config) viz.Theme {
	th, _ := viz.LookupTheme(cfg.Terminal.Theme)
	return th
}

// session is everything a player needs: the list the models draw into and
// the driver that steps through them.
type session struct {
	cfg    *config.Config
	log    *logrus.Logger
	list   *scene.DisplayList
	driver *playback.Driver
}

func newSession(cmd *cobra.Command, quiet bool) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	if quiet {
		// the terminal player owns the screen
		log = logging.Discard()
	}

	models := atom.Sequence(newRand(cfg.Seed))
	list := scene.NewDisplayList()
	drv, err := playback.New(models, list, cfg.Interval(), log)
	if err != nil {
		return nil, fmt.Errorf("start playback: %w", err)
	}
	return &session{cfg: cfg, log: log, list: list, driver: drv}, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func runDefault(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Display == config.DisplayTerminal {
		return runTUI(cmd, args)
	}
	return runWindow(cmd, args)
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}
	gui.Run(gui.NewApp(s.driver, s.list, s.cfg.Window, s.log))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}
	player := viz.NewPlayer(s.driver, s.list, s.cfg.Terminal.Width, s.cfg.Terminal.Height,
		terminalTheme(s.cfg), s.log)

	p := tea.NewProgram(player, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal player: %w", err)
	}
	return nil
}

func listModels(cmd *cobra.Command, args []string) error {
	models := atom.Sequence(newRand(seed))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tYEAR\tTITLE")
	for i, m := range models {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i, m.Name(), m.Year(), m.Title())
	}
	return w.Flush()
}

func showModel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, m, err := atom.Lookup(atom.Sequence(newRand(cfg.Seed)), args[0])
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderFrame(m, cfg.Terminal.Width, cfg.Terminal.Height, terminalTheme(cfg)))
	if _, ok := m.(*atom.Quantum); ok {
		fmt.Println()
		fmt.Println(viz.RadialProfileChart())
	}
	return nil
}

// playSequence steps the driver on a wall-clock ticker. Headless runs only
// log each frame; otherwise each frame is printed to stdout as it is drawn.
func playSequence(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(s.cfg.Interval())
	defer ticker.Stop()

	th := terminalTheme(s.cfg)
	show := func() {
		cur := s.driver.Current()
		s.log.WithFields(logrus.Fields{
			"frame": s.driver.Index(),
			"model": cur.Name(),
			"title": s.list.Title,
		}).Info("frame")
		if !headless {
			fmt.Print(viz.RenderList(s.list, cur, s.cfg.Terminal.Width, s.cfg.Terminal.Height, th))
		}
	}
	show()

	// one advance per Run so each frame is shown as it lands
	total := 0
	for frames <= 0 || total < frames {
		n, err := s.driver.Run(ctx, ticker.C, 1)
		total += n
		if err != nil {
			s.log.WithField("advances", total).Info("playback interrupted")
			return nil
		}
		if n == 0 {
			break
		}
		show()
	}
	s.log.WithField("advances", total).Info("playback finished")
	return nil
}

// initConfig writes the defaults, preset and flags in effect to path, as a
// starting point for --config.
func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
