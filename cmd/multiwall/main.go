// Package main is the entry point for the multiwall CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/darkawower/multiwall/internal/config"
	"github.com/darkawower/multiwall/internal/core"
	"github.com/darkawower/multiwall/internal/log"
	"github.com/darkawower/multiwall/internal/ui"
)

var version = "dev"

var (
	// Global flags
	cfgFile string
	verbose bool
	quiet   bool
	noColor bool

	// Global output
	out *ui.Output
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "multiwall",
		Short: "Per-monitor wallpaper profile manager",
		Long: `Multiwall manages desktop wallpapers on multi-monitor machines.
It groups per-monitor wallpaper assignments into named profiles, applies a
profile through the OS wallpaper engine, and can switch profiles on a time
schedule.`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/multiwall/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newMonitorsCmd(),
		newProfileCmd(),
		newScheduleCmd(),
		newRunCmd(),
		newSaveCmd(),
		newLoadCmd(),
		newVersionCmd(),
	)

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// initOutput initializes the output.
func initOutput() {
	out = ui.DefaultOutput()
	out.SetVerbose(verbose)
	out.SetQuiet(quiet)
	out.SetNoColor(noColor)
}

// newManager creates a manager from the current flags.
func newManager() (*core.Manager, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	log.Configure(log.Config{Level: cfg.Log.Level})
	return core.New(cfg), nil
}

// loadIfPresent restores the profile document when one exists; a missing
// document is not an error on startup.
func loadIfPresent(mgr *core.Manager) {
	path := mgr.DocumentPath()
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := mgr.LoadConfig(path); err != nil {
		out.Warning("could not load profiles from %s: %v", path, err)
	}
}

func newMonitorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitors",
		Short: "List attached monitors",
		Long:  "Lists physical monitors and the wallpaper engine's monitor identifiers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()
			mgr, err := newManager()
			if err != nil {
				return err
			}

			monitors := mgr.Monitors()
			if len(monitors) == 0 {
				out.Warning("no monitors found")
			}

			for i, mon := range monitors {
				primary := ""
				if mon.Primary {
					primary = " (primary)"
				}
				out.Item("%d. %s%s - %dx%d", i+1, mon.DevicePath, primary, mon.Rect.Width(), mon.Rect.Height())
				if mon.EngineID != "" {
					out.Detail("engine id: %s", mon.EngineID)
				}
			}

			engineMonitors := mgr.EngineMonitors()
			if len(engineMonitors) == 0 {
				out.Verbose("wallpaper engine reported no monitors")
				return nil
			}

			out.Print("")
			out.Info("wallpaper engine monitors:")
			for i, em := range engineMonitors {
				out.Item("%d. %s", i+1, em.DisplayName)
				out.Detail("id: %s", em.EngineID)
				if current, err := mgr.CurrentWallpaper(em.EngineID); err == nil && current != "" {
					out.Detail("current wallpaper: %s", current)
				}
			}
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage wallpaper profiles",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create an empty profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				initOutput()
				mgr, err := newManager()
				if err != nil {
					return err
				}
				loadIfPresent(mgr)

				if err := mgr.CreateProfile(args[0]); err != nil {
					out.Error("%v", err)
					return err
				}
				if err := mgr.SaveConfig(mgr.DocumentPath()); err != nil {
					return err
				}
				out.Success("profile %q created", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <profile> <device> <image>",
			Short: "Assign a wallpaper to a monitor within a profile",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				initOutput()
				mgr, err := newManager()
				if err != nil {
					return err
				}
				loadIfPresent(mgr)

				if err := mgr.AssignWallpaper(args[0], args[1], args[2]); err != nil {
					out.Error("%v", err)
					return err
				}
				if err := mgr.SaveConfig(mgr.DocumentPath()); err != nil {
					return err
				}
				out.Success("wallpaper assigned to %s in profile %q", args[1], args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "apply <profile>",
			Short: "Apply a profile to all its monitors",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				initOutput()
				mgr, err := newManager()
				if err != nil {
					return err
				}
				loadIfPresent(mgr)

				if err := mgr.ApplyProfile(args[0]); err != nil {
					out.Error("profile %q not fully applied: %v", args[0], err)
					return err
				}
				out.Success("profile %q applied", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List profiles",
			RunE: func(cmd *cobra.Command, args []string) error {
				initOutput()
				mgr, err := newManager()
				if err != nil {
					return err
				}
				loadIfPresent(mgr)

				names := mgr.ProfileNames()
				if len(names) == 0 {
					out.Info("no profiles created")
					return nil
				}

				sort.Strings(names)
				for _, name := range names {
					p, _ := mgr.Profile(name)
					out.Item("%s (%d monitors)", name, len(p.Wallpapers))
					devices := make([]string, 0, len(p.Wallpapers))
					for device := range p.Wallpapers {
						devices = append(devices, device)
					}
					sort.Strings(devices)
					for _, device := range devices {
						out.Detail("%s = %s", device, p.Wallpapers[device])
					}
				}
				return nil
			},
		},
	)

	return cmd
}

// parseClock parses "HH:MM".
func parseClock(s string) (int, int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the profile schedule",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <profile> <HH:MM>",
			Short: "Schedule a profile at a time of day",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				initOutput()
				mgr, err := newManager()
				if err != nil {
					return err
				}
				loadIfPresent(mgr)

				hour, minute, err := parseClock(args[1])
				if err != nil {
					out.Error("%v", err)
					return err
				}
				if err := mgr.AddSchedule(args[0], hour, minute); err != nil {
					out.Error("%v", err)
					return err
				}
				if err := mgr.SaveConfig(mgr.DocumentPath()); err != nil {
					return err
				}
				out.Success("profile %q scheduled at %02d:%02d", args[0], hour, minute)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List schedule entries",
			RunE: func(cmd *cobra.Command, args []string) error {
				initOutput()
				mgr, err := newManager()
				if err != nil {
					return err
				}
				loadIfPresent(mgr)

				entries := mgr.Schedule()
				if len(entries) == 0 {
					out.Info("no scheduled profiles")
					return nil
				}
				for i, e := range entries {
					out.Item("%d. %s", i+1, e)
				}
				return nil
			},
		},
	)

	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the scheduler in the foreground",
		Long:  "Starts the background scheduler and applies scheduled profiles until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()
			mgr, err := newManager()
			if err != nil {
				return err
			}
			loadIfPresent(mgr)

			if len(mgr.Schedule()) == 0 {
				out.Warning("schedule is empty, nothing to do")
				return nil
			}

			mgr.StartScheduler()
			out.Info("scheduler running, press Ctrl-C to stop")

			<-cmd.Context().Done()
			mgr.StopScheduler()
			out.Info("scheduler stopped")
			return nil
		},
	}
}

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [file]",
		Short: "Save profiles and schedule to a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()
			mgr, err := newManager()
			if err != nil {
				return err
			}
			loadIfPresent(mgr)

			path := mgr.DocumentPath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := mgr.SaveConfig(path); err != nil {
				out.Error("%v", err)
				return err
			}
			out.Success("configuration saved to %s", path)
			return nil
		},
	}
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load profiles and schedule from a document",
		Long:  "Replaces all current profiles and schedule entries with the document contents.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()
			mgr, err := newManager()
			if err != nil {
				return err
			}

			if err := mgr.LoadConfig(args[0]); err != nil {
				out.Error("%v", err)
				return err
			}
			if err := mgr.SaveConfig(mgr.DocumentPath()); err != nil {
				return err
			}
			out.Success("configuration loaded from %s", args[0])
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("multiwall %s\n", version)
		},
	}
}
