package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rodeylol/gametune/internal/logger"
	"github.com/rodeylol/gametune/optimizer"
	"github.com/rodeylol/gametune/profile"
)

// app bundles the long-lived components the subcommands operate on.
type app struct {
	cfg      *viper.Viper
	cfgFile  string
	log      *slog.Logger
	settings *optimizer.Settings
	store    *optimizer.Store
	tweaks   *optimizer.TweakRegistry
	profiler *profile.AdvancedProfiler
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var logFile, logLevel string

	root := &cobra.Command{
		Use:           "gametune",
		Short:         "Tune game settings for a performance target",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(logFile, logLevel)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "config.txt", "configuration file (key=value lines)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newOptimizeCmd(a),
		newMonitorCmd(a),
		newSettingsCmd(a),
		newTweaksCmd(a),
		newProfileCmd(a),
	)
	return root
}

func (a *app) init(logFile, logLevel string) error {
	v := viper.New()
	v.SetConfigFile(a.cfgFile)
	v.SetConfigType("properties")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("settings_file", "settings.txt")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read config %s: %w", a.cfgFile, err)
	}

	// Flags beat the config file.
	if logFile == "" {
		logFile = v.GetString("log_file")
	}
	if logLevel == "" {
		logLevel = v.GetString("log_level")
	}

	a.cfg = v
	a.log = logger.Setup(logger.ParseLevel(logLevel), logFile)
	a.settings = defaultSettings()
	a.store = optimizer.NewStore(v.GetString("settings_file"))
	a.tweaks = defaultTweaks(a.log)
	a.profiler = profile.NewAdvancedProfiler()
	return nil
}

// markLastRun records a successful run back into the config file.
// viper picks the write encoder from the file extension and the legacy
// config file is config.txt, so write via a .properties name and rename.
func (a *app) markLastRun() {
	a.cfg.Set("last_run", "successful")

	tmp := a.cfgFile + ".tmp.properties"
	err := a.cfg.WriteConfigAs(tmp)
	if err == nil {
		err = os.Rename(tmp, a.cfgFile)
	}
	if err != nil {
		a.log.Warn("could not update config file", "path", a.cfgFile, "error", err)
	}
}

func defaultSettings() *optimizer.Settings {
	s := optimizer.NewSettings()
	// Registration of known names cannot fail.
	_ = s.Add("Resolution", 1080, 720, 2160)
	_ = s.Add("Texture Quality", 3, 1, 5)
	_ = s.Add("Shadow Quality", 2, 1, 4)
	return s
}

func defaultTweaks(log *slog.Logger) *optimizer.TweakRegistry {
	r := optimizer.NewTweakRegistry()
	r.Register("Boost FPS", func() {
		log.Info("reducing shadow quality and texture resolution for higher FPS")
	})
	r.Register("Enhance Graphics", func() {
		log.Info("increasing shadow quality and texture resolution for better visuals")
	})
	r.Register("Reduce Input Lag", func() {
		log.Info("disabling V-Sync to reduce input lag")
	})
	return r
}

func newSettingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadSettingsIfPresent(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Current Settings:")
			for _, s := range a.settings.Snapshot() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %d\n", s.Name, s.Value)
			}
			return nil
		},
	}
}

func newTweaksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tweaks [name]",
		Short: "List available tweaks, or apply one by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Available Tweaks:")
				for _, name := range a.tweaks.Names() {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", name)
				}
				return nil
			}

			a.log.Info("applying tweak", "name", args[0])
			return a.tweaks.Apply(args[0])
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Take one performance measurement",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.profiler.Analyze()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Performance Analysis:")
			fmt.Fprintf(out, "- FPS: %d\n", s.FPS)
			fmt.Fprintf(out, "- CPU Usage: %d%%\n", s.CPUPercent)
			fmt.Fprintf(out, "- GPU Usage: %d%%\n", s.GPUPercent)
			fmt.Fprintf(out, "- GPU Model: %s\n", s.GPUModel)
			fmt.Fprintf(out, "- Available Memory: %d MB\n", s.AvailableMemoryMB)
			return nil
		},
	}
}

// loadSettingsIfPresent applies the settings file when it exists. A missing
// file just means first run.
func (a *app) loadSettingsIfPresent() error {
	err := a.store.Load(a.settings)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err == nil {
		a.log.Debug("settings loaded", "path", a.store.Path())
	}
	return nil
}
