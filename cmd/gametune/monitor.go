package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rodeylol/gametune/optimizer"
	"github.com/rodeylol/gametune/pool"
)

func newMonitorCmd(a *app) *cobra.Command {
	var (
		iterations int
		interval   time.Duration
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Repeatedly measure performance and re-optimize settings",
		Long: `Monitor samples performance in a loop. When FPS drops below 50 it
re-optimizes toward performance (target 40); above 60 it raises quality
(target 70); in between it leaves the settings alone. The adjusted
settings are saved when the loop ends.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadSettingsIfPresent(); err != nil {
				return err
			}

			if workers == 0 {
				workers = a.cfg.GetInt("workers")
			}
			p, err := pool.New(workers, pool.WithLogger(a.log))
			if err != nil {
				return err
			}
			defer p.Shutdown()

			out := cmd.OutOrStdout()
			for i := 0; i < iterations; i++ {
				if i > 0 && interval > 0 {
					time.Sleep(interval)
				}

				sample := a.profiler.Analyze()
				target, adjust := monitorTarget(sample.FPS)
				if !adjust {
					a.log.Info("stable FPS, no adjustment", "fps", sample.FPS)
					fmt.Fprintf(out, "Stable FPS detected (%d). No adjustments needed.\n", sample.FPS)
					continue
				}

				a.log.Info("adjusting settings", "fps", sample.FPS, "target", target)
				if target < 50 {
					fmt.Fprintf(out, "Low FPS detected (%d). Adjusting settings...\n", sample.FPS)
				} else {
					fmt.Fprintf(out, "High FPS detected (%d). Enhancing quality...\n", sample.FPS)
				}

				if _, err := optimizer.ParallelOptimize(p, a.settings, target); err != nil {
					return err
				}
				for _, s := range a.settings.Snapshot() {
					fmt.Fprintf(out, "- %s: %d\n", s.Name, s.Value)
				}
			}

			if err := a.store.Save(a.settings); err != nil {
				return err
			}
			a.log.Info("settings saved", "path", a.store.Path())
			a.markLastRun()
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", 5, "number of measurement rounds")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "pause between rounds")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (default: config, then CPU count)")
	return cmd
}

// monitorTarget picks a corrective target for a measured frame rate:
// below 50 FPS favor performance, above 60 favor quality, otherwise
// leave the settings alone.
func monitorTarget(fps int) (target int, adjust bool) {
	switch {
	case fps < 50:
		return 40, true
	case fps > 60:
		return 70, true
	default:
		return 0, false
	}
}
