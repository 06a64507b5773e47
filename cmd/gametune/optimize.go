package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rodeylol/gametune/optimizer"
	"github.com/rodeylol/gametune/pool"
	"github.com/rodeylol/gametune/stopwatch"
)

func newOptimizeCmd(a *app) *cobra.Command {
	var (
		workers    int
		target     int
		sequential bool
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Optimize all settings toward a performance target",
		Long: `Optimize measures current performance, derives a target score
(or takes one from --target), applies it to every setting, and saves the
result. By default one task per setting runs on a worker pool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadSettingsIfPresent(); err != nil {
				return err
			}

			if target == 0 {
				sample := a.profiler.Analyze()
				target = deriveTarget(sample.FPS)
				a.log.Info("derived target from measurement",
					"fps", sample.FPS, "target", target)
			}

			elapsed, err := a.runOptimize(workers, target, sequential)
			if err != nil {
				return err
			}

			if err := a.store.Save(a.settings); err != nil {
				return err
			}
			a.log.Info("settings saved", "path", a.store.Path())
			a.markLastRun()

			fmt.Fprintf(cmd.OutOrStdout(), "Optimized %d settings to target %d in %.3fs\n",
				a.settings.Len(), target, elapsed)
			for _, s := range a.settings.Snapshot() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %d\n", s.Name, s.Value)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (default: config, then CPU count)")
	cmd.Flags().IntVar(&target, "target", 0, "target performance score (default: derived from a measurement)")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "optimize on the calling goroutine instead of a pool")
	return cmd
}

func (a *app) runOptimize(workers, target int, sequential bool) (float64, error) {
	if sequential {
		sw := stopwatch.New()
		sw.Start()
		optimizer.Optimize(a.settings, target)
		if err := sw.Stop(); err != nil {
			return 0, err
		}
		return sw.ElapsedSeconds()
	}

	if workers == 0 {
		workers = a.cfg.GetInt("workers")
	}
	p, err := pool.New(workers, pool.WithLogger(a.log))
	if err != nil {
		return 0, err
	}
	defer p.Shutdown()

	a.log.Info("parallel optimization starting", "workers", workers, "target", target)
	elapsed, err := optimizer.ParallelOptimize(p, a.settings, target)
	if err != nil {
		return 0, err
	}
	return elapsed.Seconds(), nil
}

// deriveTarget picks a target score from a measured frame rate: above 55
// FPS there is headroom for quality, otherwise favor performance.
func deriveTarget(fps int) int {
	if fps > 55 {
		return 60
	}
	return 50
}
