package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"gateprep/internal/bootstrap"
	studytimedto "gateprep/internal/modules/studytime/dto"
	"gateprep/internal/platform/config"
	"gateprep/internal/platform/logging"
	"gateprep/internal/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globals struct {
	dataDir    string
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "gateprep",
		Short:         "GATE exam study tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.dataDir, "data-dir", config.DefaultDataDir(), "directory holding state, config and logs")
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default <data-dir>/"+config.FileName+")")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")

	root.AddCommand(newTUICmd(g))
	root.AddCommand(newModeCmd(g))
	root.AddCommand(newTimerCmd(g))
	root.AddCommand(newTargetCmd(g))
	root.AddCommand(newStatsCmd(g))
	root.AddCommand(newResetAllCmd(g))
	root.AddCommand(newChecklistCmd(g))
	root.AddCommand(newPlanCmd(g))
	root.AddCommand(newTimelineCmd(g))
	root.AddCommand(newReportCmd(g))
	return root
}

func loadConfig(g *globals) (config.Config, error) {
	cfg, err := config.Load(g.dataDir, g.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	return cfg, nil
}

// withApp builds the app with a stderr logger, runs fn and closes the app.
func withApp(g *globals, fn func(app *bootstrap.App) error) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg, logging.New(cfg.LogLevel, os.Stderr))
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}

func newTUICmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the study dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			log, closer, err := logging.NewFile(cfg.LogLevel, cfg.LogPath)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer closer.Close()

			app, err := bootstrap.New(cfg, log)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(cfg, app)
		},
	}
}

func newModeCmd(g *globals) *cobra.Command {
	mode := &cobra.Command{Use: "mode", Short: "Show or switch the exam paper"}

	mode.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the active mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.SyllabusCLI.ActiveMode(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n\n%s\n", out.Mode, out.Label, out.Overview)
				return nil
			})
		},
	})

	mode.AddCommand(&cobra.Command{
		Use:   "set <mode>",
		Short: "Switch the active mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.SyllabusCLI.SetMode(context.Background(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mode set to %s (%s)\n", out.Mode, out.Label)
				return nil
			})
		},
	})

	mode.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available modes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				modes, err := app.SyllabusCLI.ListModes(context.Background())
				if err != nil {
					return err
				}
				for _, m := range modes {
					marker := " "
					if m.Active {
						marker = "*"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-4s %s\n", marker, m.Mode, m.Label)
				}
				return nil
			})
		},
	})
	return mode
}

func newTimerCmd(g *globals) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Wall-clock study sessions"}

	timer.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start a study session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.StudyCLI.Start(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session %s started at %s\n", out.SessionID, out.StartedAt.Format("15:04:05"))
				return nil
			})
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "pause",
		Short: "Stop the session and credit its time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.StudyCLI.Pause(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "credited %s to %s (today %.1f h)\n",
					clockTime(out.Credited), out.DayKey, out.Stats.TodayHours)
				return nil
			})
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.StudyCLI.Status(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "running %s since %s\n", out.Elapsed, out.StartedAt.Format("2006-01-02 15:04:05"))
				return nil
			})
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "discard",
		Short: "Drop the running session without crediting it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.StudyCLI.Discard(context.Background())
				if err != nil {
					return err
				}
				if out.SessionID == "" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "discarded unreadable session")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "discarded %s\n", out.Elapsed)
				return nil
			})
		},
	})
	return timer
}

func newTargetCmd(g *globals) *cobra.Command {
	target := &cobra.Command{Use: "target", Short: "Study-hour target"}
	target.AddCommand(&cobra.Command{
		Use:   "set <hours>",
		Short: "Set the total study-hour target (100–3000)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := parseInt("hours", args[0])
			if err != nil {
				return err
			}
			return withApp(g, func(app *bootstrap.App) error {
				stats, err := app.StudyCLI.SetTarget(context.Background(), hours)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "target set to %d h\n", stats.TargetHours)
				return nil
			})
		},
	})
	return target
}

func newStatsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show study-time statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				stats, err := app.StudyCLI.Stats(context.Background())
				if err != nil {
					return err
				}
				writeStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}
}

func newResetAllCmd(g *globals) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset-all",
		Short: "Erase all tracked study time (the target is kept)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				err := huh.NewConfirm().
					Title("Reset all tracked study data?").
					Description("This cannot be undone.").
					Affirmative("Yes, reset").
					Negative("Cancel").
					Value(&yes).
					Run()
				if err != nil && !errors.Is(err, huh.ErrUserAborted) {
					return err
				}
			}
			if !yes {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
				return nil
			}
			return withApp(g, func(app *bootstrap.App) error {
				stats, err := app.StudyCLI.ResetAll(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "all study data reset (target %d h kept)\n", stats.TargetHours)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func newChecklistCmd(g *globals) *cobra.Command {
	checklist := &cobra.Command{Use: "checklist", Short: "Syllabus topic checklist"}

	var subject string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List topics with their status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.ChecklistCLI.List(context.Background(), subject)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s  %d/%d (%d%%)\n", out.Label, out.Overall.Done, out.Overall.Total, out.Overall.Percent)
				for _, s := range out.Subjects {
					_, _ = fmt.Fprintf(w, "\n%s  %d/%d (%d%%)\n", s.Name, s.Progress.Done, s.Progress.Total, s.Progress.Percent)
					for _, t := range s.Topics {
						box := "[ ]"
						if t.Done {
							box = "[x]"
						}
						star := ""
						if t.Important {
							star = " ★"
						}
						_, _ = fmt.Fprintf(w, "  %s %-18s %s%s\n", box, t.ID, t.Title, star)
					}
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&subject, "subject", "", "only this subject id")

	var undo bool
	toggleCmd := &cobra.Command{
		Use:   "toggle <topic-id>",
		Short: "Mark a topic done (or not done with --undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.ChecklistCLI.Mark(context.Background(), args[0], !undo)
				if err != nil {
					return err
				}
				state := "done"
				if !out.Done {
					state = "not done"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n%s %d%%, overall %d%%\n",
					out.Title, state, out.Subject.Name, out.Subject.Progress.Percent, out.Overall.Percent)
				return nil
			})
		},
	}
	toggleCmd.Flags().BoolVar(&undo, "undo", false, "mark the topic not done")

	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Show completion per subject",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.ChecklistCLI.Progress(context.Background())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				for _, s := range out.Subjects {
					_, _ = fmt.Fprintf(w, "%-45s %3d/%-3d %3d%%\n", s.Name, s.Progress.Done, s.Progress.Total, s.Progress.Percent)
				}
				_, _ = fmt.Fprintf(w, "%-45s %3d/%-3d %3d%%\n", "Overall", out.Overall.Done, out.Overall.Total, out.Overall.Percent)
				return nil
			})
		},
	}

	checklist.AddCommand(listCmd, toggleCmd, progressCmd)
	return checklist
}

func newPlanCmd(g *globals) *cobra.Command {
	var goal int
	var raw bool
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Split a target score across subjects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.PlannerCLI.Plan(context.Background(), goal)
				if err != nil {
					return err
				}
				return writeMarkdown(cmd.OutOrStdout(), report.PlanMarkdown(out), raw)
			})
		},
	}
	cmd.Flags().IntVar(&goal, "goal", 60, "target marks (30–100)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without styling")
	return cmd
}

func newTimelineCmd(g *globals) *cobra.Command {
	var year int
	var raw bool
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Phase plan up to the exam",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				out, err := app.TimelineCLI.Plan(context.Background(), year)
				if err != nil {
					return err
				}
				return writeMarkdown(cmd.OutOrStdout(), report.TimelineMarkdown(out), raw)
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "exam year (2026–2035)")
	_ = cmd.MarkFlagRequired("year")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without styling")
	return cmd
}

func newReportCmd(g *globals) *cobra.Command {
	var out string
	var goal, year int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown progress report",
		Long: "Write a markdown progress report with YAML frontmatter. With --out the\n" +
			"generated section of an existing note is replaced and the rest is kept.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(g, func(app *bootstrap.App) error {
				in, err := app.Report(context.Background(), goal, year)
				if err != nil {
					return err
				}
				if out == "" {
					md, err := report.Render(in)
					if err != nil {
						return err
					}
					_, _ = io.WriteString(cmd.OutOrStdout(), md)
					return nil
				}
				return writeReportFile(out, in)
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "note to create or update")
	cmd.Flags().IntVar(&goal, "goal", 0, "include a goal plan for these marks")
	cmd.Flags().IntVar(&year, "year", 0, "include the timeline for this exam year")
	return cmd
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func writeReportFile(path string, in report.Input) error {
	existing, err := os.ReadFile(path)
	var md string
	switch {
	case errors.Is(err, os.ErrNotExist):
		md, err = report.Render(in)
	case err != nil:
		return fmt.Errorf("read %s: %w", path, err)
	default:
		md, err = report.Merge(string(existing), in)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeStats(w io.Writer, s studytimedto.StatsOutput) {
	rows := [][2]string{
		{"Today", fmt.Sprintf("%.1f h", s.TodayHours)},
		{"All time", fmt.Sprintf("%.1f h", s.AllTimeHours)},
		{"Average/day", fmt.Sprintf("%.1f h", s.AveragePerDay)},
		{"Target", fmt.Sprintf("%d h", s.TargetHours)},
		{"Remaining", fmt.Sprintf("%.1f h", s.RemainingHours)},
		{"Days left", report.DaysLeft(s)},
		{"Finish date", report.FinishDate(s)},
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "%-12s %s\n", r[0], r[1])
	}
}

func writeMarkdown(w io.Writer, md string, raw bool) error {
	if raw {
		_, err := io.WriteString(w, md)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(100))
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func parseInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", name, raw)
	}
	return n, nil
}

func clockTime(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
