// Package cmd wires the CLI surface around the watch loop.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dylan/gitscribe/config"
	"github.com/dylan/gitscribe/git"
	"github.com/dylan/gitscribe/journal"
	"github.com/dylan/gitscribe/logging"
	"github.com/dylan/gitscribe/scribe"
	"github.com/dylan/gitscribe/ui"
	"github.com/dylan/gitscribe/watch"
)

// version is stamped by the release build.
var version = "dev"

var (
	repoPath   string
	configPath string
	debug      bool

	intervalMinutes float64
	pushFlag        bool
	onceFlag        bool
	dryRunFlag      bool
	watchFlag       bool
)

var rootCmd = &cobra.Command{
	Use:   "gitscribe",
	Short: "Watch a repository and commit changes with synthesized messages",
	Long: `gitscribe polls a git working tree, groups what changed, and commits
it with a one-line message inferred from the files and their diffs.
It keeps running until interrupted, committing each batch of changes
as it appears.`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoPath, "repo", ".", "path to the repository to watch")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default <repo>/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose diagnostics on stderr")

	rootCmd.Flags().Float64VarP(&intervalMinutes, "interval", "i", config.DefaultIntervalMinutes, "minutes between checks")
	rootCmd.Flags().BoolVarP(&pushFlag, "push", "p", false, "push after each commit")
	rootCmd.Flags().BoolVar(&onceFlag, "once", false, "run a single check-and-commit cycle, then exit")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "report what would be committed without committing")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "wake early on filesystem events instead of waiting the full interval")
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	root, branch, err := git.DetectRepo(repoPath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	interval := cfg.ResolvedInterval()
	if cmd.Flags().Changed("interval") {
		if intervalMinutes <= 0 {
			return errors.New("interval must be a positive number of minutes")
		}
		interval = time.Duration(intervalMinutes * float64(time.Minute))
	}
	push := cfg.ResolvedPush()
	if cmd.Flags().Changed("push") {
		push = pushFlag
	}

	classifier := scribe.NewClassifier(cfg.ResolvedCategories())
	loop := &watch.Loop{
		Gateway:    &git.Client{RepoPath: root, Branch: branch},
		Classifier: classifier,
		Analyzer:   scribe.NewAnalyzer(cfg.ResolvedNotebookRules(), cfg.ResolvedCodeRules()),
		Synth:      scribe.NewSynthesizer(classifier),
		Log:        logger,
		Out:        os.Stdout,
		Opts: watch.Options{
			Interval: interval,
			Push:     push,
			Once:     onceFlag,
			DryRun:   dryRunFlag,
			Ignore:   cfg.ResolvedIgnore(),
			Branch:   branch,
			Session:  uuid.NewString(),
		},
	}

	if !dryRunFlag {
		j, err := journal.Open(root)
		if err != nil {
			logger.Warn("journal unavailable, history will not be recorded", zap.Error(err))
		} else {
			loop.Journal = j
			defer j.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchFlag && !onceFlag {
		trigger, err := watch.NewTrigger(root, loop.Opts.Ignore, logger)
		if err != nil {
			logger.Warn("filesystem trigger unavailable, falling back to plain polling", zap.Error(err))
		} else {
			go trigger.Run(ctx)
			loop.Wake = trigger.C
		}
	}

	printBanner(os.Stdout, root, branch, loop.Opts, loop.Wake != nil)

	if err := loop.Run(ctx); err != nil {
		return err
	}

	printSummary(os.Stdout, loop.Opts, loop.Commits())
	return nil
}

// loadConfig reads the TOML config. An explicitly passed path must exist;
// the default path under the repository root is optional.
func loadConfig(root string) (config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	path := filepath.Join(root, config.FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Config{}, nil
	}
	return config.Load(path)
}

// printBanner writes the session header. Once mode stays quiet so a
// scripted single pass emits nothing but the cycle result.
func printBanner(w io.Writer, root, branch string, opts watch.Options, eventDriven bool) {
	if opts.Once {
		return
	}
	label := func(s string) string {
		return ui.LabelStyle.Render(fmt.Sprintf("%-9s", s))
	}

	fmt.Fprintln(w, ui.TitleStyle.Render("gitscribe"))
	fmt.Fprintf(w, "  %s %s\n", label("repo:"), ui.ValueStyle.Render(root))
	if branch != "" {
		fmt.Fprintf(w, "  %s %s\n", label("branch:"), ui.BranchStyle.Render(branch))
	}
	fmt.Fprintf(w, "  %s %s\n", label("interval:"), ui.ValueStyle.Render(opts.Interval.String()))
	fmt.Fprintf(w, "  %s %s\n", label("push:"), ui.ValueStyle.Render(onOff(opts.Push)))
	fmt.Fprintf(w, "  %s %s\n", label("watch:"), ui.ValueStyle.Render(onOff(eventDriven)))
	fmt.Fprintf(w, "  %s %s\n\n", label("mode:"), ui.ValueStyle.Render(modeLine(opts)))
}

// printSummary reports the session's commit count, except in once mode.
func printSummary(w io.Writer, opts watch.Options, commits int) {
	if opts.Once {
		return
	}
	fmt.Fprintf(w, "\n%s\n", ui.DimStyle.Render(fmt.Sprintf("Session ended, commits made: %d", commits)))
}

func modeLine(opts watch.Options) string {
	if opts.DryRun {
		return "dry run, nothing will be committed"
	}
	return "committing, Ctrl+C to stop"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
