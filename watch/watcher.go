// Package watch drives the poll loop: collect working-tree changes,
// synthesize a commit message, commit, sleep, repeat.
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dylan/gitscribe/git"
	"github.com/dylan/gitscribe/journal"
	"github.com/dylan/gitscribe/scribe"
	"github.com/dylan/gitscribe/ui"
)

// Gateway is the version-control surface the loop consumes. *git.Client
// implements it against a real repository; tests substitute an in-memory
// fake.
type Gateway interface {
	Status() ([]git.StatusEntry, error)
	Diff(path string) (string, error)
	StageAll(paths []string) error
	Commit(message string) error
	Push() error
}

// Options configure one watch session.
type Options struct {
	Interval time.Duration
	Push     bool
	Once     bool
	DryRun   bool
	Ignore   []string
	Branch   string
	Session  string
}

// Loop is the single long-lived worker. Cycles run strictly one after
// another; the loop suspends only between them, so there is never more
// than one commit attempt in flight.
type Loop struct {
	Gateway    Gateway
	Classifier *scribe.Classifier
	Analyzer   *scribe.Analyzer
	Synth      *scribe.Synthesizer
	Journal    *journal.DB     // optional, nil disables history
	Log        *zap.Logger     // optional, defaults to a nop logger
	Out        io.Writer       // optional, defaults to os.Stdout
	Wake       <-chan struct{} // optional early wake-up between cycles
	Opts       Options

	commits int
}

// Commits returns how many commits the session has made so far.
func (l *Loop) Commits() int { return l.commits }

// Run executes cycles until ctx is cancelled, or returns after a single
// cycle in once mode. Cancellation is honored only between cycles, so an
// in-flight gateway call always completes before the loop exits.
func (l *Loop) Run(ctx context.Context) error {
	if l.Out == nil {
		l.Out = os.Stdout
	}
	if l.Log == nil {
		l.Log = zap.NewNop()
	}

	for {
		l.cycle()

		if l.Opts.Once {
			return nil
		}

		timer := time.NewTimer(l.Opts.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		case <-l.Wake:
			timer.Stop()
			l.Log.Debug("woken early by filesystem event")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (l *Loop) cycle() CycleResult {
	now := time.Now()

	entries, err := l.Gateway.Status()
	if err != nil {
		l.Log.Warn("status query failed", zap.Error(err))
		l.printf("%s %s\n", ui.Timestamp(now), ui.ErrorStyle.Render("Status query failed, will retry next cycle"))
		return CycleResult{Outcome: OutcomeNoChanges, Err: err}
	}

	cs := scribe.Collect(entries, l.Opts.Ignore)
	if cs.Empty() {
		l.printf("%s %s\n", ui.Timestamp(now), ui.DimStyle.Render("No changes detected"))
		return CycleResult{Outcome: OutcomeNoChanges}
	}

	message, ok := l.Synth.Synthesize(cs, l.lookupIndicators)
	if !ok {
		return CycleResult{Outcome: OutcomeNoChanges}
	}

	if l.Opts.DryRun {
		l.reportDryRun(now, cs, message)
		return CycleResult{Outcome: OutcomeDryRun, Message: message, Files: cs.Total()}
	}

	res := commitChanges(l.Gateway, cs, message, l.Opts.Push)
	if res.Outcome == OutcomeCommitted {
		l.commits++
		l.journalCommit(res)
	}
	l.report(now, res)
	return res
}

// lookupIndicators feeds the synthesizer: classify the path, fetch its
// diff, and scan it for intent. A failed diff query degrades to the
// category's fallback indicator instead of aborting the cycle.
func (l *Loop) lookupIndicators(path string) []string {
	category := l.Classifier.Classify(path)
	diff, err := l.Gateway.Diff(path)
	if err != nil {
		l.Log.Warn("diff query failed", zap.String("path", path), zap.Error(err))
		diff = ""
	}
	return l.Analyzer.Analyze(path, diff, category)
}

func (l *Loop) journalCommit(res CycleResult) {
	if l.Journal == nil {
		return
	}
	err := l.Journal.Record(journal.Entry{
		Session: l.Opts.Session,
		Branch:  l.Opts.Branch,
		Message: res.Message,
		Files:   res.Files,
		Pushed:  res.Pushed,
	})
	if err != nil {
		l.Log.Warn("journal write failed", zap.Error(err))
	}
}

func (l *Loop) report(now time.Time, res CycleResult) {
	ts := ui.Timestamp(now)
	switch res.Outcome {
	case OutcomeCommitted:
		l.printf("%s %s\n", ts, ui.CommitStyle.Render(fmt.Sprintf("Committed: %s (%d files)", res.Message, res.Files)))
	case OutcomeNothingToCommit:
		l.printf("%s %s\n", ts, ui.DimStyle.Render("Nothing to commit, changes vanished mid-cycle"))
	case OutcomeStageFailed:
		l.Log.Warn("staging failed", zap.Error(res.Err))
		l.printf("%s %s\n", ts, ui.ErrorStyle.Render("Staging failed, will retry next cycle"))
	case OutcomeCommitFailed:
		l.Log.Warn("commit failed", zap.Error(res.Err))
		l.printf("%s %s\n", ts, ui.ErrorStyle.Render("Commit failed, will retry next cycle"))
	}

	if res.Pushed {
		remote := "origin"
		if l.Opts.Branch != "" {
			remote = "origin/" + l.Opts.Branch
		}
		l.printf("%s %s\n", ts, ui.CommitStyle.Render("Pushed to "+remote))
	}
	if res.PushErr != nil {
		l.Log.Warn("push failed", zap.Error(res.PushErr))
		l.printf("%s %s\n", ts, ui.WarnStyle.Render("Push failed, the local commit is kept"))
	}
}

func (l *Loop) reportDryRun(now time.Time, cs scribe.ChangeSet, message string) {
	l.printf("%s %s\n", ui.Timestamp(now), ui.WarnStyle.Render("Would commit: "+message))
	l.printBucket("added", cs.Added)
	l.printBucket("modified", cs.Modified)
	l.printBucket("deleted", cs.Deleted)
	l.printBucket("untracked", cs.Untracked)
}

// printBucket lists the first three files of a bucket.
func (l *Loop) printBucket(label string, files []string) {
	if len(files) == 0 {
		return
	}
	shown := files
	if len(shown) > 3 {
		shown = shown[:3]
	}
	line := fmt.Sprintf("  %s (%d): %s", label, len(files), strings.Join(shown, ", "))
	if extra := len(files) - len(shown); extra > 0 {
		line += fmt.Sprintf(" (+%d more)", extra)
	}
	l.printf("%s\n", ui.DimStyle.Render(line))
}

func (l *Loop) printf(format string, args ...any) {
	fmt.Fprintf(l.Out, format, args...)
}
