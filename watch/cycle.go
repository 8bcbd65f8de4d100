package watch

import (
	"github.com/cockroachdb/errors"

	"github.com/dylan/gitscribe/git"
	"github.com/dylan/gitscribe/scribe"
)

// Outcome classifies what a single poll cycle did.
type Outcome int

const (
	// OutcomeNoChanges means the working tree was clean, or the status
	// query failed and the cycle was skipped.
	OutcomeNoChanges Outcome = iota
	// OutcomeDryRun means changes were found and reported but not committed.
	OutcomeDryRun
	// OutcomeCommitted means a commit was created.
	OutcomeCommitted
	// OutcomeNothingToCommit means the index turned out clean by commit
	// time, usually because the changes were reverted mid-cycle.
	OutcomeNothingToCommit
	// OutcomeStageFailed means staging failed before any commit was attempted.
	OutcomeStageFailed
	// OutcomeCommitFailed means git rejected the commit itself.
	OutcomeCommitFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoChanges:
		return "no changes"
	case OutcomeDryRun:
		return "dry run"
	case OutcomeCommitted:
		return "committed"
	case OutcomeNothingToCommit:
		return "nothing to commit"
	case OutcomeStageFailed:
		return "stage failed"
	case OutcomeCommitFailed:
		return "commit failed"
	default:
		return "unknown"
	}
}

// CycleResult reports what one poll iteration saw and did.
type CycleResult struct {
	Outcome Outcome
	Message string
	Files   int
	Pushed  bool
	PushErr error
	Err     error
}

// commitChanges sequences stage, commit, and the optional push. Staging is
// scoped to the collected paths so the commit holds exactly what the
// message describes; ignored paths never ride along. A staging failure
// aborts before the commit. A clean index at commit time is a no-op rather
// than an error. A failed push leaves the local commit in place.
func commitChanges(gw Gateway, cs scribe.ChangeSet, message string, push bool) CycleResult {
	res := CycleResult{Message: message, Files: cs.Total()}

	if err := gw.StageAll(cs.All()); err != nil {
		res.Outcome = OutcomeStageFailed
		res.Err = err
		return res
	}

	if err := gw.Commit(message); err != nil {
		if errors.Is(err, git.ErrNothingToCommit) {
			res.Outcome = OutcomeNothingToCommit
			return res
		}
		res.Outcome = OutcomeCommitFailed
		res.Err = err
		return res
	}
	res.Outcome = OutcomeCommitted

	if push {
		if err := gw.Push(); err != nil {
			res.PushErr = err
		} else {
			res.Pushed = true
		}
	}
	return res
}
