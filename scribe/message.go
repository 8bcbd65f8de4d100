package scribe

import (
	"fmt"
	"path/filepath"
	"strings"
)

// IndicatorLookup returns the change indicators for a modified path.
// The synthesizer only consults it for single modified notebook or code
// files; added and untracked files get plain new-file labels instead.
type IndicatorLookup func(path string) []string

// Synthesizer composes the one-line commit message for a change set.
type Synthesizer struct {
	classifier *Classifier
}

// NewSynthesizer returns a synthesizer that groups paths with the given
// classifier.
func NewSynthesizer(classifier *Classifier) *Synthesizer {
	return &Synthesizer{classifier: classifier}
}

// Synthesize builds the commit message. The second return is false when
// the change set is empty. Output is deterministic: the same change set
// and the same lookup results always produce the same bytes.
func (s *Synthesizer) Synthesize(cs ChangeSet, lookup IndicatorLookup) (string, bool) {
	if cs.Empty() {
		return "", false
	}

	action := actionPhrase(cs)

	modified := make(map[string]bool, len(cs.Modified))
	for _, p := range cs.Modified {
		modified[p] = true
	}

	groups := make(map[Category][]string)
	for _, p := range cs.All() {
		cat := s.classifier.Classify(p)
		groups[cat] = append(groups[cat], p)
	}

	var parts []string
	for _, cat := range partOrder {
		files, ok := groups[cat]
		if !ok {
			continue
		}
		parts = append(parts, s.part(cat, files, modified, lookup))
	}

	return joinParts(action, parts, cs.Total()), true
}

// actionPhrase picks the leading verb phrase from which buckets are
// populated. Added/untracked wins over deleted when both are present
// without modifications; that tie-break is deliberate.
func actionPhrase(cs ChangeSet) string {
	hasAdd := len(cs.Added) > 0 || len(cs.Untracked) > 0
	hasMod := len(cs.Modified) > 0
	hasDel := len(cs.Deleted) > 0

	switch {
	case hasAdd && hasMod:
		return "Add and update"
	case hasAdd:
		return "Add"
	case hasDel && hasMod:
		return "Update and remove"
	case hasDel:
		return "Remove"
	default:
		return "Update"
	}
}

func (s *Synthesizer) part(cat Category, files []string, modified map[string]bool, lookup IndicatorLookup) string {
	n := len(files)
	switch cat {
	case CategoryNotebooks:
		switch {
		case n == 1:
			f := files[0]
			if ind := lookupFor(f, modified, lookup); len(ind) > 0 {
				return fmt.Sprintf("%s: %s", stem(f), strings.Join(ind, ", "))
			}
			return stem(f) + " notebook"
		case n <= 3:
			return stemList(files)
		default:
			return fmt.Sprintf("%d notebooks", n)
		}
	case CategoryCode:
		switch {
		case n == 1:
			f := files[0]
			if ind := lookupFor(f, modified, lookup); len(ind) > 0 {
				return fmt.Sprintf("%s: %s", filepath.Base(f), strings.Join(ind, ", "))
			}
			return filepath.Base(f)
		case n <= 3:
			return stemList(files)
		default:
			return fmt.Sprintf("%d code files", n)
		}
	case CategoryData:
		if n == 1 {
			return "data: " + filepath.Base(files[0])
		}
		return fmt.Sprintf("%d data files", n)
	case CategoryModels:
		if n == 1 {
			return "model: " + filepath.Base(files[0])
		}
		return fmt.Sprintf("%d model files", n)
	case CategoryDocs:
		if n == 1 {
			return "docs: " + filepath.Base(files[0])
		}
		return fmt.Sprintf("%d documentation files", n)
	case CategoryConfig:
		if n == 1 {
			return filepath.Base(files[0])
		}
		return fmt.Sprintf("%d config files", n)
	case CategoryWeb:
		if n == 1 {
			return filepath.Base(files[0])
		}
		return fmt.Sprintf("%d web files", n)
	case CategoryImages:
		if n == 1 {
			return filepath.Base(files[0])
		}
		return fmt.Sprintf("%d image files", n)
	case CategorySQL:
		if n == 1 {
			return filepath.Base(files[0])
		}
		return fmt.Sprintf("%d SQL files", n)
	default:
		if n == 1 {
			return filepath.Base(files[0])
		}
		return fmt.Sprintf("%d files", n)
	}
}

// lookupFor fetches indicators for a single modified file, capped at two.
func lookupFor(path string, modified map[string]bool, lookup IndicatorLookup) []string {
	if !modified[path] || lookup == nil {
		return nil
	}
	ind := lookup(path)
	if len(ind) > maxIndicators {
		ind = ind[:maxIndicators]
	}
	return ind
}

// joinParts assembles the final message from the action phrase and parts.
func joinParts(action string, parts []string, total int) string {
	switch len(parts) {
	case 0:
		return fmt.Sprintf("%s %d files", action, total)
	case 1:
		return fmt.Sprintf("%s %s", action, parts[0])
	case 2:
		return fmt.Sprintf("%s %s and %s", action, parts[0], parts[1])
	default:
		return fmt.Sprintf("%s %s, %s (+%d more)", action, parts[0], parts[1], len(parts)-2)
	}
}

// stem returns the base name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func stemList(files []string) string {
	stems := make([]string, len(files))
	for i, f := range files {
		stems[i] = stem(f)
	}
	return strings.Join(stems, ", ")
}
