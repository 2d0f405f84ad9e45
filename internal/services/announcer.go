package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/announce/internal/authors"
	"github.com/vvka-141/announce/internal/metadata"
	"github.com/vvka-141/announce/internal/placeholder"
	"github.com/vvka-141/announce/internal/rules"
	"github.com/vvka-141/announce/pkg/announce"
)

// Input is everything a single announcement run works on.
type Input struct {
	Entries []metadata.Entry
	Table   *rules.Table
	Authors authors.Map
	Types   []string
}

// Post is one announcement that was accepted by the publisher.
type Post struct {
	Index  int
	Type   string
	Text   string
	Result *announce.PostResult
}

// Summary reports what a run did.
type Summary struct {
	Processed int
	Skipped   int
	Unmatched int
	Posts     []Post
}

// Published returns the number of posted announcements.
func (s *Summary) Published() int {
	return len(s.Posts)
}

// Announcer turns metadata entries into posts.
// Thread-Safety: a single Announcer may be shared, but Run processes its
// entries strictly one at a time.
type Announcer struct {
	publisher announce.Publisher
	chooser   rules.Chooser
	logger    announce.Logger
}

// NewAnnouncer creates an Announcer with all dependencies injected.
// Panics on nil dependencies.
func NewAnnouncer(publisher announce.Publisher, chooser rules.Chooser, logger announce.Logger) *Announcer {
	if publisher == nil {
		panic("publisher cannot be nil")
	}
	if chooser == nil {
		panic("chooser cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Announcer{publisher: publisher, chooser: chooser, logger: logger}
}

// Run processes entries in input order: filter, match, resolve, publish.
// Each publish completes before the next entry is considered. The first
// error aborts the run; the returned Summary still describes the entries
// handled before it, including posts that were already published.
func (a *Announcer) Run(ctx context.Context, in Input) (*Summary, error) {
	if in.Table == nil {
		return nil, fmt.Errorf("rules table is required: %w", announce.ErrInvalidConfig)
	}

	filter := NewTypeFilter(in.Types)
	resolver := placeholder.NewResolver(in.Authors, a.logger)
	summary := &Summary{}

	a.logger.Verbose("Processing %d metadata entries", len(in.Entries))

	for i, entry := range in.Entries {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("run interrupted before entry %d: %w", i, err)
		}

		if !filter.Allows(entry) {
			a.logger.Verbose("Skipping %q metadata entry %d: type not selected", entry.Type(), i)
			summary.Skipped++
			continue
		}
		summary.Processed++

		ruleSet, err := in.Table.MustLookup(entry.Type())
		if err != nil {
			return summary, fmt.Errorf("metadata entry %d: %w", i, err)
		}

		match, ok := a.match(entry, ruleSet)
		if !ok {
			a.logger.Verbose("No rule matched %s metadata entry %d", entry.Type(), i)
			summary.Unmatched++
			continue
		}

		text := resolver.Resolve(match.Text, entry)
		a.logger.Info("Posting: %s", text)

		result, err := a.publisher.Publish(ctx, text)
		if err != nil {
			return summary, fmt.Errorf("posting metadata entry %d: %w", i, err)
		}
		if result != nil && result.ID != "" {
			a.logger.Verbose("Posted with id %s", result.ID)
		}

		summary.Posts = append(summary.Posts, Post{Index: i, Type: entry.Type(), Text: text, Result: result})
	}

	a.logger.Verbose("Run finished: %d processed, %d skipped, %d unmatched, %d published",
		summary.Processed, summary.Skipped, summary.Unmatched, summary.Published())
	return summary, nil
}

func (a *Announcer) match(entry metadata.Entry, ruleSet rules.RuleSet) (rules.Match, bool) {
	description := entry.Description()
	for _, rule := range ruleSet {
		a.logger.Verbose("Processing %s metadata entry with description %q and rule %s",
			entry.Type(), description, rule.Pattern)
		if m, ok := (rules.RuleSet{rule}).Apply(description, a.chooser); ok {
			return m, true
		}
	}
	return rules.Match{}, false
}
