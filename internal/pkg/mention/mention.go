// Package mention turns @[label] markers in a message body into structured
// references to business records.
package mention

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
)

const lookupConcurrency = 4

var markerPattern = regexp.MustCompile(`@\[([^\[\]]+)\]`)

// Labels returns the distinct, trimmed marker labels of body in order of first
// appearance.
func Labels(body string) []string {
	matches := markerPattern.FindAllStringSubmatch(body, -1)

	seen := make(map[string]struct{}, len(matches))
	labels := make([]string, 0, len(matches))
	for _, match := range matches {
		label := strings.TrimSpace(match[1])
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels
}

type Resolver struct {
	searcher Searcher
}

func New(searcher Searcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// Resolve re-runs the record lookup for every marker in body. A marker only
// becomes a mention when exactly one record carries its label; anything else,
// including a failed lookup, leaves it as plain text.
func (r *Resolver) Resolve(ctx context.Context, body string) model.Mentions {
	labels := Labels(body)
	if len(labels) == 0 {
		return model.Mentions{}
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	resolved := make([]*model.Mention, len(labels))
	var g errgroup.Group
	g.SetLimit(lookupConcurrency)
	for i, label := range labels {
		g.Go(func() error {
			refs, err := r.searcher.Search(ctx, label)
			if err != nil {
				logger.Warn(fmt.Sprintf("mention %q left unresolved: %v", label, err))
				return nil
			}
			if ref, ok := single(refs, label); ok {
				resolved[i] = &model.Mention{ExternalID: ref.ID, Label: label}
			}
			return nil
		})
	}
	_ = g.Wait()

	mentions := make(model.Mentions, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, m := range resolved {
		if m == nil {
			continue
		}
		if _, ok := seen[m.ExternalID]; ok {
			continue
		}
		seen[m.ExternalID] = struct{}{}
		mentions = append(mentions, *m)
	}
	return mentions
}

func single(refs []model.RecordRef, label string) (model.RecordRef, bool) {
	var (
		found model.RecordRef
		count int
	)
	for _, ref := range refs {
		if strings.TrimSpace(ref.Label) == label {
			found = ref
			count++
		}
	}
	return found, count == 1
}
