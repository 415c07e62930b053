package changelog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

// PageLimit caps the activity log view. Retention itself (1000 entries
// per tracked record) is enforced at the log, not here.
const PageLimit = 100

type Servicer interface {
	ActivityLog(ctx context.Context) ([]Entry, error)
}

// Service is a read-only projection over the audit log.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "changelog_service"),
	}
}

// ActivityLog returns the most recent changes, newest first, each with
// a one-line summary.
func (s *Service) ActivityLog(ctx context.Context) ([]Entry, error) {
	records, err := s.repo.ListRecent(ctx, PageLimit)
	if err != nil {
		s.log.Error("failed to load activity log", "error", err)
		return nil, fmt.Errorf("activity log: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{
			ChangeRecord: r,
			Summary:      Summarize(r),
		})
	}
	return entries, nil
}

// Summarize renders a one-line description of a change. A diff that
// cannot be parsed degrades to the generic "EVENT ItemType" form
// instead of failing the whole view.
func Summarize(r ChangeRecord) string {
	generic := fmt.Sprintf("%s %s", strings.ToUpper(r.Event), r.ItemType)

	fields := meaningfulFields(r.Diff)
	if len(fields) == 0 {
		return generic
	}

	switch r.Event {
	case EventCreate:
		return "Created " + strings.ToLower(r.ItemType)
	case EventDestroy:
		return "Deleted " + strings.ToLower(r.ItemType)
	case EventUpdate:
		if len(fields) == 1 {
			return humanize(fields[0]) + " changed"
		}
		return fmt.Sprintf("Updated %d fields", len(fields))
	}
	return generic
}

// meaningfulFields parses the diff and drops bookkeeping columns. A
// nil result means the diff was absent or malformed.
func meaningfulFields(diff json.RawMessage) []string {
	if len(diff) == 0 {
		return nil
	}
	var changes map[string]json.RawMessage
	if err := json.Unmarshal(diff, &changes); err != nil {
		return nil
	}

	fields := make([]string, 0, len(changes))
	for field := range changes {
		switch field {
		case "id", "created_at", "updated_at":
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

func humanize(field string) string {
	field = strings.ReplaceAll(field, "_", " ")
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
