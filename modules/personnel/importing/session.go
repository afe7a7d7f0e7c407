package importing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/pkg/serrors"
)

var (
	ErrRowNotFound     = serrors.NewError("IMPORT_ROW_NOT_FOUND", "import row not found", "")
	ErrUnknownField    = serrors.NewError("IMPORT_UNKNOWN_FIELD", "unknown import field", "")
	ErrNotChecked      = serrors.NewError("IMPORT_NOT_CHECKED", "duplicate check required before commit", "")
	ErrNothingToCommit = serrors.NewError("IMPORT_NOTHING_TO_COMMIT", "no valid selected rows to commit", "")
)

// Session owns one import batch from parse to commit. All operations
// serialize on the session mutex: the batch has a single owner and async
// steps never race against a concurrent mutation of the same batch.
type Session struct {
	mu        sync.Mutex
	id        uuid.UUID
	createdAt time.Time
	rows      []Row

	// checkedHash is the identity-field content hash the last successful
	// datastore check ran against. Empty means unchecked. Any edit of an
	// identity field or change of row count shifts the live hash away from
	// it, invalidating the check automatically.
	checkedHash string

	repo  person.Repository
	dicts Dictionaries
	log   logrus.FieldLogger
}

func NewSession(repo person.Repository, dicts Dictionaries, log logrus.FieldLogger) *Session {
	return &Session{
		id:        uuid.New(),
		createdAt: time.Now(),
		repo:      repo,
		dicts:     dicts,
		log:       log,
	}
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Load parses the file and replaces the batch. Any previous rows and check
// state are discarded.
func (s *Session) Load(r io.Reader) error {
	rows, err := ParseCSV(r, s.dicts)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
	s.checkedHash = ""
	rowsParsed.Add(float64(len(rows)))
	duplicatesFlagged.WithLabelValues(SourceBatch).Add(float64(batchFlagged(rows)))
	s.log.WithFields(logrus.Fields{
		"session": s.id,
		"rows":    len(rows),
	}).Info("import batch parsed")
	return nil
}

// Rows returns a snapshot of the batch in file order.
func (s *Session) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Checked reports whether the current batch contents have a valid datastore
// check behind them.
func (s *Session) Checked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkedLocked()
}

func (s *Session) checkedLocked() bool {
	return s.checkedHash != "" && s.checkedHash == s.identityHashLocked()
}

func (s *Session) identityHashLocked() string {
	h := sha256.New()
	for _, row := range s.rows {
		fmt.Fprintf(h, "%s|%s|%s|%s|%s\n",
			row.InternalID,
			strings.ToLower(row.Fields.Callsign),
			row.Fields.MilitaryID,
			row.Fields.Passport,
			row.Fields.TaxID,
		)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// UpdateField overwrites one field on one row and re-runs the full
// validation pass. Editing an identity field shifts the batch hash, so a
// prior datastore check no longer applies.
func (s *Session) UpdateField(rowID uuid.UUID, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfLocked(rowID)
	if i < 0 {
		return ErrRowNotFound
	}
	if err := setField(&s.rows[i].Fields, field, value, s.dicts); err != nil {
		return err
	}
	before := batchFlagged(s.rows)
	s.rows = ValidateBatch(s.rows)
	if after := batchFlagged(s.rows); after > before {
		duplicatesFlagged.WithLabelValues(SourceBatch).Add(float64(after - before))
	}
	return nil
}

// batchFlagged counts rows carrying an intra-batch duplicate tag.
func batchFlagged(rows []Row) int {
	n := 0
	for _, row := range rows {
		if len(row.Meta.BatchDuplicates) > 0 {
			n++
		}
	}
	return n
}

// ToggleSelection flips one row's selection independent of validity.
func (s *Session) ToggleSelection(rowID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfLocked(rowID)
	if i < 0 {
		return ErrRowNotFound
	}
	s.rows[i].Meta.Selected = !s.rows[i].Meta.Selected
	return nil
}

// ToggleAll sets every row's selection uniformly, invalid rows included.
// Commit filters by validity, the toggle does not.
func (s *Session) ToggleAll(checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		s.rows[i].Meta.Selected = checked
	}
}

// CheckDuplicates cross-references the entire batch (selected or not)
// against the datastore. It fails closed: on error the batch stays
// unchecked and nothing is committable.
func (s *Session) CheckDuplicates(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkedHash = ""

	queries := make([]person.DuplicateQuery, len(s.rows))
	for i, row := range s.rows {
		queries[i] = person.DuplicateQuery{
			RowID:      row.InternalID,
			Callsign:   row.Fields.Callsign,
			MilitaryID: row.Fields.MilitaryID,
			Passport:   row.Fields.Passport,
			TaxID:      row.Fields.TaxID,
		}
	}

	matches, err := s.repo.CheckDuplicates(ctx, queries)
	if err != nil {
		duplicateChecks.WithLabelValues("error").Inc()
		return fmt.Errorf("duplicate check: %w", err)
	}

	byID := make(map[uuid.UUID]person.DuplicateMatch, len(matches))
	for _, m := range matches {
		byID[m.RowID] = m
	}

	flagged := 0
	for i := range s.rows {
		// Replace, never append: repeated checks must not accumulate tags.
		s.rows[i].Meta.StoreDuplicates = nil
		m, ok := byID[s.rows[i].InternalID]
		if !ok || !m.IsDuplicate {
			continue
		}
		tags := make([]string, 0, len(m.MatchedFields))
		for _, f := range m.MatchedFields {
			tags = append(tags, DuplicateTag(f, SourceStore))
		}
		s.rows[i].Meta.StoreDuplicates = tags
		flagged++
	}
	s.rows = ValidateBatch(s.rows)
	s.checkedHash = s.identityHashLocked()

	duplicateChecks.WithLabelValues("ok").Inc()
	duplicatesFlagged.WithLabelValues(SourceStore).Add(float64(flagged))
	s.log.WithFields(logrus.Fields{
		"session":    s.id,
		"rows":       len(s.rows),
		"duplicates": flagged,
	}).Info("datastore duplicate check completed")
	return nil
}

type CommitFailure struct {
	RowID   uuid.UUID
	Message string
}

type CommitResult struct {
	Attempted int
	Succeeded int
	Failures  []CommitFailure
	Remaining int
}

func (r CommitResult) FullySucceeded() bool {
	return r.Attempted > 0 && r.Succeeded == r.Attempted
}

// Commit persists the selected valid subset sequentially, one create at a
// time. A failed create does not abort the loop: every eligible row is
// attempted and the outcome tallied at the end. Successfully created rows
// are pruned from the batch; everything else stays for another pass.
func (s *Session) Commit(ctx context.Context) (CommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.checkedLocked() {
		return CommitResult{}, ErrNotChecked
	}

	var eligible []int
	for i, row := range s.rows {
		if row.Meta.Selected && row.Meta.Valid {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return CommitResult{}, ErrNothingToCommit
	}

	result := CommitResult{Attempted: len(eligible)}
	succeeded := make(map[uuid.UUID]struct{}, len(eligible))
	for _, i := range eligible {
		row := s.rows[i]
		if _, err := s.repo.Create(ctx, person.New(row.Fields)); err != nil {
			rowCommits.WithLabelValues("failure").Inc()
			result.Failures = append(result.Failures, CommitFailure{
				RowID:   row.InternalID,
				Message: err.Error(),
			})
			s.log.WithFields(logrus.Fields{
				"session": s.id,
				"row":     row.InternalID,
			}).WithError(err).Warn("import row create failed")
			continue
		}
		rowCommits.WithLabelValues("success").Inc()
		succeeded[row.InternalID] = struct{}{}
		result.Succeeded++
	}

	retained := s.rows[:0:0]
	for _, row := range s.rows {
		if _, ok := succeeded[row.InternalID]; !ok {
			retained = append(retained, row)
		}
	}
	s.rows = retained
	result.Remaining = len(retained)

	s.log.WithFields(logrus.Fields{
		"session":   s.id,
		"attempted": result.Attempted,
		"succeeded": result.Succeeded,
		"remaining": result.Remaining,
	}).Info("import commit finished")
	return result, nil
}

func (s *Session) indexOfLocked(rowID uuid.UUID) int {
	for i, row := range s.rows {
		if row.InternalID == rowID {
			return i
		}
	}
	return -1
}
