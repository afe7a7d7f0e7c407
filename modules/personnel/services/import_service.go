package services

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/importing"
	"github.com/oblik-ua/oblik-sdk/pkg/eventbus"
	"github.com/oblik-ua/oblik-sdk/pkg/serrors"
)

var ErrSessionNotFound = serrors.NewError("IMPORT_SESSION_NOT_FOUND", "import session not found", "")

// ImportService keeps live import sessions in memory, one per uploaded
// file. A session ends when its batch is fully committed or discarded.
type ImportService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*importing.Session

	repo      person.Repository
	dicts     *DictionaryService
	publisher eventbus.EventBus
	log       logrus.FieldLogger
}

func NewImportService(repo person.Repository, dicts *DictionaryService, publisher eventbus.EventBus, log logrus.FieldLogger) *ImportService {
	return &ImportService{
		sessions:  make(map[uuid.UUID]*importing.Session),
		repo:      repo,
		dicts:     dicts,
		publisher: publisher,
		log:       log,
	}
}

// Start parses the uploaded file into a fresh session.
func (s *ImportService) Start(ctx context.Context, file io.Reader) (*importing.Session, error) {
	snapshot, err := s.dicts.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	session := importing.NewSession(s.repo, snapshot, s.log)
	if err := session.Load(file); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()
	return session, nil
}

func (s *ImportService) Get(id uuid.UUID) (*importing.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *ImportService) UpdateField(id, rowID uuid.UUID, field, value string) error {
	session, err := s.Get(id)
	if err != nil {
		return err
	}
	return session.UpdateField(rowID, field, value)
}

func (s *ImportService) ToggleSelection(id, rowID uuid.UUID) error {
	session, err := s.Get(id)
	if err != nil {
		return err
	}
	return session.ToggleSelection(rowID)
}

func (s *ImportService) ToggleAll(id uuid.UUID, checked bool) error {
	session, err := s.Get(id)
	if err != nil {
		return err
	}
	session.ToggleAll(checked)
	return nil
}

func (s *ImportService) CheckDuplicates(ctx context.Context, id uuid.UUID) error {
	session, err := s.Get(id)
	if err != nil {
		return err
	}
	return session.CheckDuplicates(ctx)
}

// Commit persists the selected valid subset. A commit that leaves the
// batch empty ends the session; otherwise it stays open with the remaining
// rows.
func (s *ImportService) Commit(ctx context.Context, id uuid.UUID) (importing.CommitResult, error) {
	session, err := s.Get(id)
	if err != nil {
		return importing.CommitResult{}, err
	}
	result, err := session.Commit(ctx)
	if err != nil {
		return importing.CommitResult{}, err
	}
	s.publisher.Publish(&person.ImportedEvent{
		Attempted: result.Attempted,
		Succeeded: result.Succeeded,
	})
	if result.Remaining == 0 {
		s.Discard(id)
	}
	return result, nil
}

func (s *ImportService) Discard(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
