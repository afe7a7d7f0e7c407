package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/importing"
)

type DictionaryService struct {
	repo dictionary.Repository
}

func NewDictionaryService(repo dictionary.Repository) *DictionaryService {
	return &DictionaryService{repo: repo}
}

func (s *DictionaryService) Units(ctx context.Context) ([]dictionary.Unit, error) {
	return s.repo.Units(ctx)
}

func (s *DictionaryService) Positions(ctx context.Context) ([]dictionary.Position, error) {
	return s.repo.Positions(ctx)
}

func (s *DictionaryService) Ranks(ctx context.Context) ([]dictionary.Rank, error) {
	return s.repo.Ranks(ctx)
}

func (s *DictionaryService) Roles(ctx context.Context) ([]dictionary.Role, error) {
	return s.repo.Roles(ctx)
}

func (s *DictionaryService) Directions(ctx context.Context) ([]dictionary.Direction, error) {
	return s.repo.Directions(ctx)
}

// Snapshot loads the dictionaries the import pipeline resolves against.
func (s *DictionaryService) Snapshot(ctx context.Context) (importing.Dictionaries, error) {
	units, err := s.repo.Units(ctx)
	if err != nil {
		return importing.Dictionaries{}, err
	}
	positions, err := s.repo.Positions(ctx)
	if err != nil {
		return importing.Dictionaries{}, err
	}
	ranks, err := s.repo.Ranks(ctx)
	if err != nil {
		return importing.Dictionaries{}, err
	}
	return importing.Dictionaries{Units: units, Positions: positions, Ranks: ranks}, nil
}

type SearchHit struct {
	Kind string    `json:"kind"`
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	rank int
}

// Search fuzzy-ranks a query across all dictionaries, best matches first.
func (s *DictionaryService) Search(ctx context.Context, q string) ([]SearchHit, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, nil
	}

	var hits []SearchHit
	collect := func(kind string, id uuid.UUID, name string) {
		if r := fuzzy.RankMatchNormalizedFold(q, name); r >= 0 {
			hits = append(hits, SearchHit{Kind: kind, ID: id, Name: name, rank: r})
		}
	}

	units, err := s.repo.Units(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		collect("unit", u.ID, u.Name)
	}
	positions, err := s.repo.Positions(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range positions {
		collect("position", p.ID, p.Name)
	}
	ranks, err := s.repo.Ranks(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range ranks {
		collect("rank", r.ID, r.Name)
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })
	return hits, nil
}
