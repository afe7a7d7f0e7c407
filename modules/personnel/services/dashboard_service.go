package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
)

type UnitCount struct {
	UnitID uuid.UUID `json:"unitId"`
	Name   string    `json:"name"`
	Count  int64     `json:"count"`
}

type DashboardSummary struct {
	Total    int64                   `json:"total"`
	ByStatus map[person.Status]int64 `json:"byStatus"`
	ByUnit   []UnitCount             `json:"byUnit"`
	Recent   []person.Person         `json:"-"`
}

type DashboardService struct {
	persons person.Repository
	dicts   dictionary.Repository
}

func NewDashboardService(persons person.Repository, dicts dictionary.Repository) *DashboardService {
	return &DashboardService{persons: persons, dicts: dicts}
}

func (s *DashboardService) Summary(ctx context.Context) (DashboardSummary, error) {
	total, err := s.persons.Count(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	byStatus, err := s.persons.CountByStatus(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	byUnit, err := s.persons.CountByUnit(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	units, err := s.dicts.Units(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	unitCounts := make([]UnitCount, 0, len(units))
	for _, u := range units {
		if count, ok := byUnit[u.ID]; ok {
			unitCounts = append(unitCounts, UnitCount{UnitID: u.ID, Name: u.Name, Count: count})
		}
	}

	recent, _, err := s.persons.GetPaginated(ctx, &person.FindParams{Limit: 5})
	if err != nil {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		Total:    total,
		ByStatus: byStatus,
		ByUnit:   unitCounts,
		Recent:   recent,
	}, nil
}
