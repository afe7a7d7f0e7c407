package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/infrastructure/persistence"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/infrastructure/persistence/memory"
	"github.com/oblik-ua/oblik-sdk/pkg/configuration"
)

type stores struct {
	persons person.Repository
	dicts   dictionary.Repository
	pool    *pgxpool.Pool
}

func (s *stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func openStores(ctx context.Context, conf *configuration.Configuration) (*stores, error) {
	switch conf.Storage {
	case "postgres":
		pool, err := pgxpool.New(ctx, conf.Database.Opts)
		if err != nil {
			return nil, withCode(exitStore, fmt.Errorf("connect to database: %w", err))
		}
		return &stores{
			persons: persistence.NewPersonRepository(pool),
			dicts:   persistence.NewDictionaryRepository(pool),
			pool:    pool,
		}, nil
	default:
		return &stores{
			persons: memory.NewPersonRepository(conf.SnapshotPath, conf.Logger()),
			dicts:   memory.DefaultDictionaryRepository(),
		}, nil
	}
}
