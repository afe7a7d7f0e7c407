package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oblik-ua/oblik-sdk/internal/server"
	"github.com/oblik-ua/oblik-sdk/pkg/configuration"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	var pool *pgxpool.Pool
	if conf.Storage == "postgres" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		var err error
		pool, err = pgxpool.New(ctx, conf.Database.Opts)
		if err != nil {
			panic(err)
		}
	}

	srv, err := server.Default(&server.Options{
		Logger:        logger,
		Configuration: conf,
		Pool:          pool,
	})
	if err != nil {
		log.Fatalf("failed to assemble server: %v", err)
	}

	logger.WithField("address", conf.SocketAddress).Info("starting server")
	if err := srv.Start(conf.SocketAddress); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
