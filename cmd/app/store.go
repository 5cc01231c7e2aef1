package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/multicurrency-wallet/pkg/config"
	"github.com/chris/multicurrency-wallet/pkg/kvstore"
	"github.com/chris/multicurrency-wallet/pkg/kvstore/badger"
	kvdynamodb "github.com/chris/multicurrency-wallet/pkg/kvstore/dynamodb"
	"github.com/chris/multicurrency-wallet/pkg/kvstore/file"
	"github.com/chris/multicurrency-wallet/pkg/kvstore/memory"
	"github.com/chris/multicurrency-wallet/pkg/kvstore/sqlite"
)

// openBackend opens the store selected by cfg. The returned func releases it.
func openBackend(ctx context.Context, cfg *config.Config) (kvstore.KVStore, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		s := memory.NewShared().Open()
		return s, s.Close, nil

	case config.DriverFile:
		s, err := file.NewStore(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.DriverBadger:
		db, err := badger.Open(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		h, err := db.Handle()
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return h, func() error {
			h.Close()
			return db.Close()
		}, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.DriverDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		s := kvdynamodb.New(dynamodb.NewFromConfig(awsCfg), cfg.TableName)
		s.Interval = cfg.PollInterval
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
