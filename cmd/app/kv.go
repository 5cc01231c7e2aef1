package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chris/multicurrency-wallet/pkg/config"
	"github.com/chris/multicurrency-wallet/pkg/kvstore"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

// errNotListable is returned by keys when the configured store cannot enumerate keys.
var errNotListable = errors.New("store does not support listing keys")

func withBackend(ctx context.Context, fn func(kvstore.KVStore) error) error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return err
	}
	backend, closeBackend, err := openBackend(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Driver, err)
	}
	defer closeBackend()
	return fn(backend)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the raw value stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd.Context(), func(s kvstore.KVStore) error {
				raw, err := s.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if raw == nil {
					return fmt.Errorf("key %q not found", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			})
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <json>",
		Short: "Replace the value stored under a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := []byte(args[1])
			if !jsoniter.Valid(value) {
				return fmt.Errorf("value for %q is not valid JSON", args[0])
			}
			return withBackend(cmd.Context(), func(s kvstore.KVStore) error {
				return s.Set(cmd.Context(), args[0], value)
			})
		},
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd.Context(), func(s kvstore.KVStore) error {
				l, ok := s.(kvstore.Lister)
				if !ok {
					return errNotListable
				}
				keys, err := l.Keys(cmd.Context())
				if err != nil {
					return err
				}
				for _, k := range keys {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			})
		},
	}
}
