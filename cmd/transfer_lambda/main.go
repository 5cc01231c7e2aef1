package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/multicurrency-wallet/pkg/appdata"
	"github.com/chris/multicurrency-wallet/pkg/config"
	kvdynamodb "github.com/chris/multicurrency-wallet/pkg/kvstore/dynamodb"
	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/chris/multicurrency-wallet/pkg/scheduler"
	"github.com/chris/multicurrency-wallet/pkg/seed"
	"github.com/chris/multicurrency-wallet/pkg/storage"
	jsoniter "github.com/json-iterator/go"
)

// Handler records delayed transfers delivered by SQS.
type Handler struct {
	Sink scheduler.Sink
}

func newHandler(ctx context.Context, logger *slog.Logger) (*Handler, error) {
	cfg, err := config.Load(logger)
	if err != nil {
		return nil, err
	}
	if cfg.Driver != config.DriverDynamoDB {
		return nil, fmt.Errorf("transfer lambda requires the dynamodb store driver, got %q", cfg.Driver)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	backend := kvdynamodb.New(dynamodb.NewFromConfig(awsCfg), cfg.TableName)
	store, err := storage.New(ctx, backend, storage.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return &Handler{Sink: appdata.New(ctx, store, seed.MustLoad(time.Now()))}, nil
}

// HandleRequest appends every transaction in the batch. A malformed body fails the batch
// so that SQS redelivers it.
func (h *Handler) HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		slog.Info("Processing message", "message_id", message.MessageId)

		var tx models.Transaction
		if err := jsoniter.Unmarshal([]byte(message.Body), &tx); err != nil {
			return fmt.Errorf("failed to unmarshal transaction from SQS message %s: %w", message.MessageId, err)
		}

		added := h.Sink.AddTransaction(ctx, tx)
		slog.Info("Recorded transfer", "message_id", message.MessageId, "transaction_id", added.ID, "amount", added.Amount, "currency", added.Currency)
	}

	return nil
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize dependencies once per container.
	h, err := newHandler(context.Background(), logger)
	if err != nil {
		logger.Error("failed to initialize transfer lambda", "error", err)
		os.Exit(1)
	}
	lambda.Start(h.HandleRequest)
}
