package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/multicurrency-wallet/pkg/kvstore"
	"github.com/google/uuid"
)

// DefaultPollInterval is how often Watch scans the table for remote writes.
const DefaultPollInterval = 2 * time.Second

// DynamoDBAPI is the subset of the DynamoDB client used by the Store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Item is a record in the key-value table. Rev changes on every write and Writer names the
// handle that made it.
type Item struct {
	Key    string `dynamodbav:"key"`
	Value  string `dynamodbav:"value"`
	Rev    string `dynamodbav:"rev,omitempty"`
	Writer string `dynamodbav:"writer,omitempty"`
}

// revision identifies the write that produced the item.
func (i Item) revision() string {
	if i.Rev != "" {
		return i.Rev
	}
	return i.Value
}

var (
	_ kvstore.KVStore = (*Store)(nil)
	_ kvstore.Lister  = (*Store)(nil)
	_ kvstore.Watcher = (*Store)(nil)
	_ kvstore.Polled  = (*Store)(nil)
)

// Store implements kvstore.KVStore using a DynamoDB table with a "key" partition key.
// Each Store is one execution context.
type Store struct {
	Client    DynamoDBAPI
	TableName string
	// Interval is how often Watch polls the table.
	Interval time.Duration

	id string
}

// New creates a new Store.
func New(client DynamoDBAPI, tableName string) *Store {
	return &Store{
		Client:    client,
		TableName: tableName,
		Interval:  DefaultPollInterval,
		id:        uuid.New().String(),
	}
}

// Get retrieves the value stored under key from DynamoDB.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	keyAV, err := attributevalue.MarshalMap(map[string]string{"key": key})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.TableName),
		Key:            keyAV,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var item Item
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return []byte(item.Value), nil
}

// Set replaces the item stored under key. A single PutItem is atomic.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	itemAV, err := attributevalue.MarshalMap(Item{
		Key:    key,
		Value:  string(value),
		Rev:    uuid.New().String(),
		Writer: s.id,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.TableName),
		Item:      itemAV,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in DynamoDB: %w", err)
	}

	return nil
}

// Keys scans the table for every stored key.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	input := &dynamodb.ScanInput{
		TableName:            aws.String(s.TableName),
		ProjectionExpression: aws.String("#k"),
		ExpressionAttributeNames: map[string]string{
			"#k": "key",
		},
	}

	items, err := s.scan(ctx, input)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(items))
	for _, item := range items {
		keys = append(keys, item.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

// PollInterval reports how often Watch looks for remote writes.
func (s *Store) PollInterval() time.Duration {
	return s.Interval
}

// Watch polls the table and reports items rewritten by other handles. The table is read once
// before Watch returns, so every write made after that is reported.
func (s *Store) Watch(ctx context.Context) (<-chan kvstore.Change, error) {
	seen := make(map[string]string)
	items, err := s.scan(ctx, s.fullScan())
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		seen[item.Key] = item.revision()
	}

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	changes := make(chan kvstore.Change)
	go func() {
		defer close(changes)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			items, err := s.scan(ctx, s.fullScan())
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("dynamodb store poll failed", "table", s.TableName, "error", err)
				}
				continue
			}

			for _, item := range items {
				rev := item.revision()
				if seen[item.Key] == rev {
					continue
				}
				seen[item.Key] = rev
				if item.Writer == s.id {
					continue
				}

				select {
				case changes <- kvstore.Change{Key: item.Key, Value: []byte(item.Value)}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return changes, nil
}

func (s *Store) fullScan() *dynamodb.ScanInput {
	return &dynamodb.ScanInput{
		TableName:      aws.String(s.TableName),
		ConsistentRead: aws.Bool(true),
	}
}

// scan reads every page of input.
func (s *Store) scan(ctx context.Context, input *dynamodb.ScanInput) ([]Item, error) {
	var all []Item
	var startKey map[string]types.AttributeValue
	for {
		page := *input
		page.ExclusiveStartKey = startKey

		result, err := s.Client.Scan(ctx, &page)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}

		var items []Item
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items: %w", err)
		}
		all = append(all, items...)

		if len(result.LastEvaluatedKey) == 0 {
			return all, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// Close is a no-op; the client is owned by the caller.
func (s *Store) Close() error {
	return nil
}
