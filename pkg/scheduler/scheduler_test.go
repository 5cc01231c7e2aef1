package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/chris/multicurrency-wallet/pkg/scheduler/mocks"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type recordingSink struct {
	mu  sync.Mutex
	txs []models.Transaction
	err error
}

func (s *recordingSink) AddTransaction(ctx context.Context, tx models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ctx.Err()
	tx.ID = int64(len(s.txs) + 1)
	s.txs = append(s.txs, tx)
	return tx
}

var transfer = models.Transaction{
	Type:        models.SENT,
	Amount:      -250,
	Currency:    "EUR",
	Recipient:   "Ana García",
	Location:    "ES",
	Flag:        "🇪🇸",
	Category:    "Transfer",
	Icon:        "Send",
	Time:        "Just now",
	Description: "Rent",
}

func TestLocalScheduleTransfer(t *testing.T) {
	t.Run("Waits Then Records", func(t *testing.T) {
		sink := &recordingSink{}
		l := NewLocal(sink, nil)
		var slept time.Duration
		l.sleep = func(d time.Duration) { slept = d }

		err := l.ScheduleTransfer(context.Background(), transfer, 2*time.Second)

		assert.NoError(t, err)
		assert.Equal(t, 2*time.Second, slept)
		assert.Len(t, sink.txs, 1)
		assert.Equal(t, "Ana García", sink.txs[0].Recipient)
	})

	t.Run("Cancelled Context Still Records", func(t *testing.T) {
		sink := &recordingSink{}
		l := NewLocal(sink, nil)
		l.sleep = func(time.Duration) {}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := l.ScheduleTransfer(ctx, transfer, time.Second)

		assert.NoError(t, err)
		assert.Len(t, sink.txs, 1)
		assert.NoError(t, sink.err)
	})
}

func TestSQSScheduleTransfer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		mockClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
			var tx models.Transaction
			if err := jsoniter.Unmarshal([]byte(*in.MessageBody), &tx); err != nil {
				return false
			}
			return *in.QueueUrl == "https://sqs.local/transfers" && in.DelaySeconds == 2 && tx.Recipient == "Ana García"
		})).Return(&sqs.SendMessageOutput{}, nil)

		s := NewSQSScheduler(mockClient, "https://sqs.local/transfers")
		err := s.ScheduleTransfer(context.Background(), transfer, 2*time.Second)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Send Error", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("queue does not exist"))

		s := NewSQSScheduler(mockClient, "https://sqs.local/transfers")
		err := s.ScheduleTransfer(context.Background(), transfer, time.Second)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
		mockClient.AssertExpectations(t)
	})
}

func TestDelaySeconds(t *testing.T) {
	assert.Equal(t, int32(0), delaySeconds(0))
	assert.Equal(t, int32(0), delaySeconds(-time.Second))
	assert.Equal(t, int32(1), delaySeconds(200*time.Millisecond))
	assert.Equal(t, int32(2), delaySeconds(2*time.Second))
	assert.Equal(t, int32(900), delaySeconds(time.Hour))
}
