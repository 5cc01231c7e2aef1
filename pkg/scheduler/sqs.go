package scheduler

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/multicurrency-wallet/pkg/models"
	jsoniter "github.com/json-iterator/go"
)

// maxDelaySeconds is the longest delivery delay SQS accepts.
const maxDelaySeconds = 900

// SQSAPI is the subset of the SQS client used by SQSScheduler.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSScheduler implements the Scheduler interface using AWS SQS.
type SQSScheduler struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client SQSAPI, queueURL string) *SQSScheduler {
	return &SQSScheduler{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Scheduler = (*SQSScheduler)(nil)

// ScheduleTransfer sends the transaction to an SQS queue, hidden from consumers until
// delay has passed.
func (s *SQSScheduler) ScheduleTransfer(ctx context.Context, tx models.Transaction, delay time.Duration) error {
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction for SQS: %w", err)
	}

	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(s.QueueURL),
		MessageBody:  aws.String(string(body)),
		DelaySeconds: delaySeconds(delay),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}

// delaySeconds rounds delay up to whole seconds within the range SQS accepts.
func delaySeconds(delay time.Duration) int32 {
	if delay <= 0 {
		return 0
	}
	secs := math.Ceil(delay.Seconds())
	if secs > maxDelaySeconds {
		return maxDelaySeconds
	}
	return int32(secs)
}
