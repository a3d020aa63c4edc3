package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chambagt/chamba-payments/pkg/models"
)

// SQS caps DelaySeconds at 15 minutes.
const maxSQSDelay = 15 * time.Minute

// SQSScheduler implements the CompletionScheduler interface using AWS SQS
// delayed message delivery.
type SQSScheduler struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSScheduler creates a new SQSScheduler.
func NewSQSScheduler(client *sqs.Client, queueURL string) *SQSScheduler {
	return &SQSScheduler{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ CompletionScheduler = (*SQSScheduler)(nil)

// ScheduleCompletion sends the completion event to an SQS queue with the
// requested delivery delay.
func (s *SQSScheduler) ScheduleCompletion(ctx context.Context, event *models.CompletionEvent, delay time.Duration) error {
	// Marshal the event to JSON.
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal completion event for SQS: %w", err)
	}

	if delay > maxSQSDelay {
		delay = maxSQSDelay
	}
	if delay < 0 {
		delay = 0
	}

	// Send the message to SQS.
	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(s.QueueURL),
		MessageBody:  aws.String(string(body)),
		DelaySeconds: int32(delay / time.Second),
	})

	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
