package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azqueue"
)

type azureQueue struct {
	service *azqueue.ServiceClient
}

func NewAzureQueue(connectionString string) (Queue, error) {
	service, err := azqueue.NewServiceClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create queue service client: %w", err)
	}
	return &azureQueue{service: service}, nil
}

func (q *azureQueue) Send(ctx context.Context, queueName string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal queue payload: %w", err)
	}
	_, err = q.service.NewQueueClient(queueName).EnqueueMessage(ctx, string(body), nil)
	if err != nil {
		return fmt.Errorf("enqueue message to %s: %w", queueName, err)
	}
	return nil
}
