package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bbernstein/datumcheck/internal/config"
	"github.com/bbernstein/datumcheck/internal/models"
	"github.com/rs/zerolog/log"
)

// DynamoDBClient defines the interface for DynamoDB operations we need
type DynamoDBClient interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// DynamoResultStore writes station comparisons to a DynamoDB table
type DynamoResultStore struct {
	client    DynamoDBClient
	tableName string
	config    *config.CacheConfig
	now       func() time.Time
}

func NewDynamoResultStore(client DynamoDBClient, tableName string, cacheConfig *config.CacheConfig) *DynamoResultStore {
	if cacheConfig == nil {
		cacheConfig = config.GetCacheConfig()
	}
	return &DynamoResultStore{
		client:    client,
		tableName: tableName,
		config:    cacheConfig,
		now:       time.Now,
	}
}

// SaveComparisons stores the comparisons in batches, retrying failed and
// unprocessed writes with exponential backoff
func (s *DynamoResultStore) SaveComparisons(ctx context.Context, comparisons []models.Comparison) error {
	generatedAt := s.now().Unix()

	records := make([]models.ComparisonRecord, len(comparisons))
	for i, c := range comparisons {
		records[i] = models.NewComparisonRecord(c, generatedAt)
		if err := records[i].Validate(); err != nil {
			return fmt.Errorf("invalid comparison record: %w", err)
		}
	}

	batchSize := s.config.BatchSize
	if batchSize <= 0 || batchSize > 25 {
		batchSize = 25
	}

	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}

		var writeRequests []types.WriteRequest
		for _, record := range records[i:end] {
			item, err := attributevalue.MarshalMap(record)
			if err != nil {
				return fmt.Errorf("marshaling comparison record: %w", err)
			}
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		if err := s.writeBatch(ctx, writeRequests); err != nil {
			return err
		}
	}

	log.Debug().Int("count", len(records)).Str("table", s.tableName).Msg("Saved comparisons")
	return nil
}

func (s *DynamoResultStore) writeBatch(ctx context.Context, requests []types.WriteRequest) error {
	var lastErr error
	for retry := 0; retry < s.config.MaxBatchRetries; retry++ {
		if retry > 0 {
			time.Sleep(time.Duration(1<<(retry-1)) * s.config.GetRetryBackoff())
		}

		out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.tableName: requests,
			},
		})
		if err != nil {
			lastErr = err
			continue
		}

		var unprocessed []types.WriteRequest
		if out != nil {
			unprocessed = out.UnprocessedItems[s.tableName]
		}
		if len(unprocessed) == 0 {
			return nil
		}
		requests = unprocessed
		lastErr = fmt.Errorf("%d unprocessed items", len(unprocessed))
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no attempts made")
	}
	return fmt.Errorf("batch writing comparisons after %d retries: %w",
		s.config.MaxBatchRetries, lastErr)
}
