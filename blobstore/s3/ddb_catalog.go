package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Catalog tracks the latest committed revision of each named bank in
// DynamoDB. S3 writes are last-writer-wins; the catalog adds the atomic
// compare-and-swap S3 lacks, so multiple writers can publish revisions of
// the same bank without losing updates: write the blob under a unique key,
// then Commit the key.
//
// Table schema:
//   - Partition key: bank_name (string)
//   - Sort key: version (number) - monotonically increasing revision
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name thomasq-banks \
//	  --attribute-definitions AttributeName=bank_name,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=bank_name,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type Catalog struct {
	client    DDBClient
	tableName string
}

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ErrConcurrentModification is returned when a concurrent commit is detected.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// NewCatalog creates a new DynamoDB-backed bank catalog.
func NewCatalog(client DDBClient, tableName string) *Catalog {
	return &Catalog{
		client:    client,
		tableName: tableName,
	}
}

// Latest returns the latest committed version and blob key for the named
// bank. A version of 0 means no revision has been committed yet.
func (c *Catalog) Latest(ctx context.Context, name string) (uint64, string, error) {
	resp, err := c.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("bank_name = :name"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
		ScanIndexForward: aws.Bool(false), // Descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to query DynamoDB: %w", err)
	}

	if len(resp.Items) == 0 {
		return 0, "", nil
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute in DynamoDB")
	}
	keyAttr, ok := item["blob_key"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid blob_key attribute in DynamoDB")
	}

	var version uint64
	if _, err := fmt.Sscanf(versionAttr.Value, "%d", &version); err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}

	return version, keyAttr.Value, nil
}

// Commit atomically records blobKey as the next revision of the named bank
// and returns the new version. ErrConcurrentModification is returned when
// another writer committed the same version first; callers retry by
// re-reading Latest.
func (c *Catalog) Commit(ctx context.Context, name, blobKey string) (uint64, error) {
	currentVersion, _, err := c.Latest(ctx, name)
	if err != nil {
		return 0, err
	}

	newVersion := currentVersion + 1

	// Conditional put: only succeed if this version doesn't exist yet
	_, err = c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item: map[string]types.AttributeValue{
			"bank_name": &types.AttributeValueMemberS{Value: name},
			"version":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newVersion)},
			"blob_key":  &types.AttributeValueMemberS{Value: blobKey},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})

	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return 0, ErrConcurrentModification
		}
		return 0, fmt.Errorf("failed to commit version to DynamoDB: %w", err)
	}

	return newVersion, nil
}
