package storage

import (
	"context"
	"errors"
	"github.com/alex-pricope/live-event-voting/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// VoteDocumentStorage is a whole-document store keyed by vote id. It makes no
// atomicity promise across Get+Put; the ledger serializes around it.
type VoteDocumentStorage interface {
	Get(ctx context.Context, id string) (*VoteDocument, error)
	Put(ctx context.Context, doc *VoteDocument) error
	Create(ctx context.Context, doc *VoteDocument) error
	Exists(ctx context.Context, id string) (bool, error)
}

type DynamoVoteStorage struct {
	Client    *dynamodb.Client
	TableName string
}

// voteDocumentItem carries the document under a single attribute so the
// table key stays a plain string PK.
type voteDocumentItem struct {
	PK       string        `dynamodbav:"PK"`
	Document *VoteDocument `dynamodbav:"Document"`
}

func (s *DynamoVoteStorage) Get(ctx context.Context, id string) (*VoteDocument, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("VOTE: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("VOTE: GetItem for id %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrVoteNotFound
	}

	var item voteDocumentItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		logging.Log.Errorf("VOTE: failed to unmarshal document %s: %v", id, err)
		return nil, err
	}
	return item.Document, nil
}

func (s *DynamoVoteStorage) Put(ctx context.Context, doc *VoteDocument) error {
	item, err := attributevalue.MarshalMap(&voteDocumentItem{
		PK:       doc.Metadata.ID,
		Document: doc,
	})
	if err != nil {
		logging.Log.Errorf("VOTE: failed to marshal document: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("VOTE: failed to put document %s: %v", doc.Metadata.ID, err)
		return err
	}
	return nil
}

func (s *DynamoVoteStorage) Create(ctx context.Context, doc *VoteDocument) error {
	item, err := attributevalue.MarshalMap(&voteDocumentItem{
		PK:       doc.Metadata.ID,
		Document: doc,
	})
	if err != nil {
		logging.Log.Errorf("VOTE: failed to marshal document: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return ErrVoteAlreadyExists
		}
		logging.Log.Errorf("VOTE: failed to create document %s: %v", doc.Metadata.ID, err)
		return err
	}
	return nil
}

func (s *DynamoVoteStorage) Exists(ctx context.Context, id string) (bool, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		return false, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            &s.TableName,
		Key:                  key,
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		logging.Log.Errorf("VOTE: exists check for id %s failed: %v", id, err)
		return false, err
	}
	return out.Item != nil, nil
}
