package storage

import (
	"context"
	"github.com/alex-pricope/live-event-voting/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type PrizeListStorage interface {
	Get(ctx context.Context, id string) (*PrizeList, error)
	GetAll(ctx context.Context) ([]*PrizeList, error)
	Put(ctx context.Context, list *PrizeList) error
	Delete(ctx context.Context, id string) error
}

type DynamoPrizeListStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoPrizeListStorage) Get(ctx context.Context, id string) (*PrizeList, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("WHEEL: failed to marshal key for id %s: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("WHEEL: GetItem for id %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrPrizeListNotFound
	}

	var list PrizeList
	if err := attributevalue.UnmarshalMap(out.Item, &list); err != nil {
		logging.Log.Errorf("WHEEL: failed to unmarshal prize list: %v", err)
		return nil, err
	}
	return &list, nil
}

func (s *DynamoPrizeListStorage) GetAll(ctx context.Context) ([]*PrizeList, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("WHEEL: scan failed: %v", err)
		return nil, err
	}

	var lists []*PrizeList
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &lists); err != nil {
		logging.Log.Errorf("WHEEL: failed to unmarshal prize list scan: %v", err)
		return nil, err
	}
	return lists, nil
}

func (s *DynamoPrizeListStorage) Put(ctx context.Context, list *PrizeList) error {
	item, err := attributevalue.MarshalMap(list)
	if err != nil {
		logging.Log.Errorf("WHEEL: failed to marshal prize list: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("WHEEL: failed to put prize list %s: %v", list.ID, err)
		return err
	}
	return nil
}

func (s *DynamoPrizeListStorage) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("WHEEL: failed to delete prize list %s: %v", id, err)
		return err
	}
	return nil
}
