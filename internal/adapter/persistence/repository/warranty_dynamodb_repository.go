package repository

import (
	"context"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWarrantiesTableName = "warranties"
	warrantiesDeviceIDIndex    = "device_id-index"
)

// Warranty status is never stored: active/expired is recomputed from
// end_date at read time.
type warrantyItem struct {
	ID           string `dynamodbav:"id"`
	DeviceID     string `dynamodbav:"device_id"`
	RepairItemID string `dynamodbav:"repair_item_id,omitempty"`
	Code         string `dynamodbav:"code"`
	StartDate    string `dynamodbav:"start_date"`
	EndDate      string `dynamodbav:"end_date"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// WarrantyDynamoRepository persists Warranty entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: device_id-index (PK: device_id)

type WarrantyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWarrantyRepository = (*WarrantyDynamoRepository)(nil)

func NewWarrantyDynamoRepository(ddb *dynamodb.Client) *WarrantyDynamoRepository {
	return &WarrantyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WARRANTIES_TABLE", defaultWarrantiesTableName),
	}
}

func (r *WarrantyDynamoRepository) Create(ctx context.Context, w entities.Warranty) (entities.Warranty, error) {
	av, err := attributevalue.MarshalMap(toWarrantyItem(w))
	if err != nil {
		return entities.Warranty{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Warranty{}, err
	}
	return w, nil
}

func (r *WarrantyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Warranty, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Warranty{}, err
	}
	if len(out.Item) == 0 {
		return entities.Warranty{}, nil
	}

	var it warrantyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Warranty{}, err
	}
	return fromWarrantyItem(it), nil
}

func (r *WarrantyDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Warranty, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(warrantiesDeviceIDIndex),
		KeyConditionExpression: aws.String("device_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: deviceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Warranty, 0, len(out.Items))
	for _, raw := range out.Items {
		var it warrantyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWarrantyItem(it))
	}
	return items, nil
}

func toWarrantyItem(w entities.Warranty) warrantyItem {
	return warrantyItem{
		ID:           w.ID,
		DeviceID:     w.DeviceID,
		RepairItemID: w.RepairItemID,
		Code:         w.Code,
		StartDate:    w.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:      w.EndDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:    w.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWarrantyItem(it warrantyItem) entities.Warranty {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Warranty{
		ID:           it.ID,
		DeviceID:     it.DeviceID,
		RepairItemID: it.RepairItemID,
		Code:         it.Code,
		StartDate:    startDate,
		EndDate:      endDate,
		CreatedAt:    createdAt,
	}
}
