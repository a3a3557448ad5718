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
	defaultRepairItemsTableName = "repair_items"
	repairItemsDeviceIDIndex    = "device_id-index"
)

type repairItemItem struct {
	ID             string `dynamodbav:"id"`
	DeviceID       string `dynamodbav:"device_id"`
	ServiceID      string `dynamodbav:"service_id,omitempty"`
	ServiceName    string `dynamodbav:"service_name"`
	PartUsed       string `dynamodbav:"part_used,omitempty"`
	Cost           int64  `dynamodbav:"cost"`
	WarrantyMonths int    `dynamodbav:"warranty_months"`
	Description    string `dynamodbav:"description,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// RepairItemDynamoRepository persists RepairItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: device_id-index (PK: device_id)

type RepairItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRepairItemRepository = (*RepairItemDynamoRepository)(nil)

func NewRepairItemDynamoRepository(ddb *dynamodb.Client) *RepairItemDynamoRepository {
	return &RepairItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REPAIR_ITEMS_TABLE", defaultRepairItemsTableName),
	}
}

func (r *RepairItemDynamoRepository) Create(ctx context.Context, item entities.RepairItem) (entities.RepairItem, error) {
	av, err := attributevalue.MarshalMap(toRepairItemItem(item))
	if err != nil {
		return entities.RepairItem{}, err
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
		return entities.RepairItem{}, err
	}
	return item, nil
}

func (r *RepairItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairItem{}, nil
	}

	var it repairItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairItem{}, err
	}
	return fromRepairItemItem(it), nil
}

func (r *RepairItemDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.RepairItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(repairItemsDeviceIDIndex),
		KeyConditionExpression: aws.String("device_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: deviceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RepairItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it repairItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRepairItemItem(it))
	}
	return items, nil
}

func (r *RepairItemDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toRepairItemItem(item entities.RepairItem) repairItemItem {
	return repairItemItem{
		ID:             item.ID,
		DeviceID:       item.DeviceID,
		ServiceID:      item.ServiceID,
		ServiceName:    item.ServiceName,
		PartUsed:       item.PartUsed,
		Cost:           item.Cost,
		WarrantyMonths: item.WarrantyMonths,
		Description:    item.Description,
		CreatedAt:      item.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRepairItemItem(it repairItemItem) entities.RepairItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.RepairItem{
		ID:             it.ID,
		DeviceID:       it.DeviceID,
		ServiceID:      it.ServiceID,
		ServiceName:    it.ServiceName,
		PartUsed:       it.PartUsed,
		Cost:           it.Cost,
		WarrantyMonths: it.WarrantyMonths,
		Description:    it.Description,
		CreatedAt:      createdAt,
	}
}
