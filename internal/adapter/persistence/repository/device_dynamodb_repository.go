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

const defaultDevicesTableName = "devices"

type deviceItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id,omitempty"`
	CustomerName       string `dynamodbav:"customer_name"`
	CustomerPhone      string `dynamodbav:"customer_phone,omitempty"`
	Brand              string `dynamodbav:"brand,omitempty"`
	Model              string `dynamodbav:"model,omitempty"`
	Status             string `dynamodbav:"status"`
	ReceivedDate       string `dynamodbav:"received_date"`
	ExpectedReturnDate string `dynamodbav:"expected_return_date,omitempty"`
	WarrantyMonths     int    `dynamodbav:"warranty_months"`
	Note               string `dynamodbav:"note,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// DeviceDynamoRepository persists Device entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type DeviceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeviceRepository = (*DeviceDynamoRepository)(nil)

func NewDeviceDynamoRepository(ddb *dynamodb.Client) *DeviceDynamoRepository {
	return &DeviceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEVICES_TABLE", defaultDevicesTableName),
	}
}

func (r *DeviceDynamoRepository) Create(ctx context.Context, d entities.Device) (entities.Device, error) {
	av, err := attributevalue.MarshalMap(toDeviceItem(d))
	if err != nil {
		return entities.Device{}, err
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
		return entities.Device{}, err
	}
	return d, nil
}

func (r *DeviceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Device, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Device{}, err
	}
	if len(out.Item) == 0 {
		return entities.Device{}, nil
	}

	var it deviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Device{}, err
	}
	return fromDeviceItem(it), nil
}

func (r *DeviceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DeviceStatus) (entities.Device, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Device{}, nil
		}
		return entities.Device{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Device{}, nil
	}

	var it deviceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Device{}, err
	}
	return fromDeviceItem(it), nil
}

func toDeviceItem(d entities.Device) deviceItem {
	it := deviceItem{
		ID:             d.ID,
		CustomerID:     d.CustomerID,
		CustomerName:   d.CustomerName,
		CustomerPhone:  d.CustomerPhone,
		Brand:          d.Brand,
		Model:          d.Model,
		Status:         string(d.Status),
		ReceivedDate:   d.ReceivedDate.UTC().Format(time.RFC3339Nano),
		WarrantyMonths: d.WarrantyMonths,
		Note:           d.Note,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.ExpectedReturnDate != nil {
		it.ExpectedReturnDate = d.ExpectedReturnDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromDeviceItem(it deviceItem) entities.Device {
	receivedDate, _ := time.Parse(time.RFC3339Nano, it.ReceivedDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	d := entities.Device{
		ID:             it.ID,
		CustomerID:     it.CustomerID,
		CustomerName:   it.CustomerName,
		CustomerPhone:  it.CustomerPhone,
		Brand:          it.Brand,
		Model:          it.Model,
		Status:         entities.DeviceStatus(it.Status),
		ReceivedDate:   receivedDate,
		WarrantyMonths: it.WarrantyMonths,
		Note:           it.Note,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.ExpectedReturnDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ExpectedReturnDate); err == nil {
			d.ExpectedReturnDate = &t
		}
	}
	return d
}
