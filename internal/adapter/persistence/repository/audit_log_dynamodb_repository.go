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
	defaultAuditLogsTableName = "audit_logs"
	auditLogsDeviceIDIndex    = "device_id-index"
)

type auditLogItem struct {
	ID        string `dynamodbav:"id"`
	DeviceID  string `dynamodbav:"device_id"`
	Action    string `dynamodbav:"action"`
	Detail    string `dynamodbav:"detail"`
	ActorID   string `dynamodbav:"actor_id"`
	ActorName string `dynamodbav:"actor_name"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository persists device activity-log entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: device_id-index (PK: device_id)

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOGS_TABLE", defaultAuditLogsTableName),
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, entry entities.AuditLog) (entities.AuditLog, error) {
	av, err := attributevalue.MarshalMap(toAuditLogItem(entry))
	if err != nil {
		return entities.AuditLog{}, err
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
		return entities.AuditLog{}, err
	}
	return entry, nil
}

func (r *AuditLogDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.AuditLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditLogsDeviceIDIndex),
		KeyConditionExpression: aws.String("device_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: deviceID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditLog, 0, len(out.Items))
	for _, raw := range out.Items {
		var it auditLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromAuditLogItem(it))
	}
	return entries, nil
}

func toAuditLogItem(e entities.AuditLog) auditLogItem {
	return auditLogItem{
		ID:        e.ID,
		DeviceID:  e.DeviceID,
		Action:    string(e.Action),
		Detail:    e.Detail,
		ActorID:   e.ActorID,
		ActorName: e.ActorName,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAuditLogItem(it auditLogItem) entities.AuditLog {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AuditLog{
		ID:        it.ID,
		DeviceID:  it.DeviceID,
		Action:    entities.AuditAction(it.Action),
		Detail:    it.Detail,
		ActorID:   it.ActorID,
		ActorName: it.ActorName,
		CreatedAt: createdAt,
	}
}
