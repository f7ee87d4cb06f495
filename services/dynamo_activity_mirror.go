package services

import (
	"context"
	"fmt"

	"vibin_activity/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoActivityMirror keeps activity events in a DynamoDB table keyed by
// targetId (partition) and sortKey (time ordered).
type DynamoActivityMirror struct {
	Dynamo *DynamoService
	Table  string
}

// PutActivity writes a single event row.
func (m *DynamoActivityMirror) PutActivity(ctx context.Context, event models.ActivityEvent) error {
	return m.Dynamo.PutItem(ctx, m.table(), models.NewActivityItem(event))
}

// ListActivity returns up to limit events for targetID, newest first. The
// limit is capped at DefaultRetention.
func (m *DynamoActivityMirror) ListActivity(ctx context.Context, targetID string, limit int) ([]models.ActivityEvent, error) {
	if limit <= 0 || limit > models.DefaultRetention {
		limit = models.DefaultRetention
	}

	keyCondition := "targetId = :target"
	expressionValues := map[string]types.AttributeValue{
		":target": &types.AttributeValueMemberS{Value: targetID},
	}

	items, err := m.Dynamo.QueryItemsWithOptions(ctx, m.table(), keyCondition, expressionValues, nil, int32(limit), true)
	if err != nil {
		return nil, err
	}

	var rows []models.ActivityItem
	if err := attributevalue.UnmarshalListOfMaps(items, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activity items: %w", err)
	}

	events := make([]models.ActivityEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.Event())
	}
	return events, nil
}

func (m *DynamoActivityMirror) table() string {
	if m.Table == "" {
		return models.ActivityEventsTable
	}
	return m.Table
}
