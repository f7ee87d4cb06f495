package services

import (
	"context"
	"errors"
	"fmt"

	"vibin_activity/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrProfileNotFound is returned when no profile exists for a handle.
var ErrProfileNotFound = errors.New("profile not found")

type UserProfileService struct {
	Dynamo *DynamoService
	Table  string
}

// GetUserProfile retrieves a user profile by handle
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userHandle string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userhandle": &types.AttributeValueMemberS{Value: userHandle},
	}

	item, err := ups.Dynamo.GetItem(ctx, ups.table(), key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

func (ups *UserProfileService) table() string {
	if ups.Table == "" {
		return models.UserProfilesTable
	}
	return ups.Table
}
