package models

import "time"

// UserProfile is the point-in-time snapshot badges are derived from
type UserProfile struct {
	UserHandle string    `dynamodbav:"userhandle" json:"userhandle"` // ✅ Partition Key
	Name       string    `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Photos     []string  `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	IsVerified bool      `dynamodbav:"isVerified" json:"isVerified"`
	IsPremium  bool      `dynamodbav:"isPremium" json:"isPremium"`
	CreatedAt  time.Time `dynamodbav:"createdAt" json:"createdAt"`
	LastActive time.Time `dynamodbav:"lastActive" json:"lastActive"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "Users"
