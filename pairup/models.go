/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package pairup

import (
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Partition names, one per record kind. All records of a kind share a
// partition; the row key identifies the record within it.
const (
	TeamPartition   = "TeamInfo"
	UserPartition   = "UserInfo"
	PairupPartition = "PairupRecord"
)

// TeamInfo describes a team the app is installed in.
type TeamInfo struct {

	// Unique identifier of the team.
	TeamID string `json:"teamId" dynamodbav:"TeamId"`

	// Tenant the team belongs to.
	TenantID string `json:"tenantId" dynamodbav:"TenantId"`

	// Service URL for message delivery to this team.
	ServiceURL string `json:"serviceUrl" dynamodbav:"ServiceUrl"`

	// Display name of the team.
	Name string `json:"name,omitempty" dynamodbav:"Name,omitempty"`

	// Name of the person who installed the app.
	InstallerName string `json:"installerName,omitempty" dynamodbav:"InstallerName,omitempty"`

	// Timestamp of the last write, assigned by the store.
	UpdatedAt strfmt.DateTime `json:"updatedAt,omitempty" dynamodbav:"UpdatedAt,omitempty"`
}

func (t TeamInfo) PartitionKey() string { return TeamPartition }
func (t TeamInfo) RowKey() string       { return t.TeamID }

// UserInfo describes a user's pair-up enrollment.
type UserInfo struct {

	// Unique identifier of the user.
	UserID string `json:"userId" dynamodbav:"UserId"`

	// Tenant the user belongs to.
	TenantID string `json:"tenantId" dynamodbav:"TenantId"`

	// Service URL for message delivery to this user.
	ServiceURL string `json:"serviceUrl" dynamodbav:"ServiceUrl"`

	// Whether the user receives pair-up notifications.
	OptedIn bool `json:"optedIn" dynamodbav:"OptedIn"`

	// Timestamp of the last write, assigned by the store.
	UpdatedAt strfmt.DateTime `json:"updatedAt,omitempty" dynamodbav:"UpdatedAt,omitempty"`
}

func (u UserInfo) PartitionKey() string { return UserPartition }
func (u UserInfo) RowKey() string       { return u.UserID }

// PairupRecord captures one issued pairing.
type PairupRecord struct {

	// Unique identifier of the pairing.
	ID string `json:"id" dynamodbav:"Id"`

	// The two paired users.
	FirstUserID  string `json:"firstUserId" dynamodbav:"FirstUserId"`
	SecondUserID string `json:"secondUserId" dynamodbav:"SecondUserId"`

	// Pairing round this record belongs to.
	Iteration int `json:"iteration" dynamodbav:"Iteration"`
}

func (p PairupRecord) PartitionKey() string { return PairupPartition }
func (p PairupRecord) RowKey() string       { return p.ID }

// NewPairupRecord creates a record for one pairing with a fresh identifier.
func NewPairupRecord(firstUserID, secondUserID string, iteration int) PairupRecord {
	return PairupRecord{
		ID:           uuid.NewString(),
		FirstUserID:  firstUserID,
		SecondUserID: secondUserID,
		Iteration:    iteration,
	}
}
