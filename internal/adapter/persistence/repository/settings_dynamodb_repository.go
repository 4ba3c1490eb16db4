package repository

import (
	"context"
	"encoding/json"

	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "settings"

type settingItem struct {
	ID    string `dynamodbav:"id"`
	Value string `dynamodbav:"value"`
}

// SettingsDynamoRepository stores opaque JSON blobs keyed by string: the
// company profile and the price catalog.
//
// Table requirements:
//   - PK: id (string)
type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsStore = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

// GetSetting returns nil (no error) when the key has never been written.
func (r *SettingsDynamoRepository) GetSetting(ctx context.Context, key string) (json.RawMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it settingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return json.RawMessage(it.Value), nil
}

func (r *SettingsDynamoRepository) PutSetting(ctx context.Context, key string, value json.RawMessage) error {
	av, err := attributevalue.MarshalMap(settingItem{ID: key, Value: string(value)})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
