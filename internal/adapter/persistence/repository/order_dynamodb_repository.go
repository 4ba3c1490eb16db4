package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

// serviceOrderItem is the DynamoDB row. The flat columns exist for remote-side
// indexing and search; content carries the full order and is authoritative.
type serviceOrderItem struct {
	ID           string `dynamodbav:"id"`
	ClientName   string `dynamodbav:"client_name"`
	VehiclePlate string `dynamodbav:"vehicle_plate"`
	TotalValue   string `dynamodbav:"total_value"`
	UpdatedAt    string `dynamodbav:"updated_at"`
	Content      string `dynamodbav:"content"`
}

// OrderDynamoRepository persists ServiceOrder records in DynamoDB.
//
// Table requirements:
//   - PK: id (string, OS-NNNN)
//
// Upserts are plain PutItem calls keyed by id: an edit replaces the previous
// row, which is exactly the collection semantics the order book relies on.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderStore = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

// FetchOrders returns the whole collection, newest first (numeric id
// descending, since ids are allocated sequentially). Rows whose content blob
// no longer deserializes are skipped rather than failing the whole fetch.
func (r *OrderDynamoRepository) FetchOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders := make([]entities.ServiceOrder, 0, 64)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				continue
			}
			var o entities.ServiceOrder
			if err := json.Unmarshal([]byte(it.Content), &o); err != nil {
				continue
			}
			orders = append(orders, o)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return numericID(orders[i].ID) > numericID(orders[j].ID)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) UpsertOrder(ctx context.Context, order entities.ServiceOrder) error {
	it, err := toServiceOrderItem(order)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// DeleteOrder removes the row by id. DynamoDB's DeleteItem succeeds for absent
// keys, which gives the no-op-on-missing contract for free.
func (r *OrderDynamoRepository) DeleteOrder(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceOrderItem(o entities.ServiceOrder) (serviceOrderItem, error) {
	content, err := json.Marshal(o)
	if err != nil {
		return serviceOrderItem{}, fmt.Errorf("marshal order content: %w", err)
	}
	return serviceOrderItem{
		ID:           o.ID,
		ClientName:   o.Client.Name,
		VehiclePlate: o.Vehicle.Plate,
		TotalValue:   floatToString(o.Total()),
		UpdatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
		Content:      string(content),
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func numericID(id string) int {
	var digits []byte
	for i := 0; i < len(id); i++ {
		if id[i] >= '0' && id[i] <= '9' {
			digits = append(digits, id[i])
		}
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}
