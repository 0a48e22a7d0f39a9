package repository

import (
	"context"
	"strings"
	"time"

	"vismapay_checkout/internal/domain/entities"
	"vismapay_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultOrdersTableName        = "vismapay_orders"
	defaultOrderMessagesTableName = "vismapay_order_messages"
)

type orderRecordItem struct {
	CartID      string `dynamodbav:"cart_id"`
	OrderNumber string `dynamodbav:"order_number"`
	Amount      int64  `dynamodbav:"amount"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type orderMessageItem struct {
	CartID  string `dynamodbav:"cart_id"`
	ID      string `dynamodbav:"id"`
	Date    string `dynamodbav:"date"`
	Message string `dynamodbav:"message"`
}

// OrderLedgerDynamoRepository persists the cart-to-order-number
// mapping and the append-only message log in DynamoDB.
//
// Table requirements:
//   - vismapay_orders: PK cart_id (string)
//   - vismapay_order_messages: PK cart_id (string), SK id (string)
//
// The mapping table is keyed by cart_id, so Upsert is a single PutItem
// that atomically replaces the previous mapping; two rows per cart
// cannot exist. Message rows are keyed by write timestamp plus a
// random suffix, which preserves append order and keeps same-instant
// writes distinct.

type OrderLedgerDynamoRepository struct {
	ddb           *dynamodb.Client
	ordersTable   string
	messagesTable string
}

var _ interfaces.IOrderLedger = (*OrderLedgerDynamoRepository)(nil)

func NewOrderLedgerDynamoRepository(ddb *dynamodb.Client) *OrderLedgerDynamoRepository {
	return &OrderLedgerDynamoRepository{
		ddb:           ddb,
		ordersTable:   getenvDefault("VISMAPAY_ORDERS_TABLE", defaultOrdersTableName),
		messagesTable: getenvDefault("VISMAPAY_ORDER_MESSAGES_TABLE", defaultOrderMessagesTableName),
	}
}

func (r *OrderLedgerDynamoRepository) Upsert(ctx context.Context, cartID, orderNumber string, amount int64) error {
	av, err := attributevalue.MarshalMap(orderRecordItem{
		CartID:      cartID,
		OrderNumber: orderNumber,
		Amount:      amount,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.ordersTable),
		Item:      av,
	})
	return err
}

func (r *OrderLedgerDynamoRepository) Lookup(ctx context.Context, cartID string) (entities.OrderRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"cart_id": &types.AttributeValueMemberS{Value: cartID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderRecord{}, entities.ErrOrderRecordNotFound
	}

	var it orderRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderRecord{}, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.OrderRecord{
		CartID:      it.CartID,
		OrderNumber: it.OrderNumber,
		Amount:      it.Amount,
		UpdatedAt:   updatedAt,
	}, nil
}

// AppendMessage writes one row per non-empty line of the message, each
// timestamped at write time. Rows are never updated or deleted.
func (r *OrderLedgerDynamoRepository) AppendMessage(ctx context.Context, cartID, message string) error {
	for _, line := range strings.Split(message, "\n") {
		if line == "" {
			continue
		}
		now := time.Now().UTC()
		av, err := attributevalue.MarshalMap(orderMessageItem{
			CartID:  cartID,
			ID:      now.Format(time.RFC3339Nano) + "#" + uuid.NewString(),
			Date:    now.Format(time.RFC3339Nano),
			Message: line,
		})
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.messagesTable),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderLedgerDynamoRepository) ListMessages(ctx context.Context, cartID string) ([]entities.OrderMessage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.messagesTable),
		KeyConditionExpression: aws.String("cart_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: cartID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	messages := make([]entities.OrderMessage, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderMessageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		date, _ := time.Parse(time.RFC3339Nano, it.Date)
		messages = append(messages, entities.OrderMessage{
			CartID:  it.CartID,
			Date:    date,
			Message: it.Message,
		})
	}
	return messages, nil
}
