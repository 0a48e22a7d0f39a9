package repository

import (
	"context"
	"errors"
	"time"

	"vismapay_checkout/internal/domain/entities"
	"vismapay_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCheckoutOrdersTableName = "orders"

type checkoutOrderItem struct {
	CartID    string `dynamodbav:"cart_id"`
	State     string `dynamodbav:"state"`
	Amount    int64  `dynamodbav:"amount"`
	SecureKey string `dynamodbav:"secure_key"`
	CreatedAt string `dynamodbav:"created_at"`
}

// CheckoutOrderDynamoRepository stores the terminal order per cart.
//
// Table requirements:
//   - PK: cart_id (string)
//
// Finalize is a conditional put on attribute_not_exists(cart_id): the
// first of two racing callbacks wins, the second gets
// ErrOrderAlreadyFinalized. This is the uniqueness constraint the
// at-most-once finalization guarantee rests on.

type CheckoutOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutOrderRepository = (*CheckoutOrderDynamoRepository)(nil)

func NewCheckoutOrderDynamoRepository(ddb *dynamodb.Client) *CheckoutOrderDynamoRepository {
	return &CheckoutOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultCheckoutOrdersTableName),
	}
}

func (r *CheckoutOrderDynamoRepository) HasFinalOrder(ctx context.Context, cartID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cart_id": &types.AttributeValueMemberS{Value: cartID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *CheckoutOrderDynamoRepository) Finalize(ctx context.Context, order entities.CheckoutOrder) error {
	av, err := attributevalue.MarshalMap(checkoutOrderItem{
		CartID:    order.CartID,
		State:     string(order.State),
		Amount:    order.Amount,
		SecureKey: order.SecureKey,
		CreatedAt: order.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#cart_id)"),
		ExpressionAttributeNames: map[string]string{
			"#cart_id": "cart_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ErrOrderAlreadyFinalized
		}
		return err
	}
	return nil
}

func (r *CheckoutOrderDynamoRepository) MarkPaid(ctx context.Context, cartID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cart_id": &types.AttributeValueMemberS{Value: cartID},
		},
		ConditionExpression: aws.String("attribute_exists(#cart_id)"),
		UpdateExpression:    aws.String("SET #state = :state"),
		ExpressionAttributeNames: map[string]string{
			"#cart_id": "cart_id",
			"#state":   "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":state": &types.AttributeValueMemberS{Value: string(entities.OrderStateAccepted)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ErrCheckoutOrderNotFound
		}
		return err
	}
	return nil
}
