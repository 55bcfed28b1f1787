package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSaleOrdersTableName = "sale_orders"

type saleOrderItem struct {
	OrderNumber   string `dynamodbav:"order_number"`
	CustomerID    string `dynamodbav:"customer_id"`
	LineItems     string `dynamodbav:"line_items"`
	Subtotal      string `dynamodbav:"subtotal"`
	Discount      string `dynamodbav:"discount"`
	Total         string `dynamodbav:"total"`
	AdvanceAmount string `dynamodbav:"advance_amount"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// SaleOrderDynamoRepository persists SaleOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: order_number (string)
//
// Insert is conditional on the order number not existing; the checkout
// usecase derives deterministic numbers, so a lost race surfaces as a
// zero-value return, never as a duplicate order.
type SaleOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleOrderRepository = (*SaleOrderDynamoRepository)(nil)

func NewSaleOrderDynamoRepository(ddb *dynamodb.Client) *SaleOrderDynamoRepository {
	return &SaleOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALE_ORDERS_TABLE", defaultSaleOrdersTableName),
	}
}

func (r *SaleOrderDynamoRepository) Insert(ctx context.Context, o entities.SaleOrder) (entities.SaleOrder, error) {
	it, err := toSaleOrderItem(o)
	if err != nil {
		return entities.SaleOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SaleOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_number)"),
		ExpressionAttributeNames: map[string]string{
			"#order_number": "order_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SaleOrder{}, nil
		}
		return entities.SaleOrder{}, err
	}
	return o, nil
}

func (r *SaleOrderDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.SaleOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SaleOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.SaleOrder{}, nil
	}

	var it saleOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SaleOrder{}, err
	}
	return fromSaleOrderItem(it)
}

func (r *SaleOrderDynamoRepository) UpdateStatus(ctx context.Context, orderNumber string, status entities.SaleOrderStatus) (entities.SaleOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
		ConditionExpression: aws.String("attribute_exists(#order_number)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#order_number": "order_number"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SaleOrder{}, nil
		}
		return entities.SaleOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SaleOrder{}, nil
	}
	var it saleOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SaleOrder{}, err
	}
	return fromSaleOrderItem(it)
}

func (r *SaleOrderDynamoRepository) Delete(ctx context.Context, orderNumber string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
	})
	return err
}

func toSaleOrderItem(o entities.SaleOrder) (saleOrderItem, error) {
	lineItems, err := json.Marshal(o.LineItems)
	if err != nil {
		return saleOrderItem{}, err
	}
	return saleOrderItem{
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		LineItems:     string(lineItems),
		Subtotal:      decimalToString(o.Subtotal),
		Discount:      decimalToString(o.Discount),
		Total:         decimalToString(o.Total),
		AdvanceAmount: decimalToString(o.AdvanceAmount),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromSaleOrderItem(it saleOrderItem) (entities.SaleOrder, error) {
	var lineItems []entities.LineItem
	if it.LineItems != "" {
		if err := json.Unmarshal([]byte(it.LineItems), &lineItems); err != nil {
			return entities.SaleOrder{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.SaleOrder{
		OrderNumber: it.OrderNumber,
		CustomerID:  it.CustomerID,
		LineItems:   lineItems,
		Status:      entities.SaleOrderStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	var err error
	if o.Subtotal, err = decimalFromString(it.Subtotal); err != nil {
		return entities.SaleOrder{}, err
	}
	if o.Discount, err = decimalFromString(it.Discount); err != nil {
		return entities.SaleOrder{}, err
	}
	if o.Total, err = decimalFromString(it.Total); err != nil {
		return entities.SaleOrder{}, err
	}
	if o.AdvanceAmount, err = decimalFromString(it.AdvanceAmount); err != nil {
		return entities.SaleOrder{}, err
	}
	return o, nil
}
