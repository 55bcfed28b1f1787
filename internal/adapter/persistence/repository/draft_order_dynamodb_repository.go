package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDraftOrdersTableName = "draft_orders"
	draftsCustomerIDIndex       = "customer_id-index"
)

type draftOrderItem struct {
	ID              string `dynamodbav:"id"`
	OrderNumber     string `dynamodbav:"order_number"`
	CustomerID      string `dynamodbav:"customer_id"`
	ProductID       string `dynamodbav:"product_id"`
	Category        string `dynamodbav:"category"`
	Configuration   string `dynamodbav:"configuration"`
	CalculatedPrice string `dynamodbav:"calculated_price"`
	Breakdown       string `dynamodbav:"breakdown"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// DraftOrderDynamoRepository persists DraftOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Configuration and breakdown are stored as JSON documents; the
// calculators own their shape and the store never queries inside them.
type DraftOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftOrderRepository = (*DraftOrderDynamoRepository)(nil)

func NewDraftOrderDynamoRepository(ddb *dynamodb.Client) *DraftOrderDynamoRepository {
	return &DraftOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFT_ORDERS_TABLE", defaultDraftOrdersTableName),
	}
}

func (r *DraftOrderDynamoRepository) Create(ctx context.Context, d entities.DraftOrder) (entities.DraftOrder, error) {
	it, err := toDraftOrderItem(d)
	if err != nil {
		return entities.DraftOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DraftOrder{}, err
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
		return entities.DraftOrder{}, err
	}
	return d, nil
}

func (r *DraftOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.DraftOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DraftOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.DraftOrder{}, nil
	}

	var it draftOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DraftOrder{}, err
	}
	return fromDraftOrderItem(it)
}

func (r *DraftOrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.DraftOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(draftsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	drafts := make([]entities.DraftOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it draftOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		d, err := fromDraftOrderItem(it)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// ConfirmDrafts flips each draft to confirmed and renames its order
// number, conditionally on it still being a draft. A condition failure
// means another checkout got there first.
func (r *DraftOrderDynamoRepository) ConfirmDrafts(ctx context.Context, ids []string, orderNumber string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, id := range ids {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :draft"),
			UpdateExpression:    aws.String("SET #status = :confirmed, #order_number = :order_number, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":           "id",
				"#status":       "status",
				"#order_number": "order_number",
				"#updated_at":   "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":draft":        &types.AttributeValueMemberS{Value: string(entities.DraftStatusDraft)},
				":confirmed":    &types.AttributeValueMemberS{Value: string(entities.DraftStatusConfirmed)},
				":order_number": &types.AttributeValueMemberS{Value: orderNumber},
				":updated_at":   &types.AttributeValueMemberS{Value: now},
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				return fmt.Errorf("draft %s is no longer in draft status", id)
			}
			return err
		}
	}
	return nil
}

// RevertToDraft is the compensation of ConfirmDrafts. The condition is
// scoped to the compensating order number: a draft confirmed by a
// concurrent checkout under a different number is left alone, and
// drafts that were never confirmed (the confirm failed midway) are
// skipped silently.
func (r *DraftOrderDynamoRepository) RevertToDraft(ctx context.Context, ids []string, orderNumber string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, id := range ids {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :confirmed AND #order_number = :order_number"),
			UpdateExpression:    aws.String("SET #status = :draft, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":           "id",
				"#status":       "status",
				"#order_number": "order_number",
				"#updated_at":   "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":confirmed":    &types.AttributeValueMemberS{Value: string(entities.DraftStatusConfirmed)},
				":order_number": &types.AttributeValueMemberS{Value: orderNumber},
				":draft":        &types.AttributeValueMemberS{Value: string(entities.DraftStatusDraft)},
				":updated_at":   &types.AttributeValueMemberS{Value: now},
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return err
		}
	}
	return nil
}

func (r *DraftOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDraftOrderItem(d entities.DraftOrder) (draftOrderItem, error) {
	cfg, err := json.Marshal(d.Configuration)
	if err != nil {
		return draftOrderItem{}, err
	}
	breakdown, err := json.Marshal(d.Breakdown)
	if err != nil {
		return draftOrderItem{}, err
	}
	return draftOrderItem{
		ID:              d.ID,
		OrderNumber:     d.OrderNumber,
		CustomerID:      d.CustomerID,
		ProductID:       d.ProductID,
		Category:        string(d.Category),
		Configuration:   string(cfg),
		CalculatedPrice: decimalToString(d.CalculatedPrice),
		Breakdown:       string(breakdown),
		Status:          string(d.Status),
		CreatedAt:       d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDraftOrderItem(it draftOrderItem) (entities.DraftOrder, error) {
	var cfg entities.Configuration
	if it.Configuration != "" {
		if err := json.Unmarshal([]byte(it.Configuration), &cfg); err != nil {
			return entities.DraftOrder{}, err
		}
	}
	var breakdown entities.PriceBreakdown
	if it.Breakdown != "" {
		if err := json.Unmarshal([]byte(it.Breakdown), &breakdown); err != nil {
			return entities.DraftOrder{}, err
		}
	}
	price, err := decimalFromString(it.CalculatedPrice)
	if err != nil {
		return entities.DraftOrder{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.DraftOrder{
		ID:              it.ID,
		OrderNumber:     it.OrderNumber,
		CustomerID:      it.CustomerID,
		ProductID:       it.ProductID,
		Category:        entities.ProductCategory(it.Category),
		Configuration:   cfg,
		CalculatedPrice: price,
		Breakdown:       breakdown,
		Status:          entities.DraftOrderStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
