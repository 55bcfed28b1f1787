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

const (
	defaultJobCardsTableName = "job_cards"
	jobCardsSaleOrderIndex   = "sale_order_number-index"
)

type jobCardItem struct {
	JobCardNumber     string `dynamodbav:"job_card_number"`
	SaleOrderNumber   string `dynamodbav:"sale_order_number"`
	LineItemID        string `dynamodbav:"line_item_id"`
	Category          string `dynamodbav:"category"`
	SectionType       string `dynamodbav:"section_type"`
	UnitIndex         int    `dynamodbav:"unit_index"`
	Configuration     string `dynamodbav:"configuration"`
	FabricPlan        string `dynamodbav:"fabric_plan"`
	Specification     string `dynamodbav:"specification"`
	AllowanceSnapshot string `dynamodbav:"allowance_snapshot"`
	Status            string `dynamodbav:"status"`
	Priority          string `dynamodbav:"priority"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// JobCardDynamoRepository persists JobCard entities in DynamoDB.
//
// Table requirements:
//   - PK: job_card_number (string)
//   - GSI: sale_order_number-index (PK: sale_order_number)
//
// Cards are never deleted once an order reaches production;
// DeleteBySaleOrder serves only the checkout saga's compensation.
type JobCardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobCardRepository = (*JobCardDynamoRepository)(nil)

func NewJobCardDynamoRepository(ddb *dynamodb.Client) *JobCardDynamoRepository {
	return &JobCardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_CARDS_TABLE", defaultJobCardsTableName),
	}
}

func (r *JobCardDynamoRepository) InsertBatch(ctx context.Context, cards []entities.JobCard) error {
	for _, c := range cards {
		it, err := toJobCardItem(c)
		if err != nil {
			return err
		}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#job_card_number)"),
			ExpressionAttributeNames: map[string]string{
				"#job_card_number": "job_card_number",
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *JobCardDynamoRepository) GetByNumber(ctx context.Context, jobCardNumber string) (entities.JobCard, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_card_number": &types.AttributeValueMemberS{Value: jobCardNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobCard{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobCard{}, nil
	}

	var it jobCardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobCard{}, err
	}
	return fromJobCardItem(it)
}

func (r *JobCardDynamoRepository) ListBySaleOrder(ctx context.Context, orderNumber string) ([]entities.JobCard, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobCardsSaleOrderIndex),
		KeyConditionExpression: aws.String("sale_order_number = :son"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":son": &types.AttributeValueMemberS{Value: orderNumber},
		},
	})
	if err != nil {
		return nil, err
	}

	cards := make([]entities.JobCard, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobCardItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		c, err := fromJobCardItem(it)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func (r *JobCardDynamoRepository) UpdateStatus(ctx context.Context, jobCardNumber string, status entities.JobCardStatus) (entities.JobCard, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"job_card_number": &types.AttributeValueMemberS{Value: jobCardNumber},
		},
		ConditionExpression: aws.String("attribute_exists(#job_card_number)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#job_card_number": "job_card_number"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.JobCard{}, nil
		}
		return entities.JobCard{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.JobCard{}, nil
	}
	var it jobCardItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.JobCard{}, err
	}
	return fromJobCardItem(it)
}

func (r *JobCardDynamoRepository) DeleteBySaleOrder(ctx context.Context, orderNumber string) error {
	cards, err := r.ListBySaleOrder(ctx, orderNumber)
	if err != nil {
		return err
	}
	for _, c := range cards {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"job_card_number": &types.AttributeValueMemberS{Value: c.JobCardNumber},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toJobCardItem(c entities.JobCard) (jobCardItem, error) {
	cfg, err := json.Marshal(c.Configuration)
	if err != nil {
		return jobCardItem{}, err
	}
	plan, err := json.Marshal(c.FabricPlan)
	if err != nil {
		return jobCardItem{}, err
	}
	spec, err := json.Marshal(c.Specification)
	if err != nil {
		return jobCardItem{}, err
	}
	snapshot, err := json.Marshal(c.AllowanceSnapshot)
	if err != nil {
		return jobCardItem{}, err
	}
	return jobCardItem{
		JobCardNumber:     c.JobCardNumber,
		SaleOrderNumber:   c.SaleOrderNumber,
		LineItemID:        c.LineItemID,
		Category:          string(c.Category),
		SectionType:       c.SectionType,
		UnitIndex:         c.UnitIndex,
		Configuration:     string(cfg),
		FabricPlan:        string(plan),
		Specification:     string(spec),
		AllowanceSnapshot: string(snapshot),
		Status:            string(c.Status),
		Priority:          string(c.Priority),
		CreatedAt:         c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromJobCardItem(it jobCardItem) (entities.JobCard, error) {
	var cfg entities.Configuration
	if it.Configuration != "" {
		if err := json.Unmarshal([]byte(it.Configuration), &cfg); err != nil {
			return entities.JobCard{}, err
		}
	}
	var plan entities.FabricPlan
	if it.FabricPlan != "" {
		if err := json.Unmarshal([]byte(it.FabricPlan), &plan); err != nil {
			return entities.JobCard{}, err
		}
	}
	var spec entities.TechnicalSpecification
	if it.Specification != "" {
		if err := json.Unmarshal([]byte(it.Specification), &spec); err != nil {
			return entities.JobCard{}, err
		}
	}
	var snapshot entities.CategorySettings
	if it.AllowanceSnapshot != "" {
		if err := json.Unmarshal([]byte(it.AllowanceSnapshot), &snapshot); err != nil {
			return entities.JobCard{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.JobCard{
		JobCardNumber:     it.JobCardNumber,
		SaleOrderNumber:   it.SaleOrderNumber,
		LineItemID:        it.LineItemID,
		Category:          entities.ProductCategory(it.Category),
		SectionType:       it.SectionType,
		UnitIndex:         it.UnitIndex,
		Configuration:     cfg,
		FabricPlan:        plan,
		Specification:     spec,
		AllowanceSnapshot: snapshot,
		Status:            entities.JobCardStatus(it.Status),
		Priority:          entities.JobCardPriority(it.Priority),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}
