package repository

import (
	"context"

	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFabricsTableName = "fabrics"

type fabricItem struct {
	Code            string `dynamodbav:"code"`
	Name            string `dynamodbav:"name"`
	Active          bool   `dynamodbav:"active"`
	CostPerMeter    string `dynamodbav:"cost_per_meter"`
	UpgradePerMeter string `dynamodbav:"upgrade_per_meter"`
}

// FabricDynamoRepository reads the Fabric Ledger.
//
// Table requirements:
//   - fabrics: PK code (string)
type FabricDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFabricLedgerRepository = (*FabricDynamoRepository)(nil)

func NewFabricDynamoRepository(ddb *dynamodb.Client) *FabricDynamoRepository {
	return &FabricDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FABRICS_TABLE", defaultFabricsTableName),
	}
}

func (r *FabricDynamoRepository) GetFabric(ctx context.Context, code string) (entities.FabricRate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
	})
	if err != nil {
		return entities.FabricRate{}, err
	}
	if len(out.Item) == 0 {
		return entities.FabricRate{}, nil
	}

	var it fabricItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FabricRate{}, err
	}
	rate := entities.FabricRate{
		Code:   it.Code,
		Name:   it.Name,
		Active: it.Active,
	}
	if rate.CostPerMeter, err = decimalFromString(it.CostPerMeter); err != nil {
		return entities.FabricRate{}, err
	}
	if rate.UpgradePerMeter, err = decimalFromString(it.UpgradePerMeter); err != nil {
		return entities.FabricRate{}, err
	}
	return rate, nil
}
