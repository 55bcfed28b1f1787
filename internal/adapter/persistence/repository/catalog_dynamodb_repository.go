package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"furnicraft/internal/domain/entities"
	"furnicraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultCatalogTableName  = "catalog"
	defaultSettingsTableName = "catalog_settings"

	// The admin settings row consumed by the pricing engine. Other
	// setting keys in the table belong to the storefront CRUD screens.
	pricingProfileSettingKey = "pricing_profile"
)

type productBaseItem struct {
	Category                  string `dynamodbav:"category"`
	ProductID                 string `dynamodbav:"product_id"`
	Name                      string `dynamodbav:"name"`
	Active                    bool   `dynamodbav:"active"`
	BOMCost                   string `dynamodbav:"bom_cost"`
	MarkupPercent             string `dynamodbav:"markup_percent"`
	WastageDeliveryGSTPercent string `dynamodbav:"wastage_delivery_gst_percent"`
	DiscountPercent           string `dynamodbav:"discount_percent"`
	DiscountAbsolute          string `dynamodbav:"discount_absolute"`
	NetPrice                  string `dynamodbav:"net_price"`
	StrikePrice               string `dynamodbav:"strike_price"`
}

type categorySettingsItem struct {
	Category   string `dynamodbav:"category"`
	SettingKey string `dynamodbav:"setting_key"`
	// Payload is the CategorySettings document as JSON; decimals
	// round-trip as strings.
	Payload string `dynamodbav:"payload"`
}

// CatalogDynamoRepository reads the Catalog Store.
//
// Table requirements:
//   - catalog:          PK category (string), SK product_id (string)
//   - catalog_settings: PK category (string), SK setting_key (string)
//
// Read-only from this service: catalog rows are maintained by the
// storefront admin tooling.
type CatalogDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	settingsTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
		settingsTable: getenvDefault("CATALOG_SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *CatalogDynamoRepository) GetBaseRecord(ctx context.Context, category entities.ProductCategory, productID string) (entities.ProductBaseRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"category":   &types.AttributeValueMemberS{Value: string(category)},
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProductBaseRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProductBaseRecord{}, nil
	}

	var it productBaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProductBaseRecord{}, err
	}
	return fromProductBaseItem(it)
}

func (r *CatalogDynamoRepository) GetCategorySettings(ctx context.Context, category entities.ProductCategory) (entities.CategorySettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.settingsTable),
		Key: map[string]types.AttributeValue{
			"category":    &types.AttributeValueMemberS{Value: string(category)},
			"setting_key": &types.AttributeValueMemberS{Value: pricingProfileSettingKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CategorySettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.CategorySettings{}, nil
	}

	var it categorySettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CategorySettings{}, err
	}

	var settings entities.CategorySettings
	if err := json.Unmarshal([]byte(it.Payload), &settings); err != nil {
		return entities.CategorySettings{}, err
	}
	if settings.Category == "" {
		settings.Category = entities.ProductCategory(it.Category)
	}
	return settings, nil
}

func fromProductBaseItem(it productBaseItem) (entities.ProductBaseRecord, error) {
	rec := entities.ProductBaseRecord{
		ProductID: it.ProductID,
		Category:  entities.ProductCategory(it.Category),
		Name:      it.Name,
		Active:    it.Active,
	}
	for _, f := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{it.BOMCost, &rec.BOMCost},
		{it.MarkupPercent, &rec.MarkupPercent},
		{it.WastageDeliveryGSTPercent, &rec.WastageDeliveryGSTPercent},
		{it.DiscountPercent, &rec.DiscountPercent},
		{it.DiscountAbsolute, &rec.DiscountAbsolute},
		{it.NetPrice, &rec.NetPrice},
		{it.StrikePrice, &rec.StrikePrice},
	} {
		v, err := decimalFromString(f.raw)
		if err != nil {
			return entities.ProductBaseRecord{}, fmt.Errorf("product %s: %w", it.ProductID, err)
		}
		*f.dst = v
	}
	return rec, nil
}
