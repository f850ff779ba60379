package repository

import (
	"context"

	"oficina_mb/internal/domain/entities"
	"oficina_mb/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCarrosTableName    = "carros"
	defaultCarrosClienteIndex = "clienteId-index"
)

type carroItem struct {
	ID        string `dynamodbav:"id"`
	Placa     string `dynamodbav:"placa"`
	Marca     string `dynamodbav:"marca"`
	Modelo    string `dynamodbav:"modelo"`
	Ano       string `dynamodbav:"ano"`
	ClienteID string `dynamodbav:"clienteId"`
}

// CarroDynamoRepository persists Carro entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (clienteId-index): clienteId

type CarroDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	clienteIndex string
}

var _ interfaces.ICarroRepository = (*CarroDynamoRepository)(nil)

func NewCarroDynamoRepository(ddb *dynamodb.Client) *CarroDynamoRepository {
	return &CarroDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("CARROS_TABLE", defaultCarrosTableName),
		clienteIndex: getenvDefault("CARROS_CLIENTE_INDEX", defaultCarrosClienteIndex),
	}
}

func (r *CarroDynamoRepository) Create(ctx context.Context, carro entities.Carro) (entities.Carro, error) {
	av, err := attributevalue.MarshalMap(toCarroItem(carro))
	if err != nil {
		return entities.Carro{}, err
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
		return entities.Carro{}, err
	}
	return carro, nil
}

func (r *CarroDynamoRepository) ListByClienteID(ctx context.Context, clienteID string) ([]entities.Carro, error) {
	result := []entities.Carro{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(r.clienteIndex),
			KeyConditionExpression: aws.String("#clienteId = :clienteId"),
			ExpressionAttributeNames: map[string]string{
				"#clienteId": "clienteId",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":clienteId": &types.AttributeValueMemberS{Value: clienteID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []carroItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromCarroItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return result, nil
}

// GetByPlaca resolves a carro by its exact upper-cased placa. Placas are
// unique in practice (one record per physical vehicle); the first match
// wins.
func (r *CarroDynamoRepository) GetByPlaca(ctx context.Context, placa string) (entities.Carro, error) {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#placa = :placa"),
			ExpressionAttributeNames: map[string]string{
				"#placa": "placa",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":placa": &types.AttributeValueMemberS{Value: placa},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return entities.Carro{}, err
		}

		if len(out.Items) > 0 {
			var it carroItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.Carro{}, err
			}
			return fromCarroItem(it), nil
		}

		if len(out.LastEvaluatedKey) == 0 {
			return entities.Carro{}, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toCarroItem(c entities.Carro) carroItem {
	return carroItem{
		ID:        c.ID,
		Placa:     c.Placa,
		Marca:     c.Marca,
		Modelo:    c.Modelo,
		Ano:       c.Ano,
		ClienteID: c.ClienteID,
	}
}

func fromCarroItem(it carroItem) entities.Carro {
	return entities.Carro{
		ID:        it.ID,
		Placa:     it.Placa,
		Marca:     it.Marca,
		Modelo:    it.Modelo,
		Ano:       it.Ano,
		ClienteID: it.ClienteID,
	}
}
