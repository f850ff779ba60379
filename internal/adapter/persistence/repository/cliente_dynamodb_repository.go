package repository

import (
	"context"
	"errors"

	"oficina_mb/internal/domain/entities"
	"oficina_mb/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientesTableName = "clientes"

type clienteItem struct {
	ID          string `dynamodbav:"id"`
	Nome        string `dynamodbav:"nome"`
	Endereco    string `dynamodbav:"endereco"`
	Numero      string `dynamodbav:"numero"`
	Complemento string `dynamodbav:"complemento"`
	Bairro      string `dynamodbav:"bairro"`
	CEP         string `dynamodbav:"cep"`
	Telefone    string `dynamodbav:"telefone"`
	CPF         string `dynamodbav:"cpf"`
}

// ClienteDynamoRepository persists Cliente entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Nome is stored upper-cased, which keeps the prefix search a single
// case-sensitive begins_with over the canonical form.

type ClienteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClienteRepository = (*ClienteDynamoRepository)(nil)

func NewClienteDynamoRepository(ddb *dynamodb.Client) *ClienteDynamoRepository {
	return &ClienteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTES_TABLE", defaultClientesTableName),
	}
}

func (r *ClienteDynamoRepository) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(toClienteItem(c))
	if err != nil {
		return entities.Cliente{}, err
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
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) Update(ctx context.Context, id string, c entities.Cliente) (entities.Cliente, error) {
	expr := "SET #nome = :nome, #endereco = :endereco, #numero = :numero, #complemento = :complemento, #bairro = :bairro, #cep = :cep, #telefone = :telefone, #cpf = :cpf"
	values := map[string]types.AttributeValue{
		":nome":        &types.AttributeValueMemberS{Value: c.Nome},
		":endereco":    &types.AttributeValueMemberS{Value: c.Endereco},
		":numero":      &types.AttributeValueMemberS{Value: c.Numero},
		":complemento": &types.AttributeValueMemberS{Value: c.Complemento},
		":bairro":      &types.AttributeValueMemberS{Value: c.Bairro},
		":cep":         &types.AttributeValueMemberS{Value: c.CEP},
		":telefone":    &types.AttributeValueMemberS{Value: c.Telefone},
		":cpf":         &types.AttributeValueMemberS{Value: c.CPF},
	}
	names := map[string]string{
		"#nome":        "nome",
		"#endereco":    "endereco",
		"#numero":      "numero",
		"#complemento": "complemento",
		"#bairro":      "bairro",
		"#cep":         "cep",
		"#telefone":    "telefone",
		"#cpf":         "cpf",
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Cliente{}, nil
		}
		return entities.Cliente{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Cliente{}, nil
	}

	var it clienteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Cliente{}, err
	}
	return fromClienteItem(it), nil
}

func (r *ClienteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cliente{}, nil
	}

	var it clienteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cliente{}, err
	}
	return fromClienteItem(it), nil
}

// SearchByNomePrefix scans for clientes whose stored nome starts with the
// given prefix. This mirrors the store's prefix range query (>= prefix,
// <= prefix + sentinel) as a begins_with filter; the dataset is shop-sized,
// so a paginated scan is acceptable.
func (r *ClienteDynamoRepository) SearchByNomePrefix(ctx context.Context, prefix string) ([]entities.Cliente, error) {
	result := []entities.Cliente{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("begins_with(#nome, :prefix)"),
			ExpressionAttributeNames: map[string]string{
				"#nome": "nome",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: prefix},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []clienteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromClienteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return result, nil
}

func toClienteItem(c entities.Cliente) clienteItem {
	return clienteItem{
		ID:          c.ID,
		Nome:        c.Nome,
		Endereco:    c.Endereco,
		Numero:      c.Numero,
		Complemento: c.Complemento,
		Bairro:      c.Bairro,
		CEP:         c.CEP,
		Telefone:    c.Telefone,
		CPF:         c.CPF,
	}
}

func fromClienteItem(it clienteItem) entities.Cliente {
	return entities.Cliente{
		ID:          it.ID,
		Nome:        it.Nome,
		Endereco:    it.Endereco,
		Numero:      it.Numero,
		Complemento: it.Complemento,
		Bairro:      it.Bairro,
		CEP:         it.CEP,
		Telefone:    it.Telefone,
		CPF:         it.CPF,
	}
}
