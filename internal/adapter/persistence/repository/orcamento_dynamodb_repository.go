package repository

import (
	"context"
	"errors"
	"time"

	"oficina_mb/internal/domain/entities"
	"oficina_mb/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrcamentosTableName     = "orcamentos"
	defaultOrcamentosSituacaoIndex = "situacao-index"
)

type pecaItem struct {
	NomePeca string `dynamodbav:"nomePeca"`
	Qtd      string `dynamodbav:"qtd"`
	Un       string `dynamodbav:"un"`
}

type servicoItem struct {
	Servico string `dynamodbav:"servico"`
	Qtd     string `dynamodbav:"qtd"`
	Un      string `dynamodbav:"un"`
}

type observacaoItem struct {
	Obs string `dynamodbav:"obs"`
}

type orcamentoItem struct {
	ID          string           `dynamodbav:"id"`
	Nome        string           `dynamodbav:"nome"`
	Endereco    string           `dynamodbav:"endereco"`
	Numero      string           `dynamodbav:"numero"`
	Complemento string           `dynamodbav:"complemento"`
	Telefone    string           `dynamodbav:"telefone"`
	Modelo      string           `dynamodbav:"modelo"`
	Placa       string           `dynamodbav:"placa"`
	Pecas       []pecaItem       `dynamodbav:"pecas"`
	Servicos    []servicoItem    `dynamodbav:"servicos"`
	Observacao  []observacaoItem `dynamodbav:"observacao"`
	Total       float64          `dynamodbav:"total"`
	Situacao    string           `dynamodbav:"situacao"`
	DataCriacao string           `dynamodbav:"dataCriacao"`
}

// OrcamentoDynamoRepository persists Orcamento entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (situacao-index): situacao
//
// Update rewrites every editable field but never dataCriacao; the item is
// merged in place, there is no delete path.

type OrcamentoDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	situacaoIndex string
}

var _ interfaces.IOrcamentoRepository = (*OrcamentoDynamoRepository)(nil)

func NewOrcamentoDynamoRepository(ddb *dynamodb.Client) *OrcamentoDynamoRepository {
	return &OrcamentoDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("ORCAMENTOS_TABLE", defaultOrcamentosTableName),
		situacaoIndex: getenvDefault("ORCAMENTOS_SITUACAO_INDEX", defaultOrcamentosSituacaoIndex),
	}
}

func (r *OrcamentoDynamoRepository) Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	av, err := attributevalue.MarshalMap(toOrcamentoItem(o))
	if err != nil {
		return entities.Orcamento{}, err
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
		return entities.Orcamento{}, err
	}
	return o, nil
}

func (r *OrcamentoDynamoRepository) Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	pecas, err := attributevalue.Marshal(toPecaItems(o.Pecas))
	if err != nil {
		return entities.Orcamento{}, err
	}
	servicos, err := attributevalue.Marshal(toServicoItems(o.Servicos))
	if err != nil {
		return entities.Orcamento{}, err
	}
	observacao, err := attributevalue.Marshal(toObservacaoItems(o.Observacao))
	if err != nil {
		return entities.Orcamento{}, err
	}

	expr := "SET #nome = :nome, #modelo = :modelo, #placa = :placa, #pecas = :pecas, #servicos = :servicos, #observacao = :observacao, #total = :total, #situacao = :situacao"
	values := map[string]types.AttributeValue{
		":nome":       &types.AttributeValueMemberS{Value: o.Nome},
		":modelo":     &types.AttributeValueMemberS{Value: o.Modelo},
		":placa":      &types.AttributeValueMemberS{Value: o.Placa},
		":pecas":      pecas,
		":servicos":   servicos,
		":observacao": observacao,
		":total":      &types.AttributeValueMemberN{Value: floatToString(o.Total)},
		":situacao":   &types.AttributeValueMemberS{Value: string(o.Situacao)},
	}
	names := map[string]string{
		"#nome":       "nome",
		"#modelo":     "modelo",
		"#placa":      "placa",
		"#pecas":      "pecas",
		"#servicos":   "servicos",
		"#observacao": "observacao",
		"#total":      "total",
		"#situacao":   "situacao",
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: o.ID},
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
			return entities.Orcamento{}, nil
		}
		return entities.Orcamento{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Orcamento{}, nil
	}

	var it orcamentoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Orcamento{}, err
	}
	return fromOrcamentoItem(it), nil
}

func (r *OrcamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Orcamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.Orcamento{}, nil
	}

	var it orcamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Orcamento{}, err
	}
	return fromOrcamentoItem(it), nil
}

func (r *OrcamentoDynamoRepository) ListBySituacao(ctx context.Context, s entities.Situacao) ([]entities.Orcamento, error) {
	result := []entities.Orcamento{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(r.situacaoIndex),
			KeyConditionExpression: aws.String("#situacao = :situacao"),
			ExpressionAttributeNames: map[string]string{
				"#situacao": "situacao",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":situacao": &types.AttributeValueMemberS{Value: string(s)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []orcamentoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromOrcamentoItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return result, nil
}

func toOrcamentoItem(o entities.Orcamento) orcamentoItem {
	return orcamentoItem{
		ID:          o.ID,
		Nome:        o.Nome,
		Endereco:    o.Endereco,
		Numero:      o.Numero,
		Complemento: o.Complemento,
		Telefone:    o.Telefone,
		Modelo:      o.Modelo,
		Placa:       o.Placa,
		Pecas:       toPecaItems(o.Pecas),
		Servicos:    toServicoItems(o.Servicos),
		Observacao:  toObservacaoItems(o.Observacao),
		Total:       o.Total,
		Situacao:    string(o.Situacao),
		DataCriacao: o.DataCriacao.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrcamentoItem(it orcamentoItem) entities.Orcamento {
	dataCriacao, _ := time.Parse(time.RFC3339Nano, it.DataCriacao)

	pecas := make([]entities.Peca, 0, len(it.Pecas))
	for _, p := range it.Pecas {
		pecas = append(pecas, entities.Peca{NomePeca: p.NomePeca, Qtd: p.Qtd, Un: p.Un})
	}
	servicos := make([]entities.Servico, 0, len(it.Servicos))
	for _, s := range it.Servicos {
		servicos = append(servicos, entities.Servico{Servico: s.Servico, Qtd: s.Qtd, Un: s.Un})
	}
	observacao := make([]entities.Observacao, 0, len(it.Observacao))
	for _, o := range it.Observacao {
		observacao = append(observacao, entities.Observacao{Obs: o.Obs})
	}

	return entities.Orcamento{
		ID:          it.ID,
		Nome:        it.Nome,
		Endereco:    it.Endereco,
		Numero:      it.Numero,
		Complemento: it.Complemento,
		Telefone:    it.Telefone,
		Modelo:      it.Modelo,
		Placa:       it.Placa,
		Pecas:       pecas,
		Servicos:    servicos,
		Observacao:  observacao,
		Total:       it.Total,
		Situacao:    entities.Situacao(it.Situacao),
		DataCriacao: dataCriacao,
	}
}

func toPecaItems(pecas []entities.Peca) []pecaItem {
	items := make([]pecaItem, 0, len(pecas))
	for _, p := range pecas {
		items = append(items, pecaItem{NomePeca: p.NomePeca, Qtd: p.Qtd, Un: p.Un})
	}
	return items
}

func toServicoItems(servicos []entities.Servico) []servicoItem {
	items := make([]servicoItem, 0, len(servicos))
	for _, s := range servicos {
		items = append(items, servicoItem{Servico: s.Servico, Qtd: s.Qtd, Un: s.Un})
	}
	return items
}

func toObservacaoItems(observacao []entities.Observacao) []observacaoItem {
	items := make([]observacaoItem, 0, len(observacao))
	for _, o := range observacao {
		items = append(items, observacaoItem{Obs: o.Obs})
	}
	return items
}
