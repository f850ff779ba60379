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
	defaultOrganizadorTableName = "organizador"
	atualizacaoDocID            = "atualizacao"
)

type atualizacaoItem struct {
	ID     string `dynamodbav:"id"`
	Versao string `dynamodbav:"versao"`
	ApkURL string `dynamodbav:"apkUrl"`
}

// AtualizacaoDynamoRepository reads the published release document.
//
// The organizador table holds exactly one relevant item (id "atualizacao"),
// maintained by hand when a new APK is published.

type AtualizacaoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAtualizacaoRepository = (*AtualizacaoDynamoRepository)(nil)

func NewAtualizacaoDynamoRepository(ddb *dynamodb.Client) *AtualizacaoDynamoRepository {
	return &AtualizacaoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORGANIZADOR_TABLE", defaultOrganizadorTableName),
	}
}

func (r *AtualizacaoDynamoRepository) GetPublicada(ctx context.Context) (entities.Atualizacao, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: atualizacaoDocID},
		},
	})
	if err != nil {
		return entities.Atualizacao{}, err
	}
	if len(out.Item) == 0 {
		return entities.Atualizacao{}, nil
	}

	var it atualizacaoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Atualizacao{}, err
	}
	return entities.Atualizacao{ID: it.ID, Versao: it.Versao, ApkURL: it.ApkURL}, nil
}
