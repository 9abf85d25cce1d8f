package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
)

// CostRepositoryImpl implementa o CostRepository sobre o Cost Explorer.
type CostRepositoryImpl struct {
	client CostExplorerAPI
}

// NewCostRepository cria uma nova implementação do CostRepository.
func NewCostRepository(client CostExplorerAPI) repository.CostRepository {
	return &CostRepositoryImpl{client: client}
}

// QueryCost executa GetCostAndUsage para a janela e o agrupamento pedidos,
// seguindo NextPageToken até a última página.
func (r *CostRepositoryImpl) QueryCost(ctx context.Context, groupBy entity.GroupBy, window entity.TimeWindow) (entity.CostQueryResult, error) {
	if err := window.Granularity.Validate(); err != nil {
		return entity.CostQueryResult{}, err
	}

	result := entity.CostQueryResult{GroupBy: groupBy, Window: window}

	var token *string
	for {
		output, err := r.client.GetCostAndUsage(ctx, buildCostAndUsageInput(groupBy, window, token))
		if err != nil {
			return entity.CostQueryResult{}, fmt.Errorf("failed cost explorer query group by %s: %w", groupBy.Label(), err)
		}

		mergeResultsByTime(&result, output.ResultsByTime)

		if aws.ToString(output.NextPageToken) == "" {
			break
		}
		token = output.NextPageToken
	}

	return result, nil
}

func buildCostAndUsageInput(groupBy entity.GroupBy, window entity.TimeWindow, token *string) *costexplorer.GetCostAndUsageInput {
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(window.StartDate()),
			End:   aws.String(window.EndDate()),
		},
		Granularity:   ceTypes.Granularity(window.Granularity),
		Metrics:       []string{entity.CostMetric},
		NextPageToken: token,
	}

	if groupBy != entity.GroupByTotal {
		input.GroupBy = []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String(string(groupBy))},
		}
	}

	return input
}

// mergeResultsByTime anexa uma página ao resultado. Páginas seguintes repetem os
// mesmos buckets, então os grupos são acumulados pelo índice do bucket.
func mergeResultsByTime(result *entity.CostQueryResult, page []ceTypes.ResultByTime) {
	for i, rbt := range page {
		if i >= len(result.Buckets) {
			bucket := entity.CostBucket{}
			if rbt.TimePeriod != nil {
				bucket.Start = aws.ToString(rbt.TimePeriod.Start)
				bucket.End = aws.ToString(rbt.TimePeriod.End)
			}
			result.Buckets = append(result.Buckets, bucket)
		}

		bucket := &result.Buckets[i]
		if bucket.Total == nil {
			if metric, ok := rbt.Total[entity.CostMetric]; ok {
				amount := toCostAmount(metric)
				bucket.Total = &amount
			}
		}

		for _, group := range rbt.Groups {
			key := ""
			if len(group.Keys) > 0 {
				key = group.Keys[0]
			}
			bucket.Groups = append(bucket.Groups, entity.CostGroup{
				Key:    key,
				Amount: toCostAmount(group.Metrics[entity.CostMetric]),
			})
		}
	}
}

func toCostAmount(metric ceTypes.MetricValue) entity.CostAmount {
	return entity.CostAmount{
		Amount: aws.ToString(metric.Amount),
		Unit:   aws.ToString(metric.Unit),
	}
}
