package usecase

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
)

type groupCost struct {
	title  string
	amount float64
}

// Aggregate converte o resultado agrupado e o total em campos de exibição.
//
// Grupos que arredondam para 0.00 são descartados, os restantes são ordenados
// por custo decrescente (empate: título crescente) e o Total entra sempre no
// índice 0. Com labels != nil as chaves são ids de conta e precisam existir no mapa.
func Aggregate(grouped, total entity.CostQueryResult, labels entity.AccountLabels) ([]entity.DisplayField, error) {
	if len(grouped.Buckets) != 1 {
		return nil, fmt.Errorf("%w: expected 1 time bucket in grouped result, got %d", types.ErrMalformedResult, len(grouped.Buckets))
	}

	totalAmount, err := totalOf(total)
	if err != nil {
		return nil, err
	}

	costs := make([]groupCost, 0, len(grouped.Buckets[0].Groups))
	for _, group := range grouped.Buckets[0].Groups {
		amount, err := parseAmount(group.Amount)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", group.Key, err)
		}
		if isZeroCents(amount) {
			continue
		}

		title := group.Key
		if labels != nil {
			label, ok := labels[group.Key]
			if !ok {
				return nil, fmt.Errorf("%w: %s", types.ErrUnknownAccount, group.Key)
			}
			title = label
		}

		costs = append(costs, groupCost{title: title, amount: amount})
	}

	sort.SliceStable(costs, func(i, j int) bool {
		if costs[i].amount != costs[j].amount {
			return costs[i].amount > costs[j].amount
		}
		return costs[i].title < costs[j].title
	})

	fields := make([]entity.DisplayField, 0, len(costs)+1)
	fields = append(fields, entity.DisplayField{Title: entity.TotalTitle, Value: FormatCurrency(totalAmount)})
	for _, c := range costs {
		fields = append(fields, entity.DisplayField{Title: c.title, Value: FormatCurrency(c.amount)})
	}

	return fields, nil
}

// FormatCurrency renders an amount as "$ 123.45".
func FormatCurrency(amount float64) string {
	return "$ " + strconv.FormatFloat(amount, 'f', 2, 64)
}

func totalOf(total entity.CostQueryResult) (float64, error) {
	if len(total.Buckets) == 0 {
		return 0, fmt.Errorf("%w: total result has no time bucket", types.ErrMalformedResult)
	}
	if total.Buckets[0].Total == nil {
		return 0, fmt.Errorf("%w: total result has no %s amount", types.ErrMalformedResult, entity.CostMetric)
	}
	amount, err := parseAmount(*total.Buckets[0].Total)
	if err != nil {
		return 0, fmt.Errorf("total: %w", err)
	}
	return amount, nil
}

func parseAmount(amount entity.CostAmount) (float64, error) {
	if amount.Amount == "" {
		return 0, fmt.Errorf("%w: missing amount", types.ErrMalformedResult)
	}
	value, err := strconv.ParseFloat(amount.Amount, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", types.ErrMalformedResult, amount.Amount)
	}
	return value, nil
}

// isZeroCents is true for amounts that render as 0.00 or -0.00.
func isZeroCents(amount float64) bool {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	return s == "0.00" || s == "-0.00"
}
