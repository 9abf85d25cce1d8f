package repository

import (
	"context"

	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
)

// CostRepository defines the interface for Cost Explorer queries.
type CostRepository interface {
	QueryCost(ctx context.Context, groupBy entity.GroupBy, window entity.TimeWindow) (entity.CostQueryResult, error)
}

// AccountRepository resolves linked account ids to display labels.
type AccountRepository interface {
	ListAccounts(ctx context.Context) (entity.AccountLabels, error)
}

// IdentityRepository returns the account the credentials belong to.
type IdentityRepository interface {
	GetAccountID(ctx context.Context) (string, error)
}

// SecretRepository lê a URL do webhook no secret store.
type SecretRepository interface {
	GetWebhookURL(ctx context.Context) (string, error)
}
