package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
)

// AccountRepositoryImpl implementa o AccountRepository sobre o AWS Organizations.
type AccountRepositoryImpl struct {
	client organizations.ListAccountsAPIClient
}

// NewAccountRepository cria uma nova implementação do AccountRepository.
func NewAccountRepository(client organizations.ListAccountsAPIClient) repository.AccountRepository {
	return &AccountRepositoryImpl{client: client}
}

// ListAccounts returns every account of the organization keyed by id.
// The label is the account email, then the account name, then the id itself.
func (r *AccountRepositoryImpl) ListAccounts(ctx context.Context) (entity.AccountLabels, error) {
	labels := make(entity.AccountLabels)

	paginator := organizations.NewListAccountsPaginator(r.client, &organizations.ListAccountsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed organizations list accounts: %w", err)
		}

		for _, account := range output.Accounts {
			id := aws.ToString(account.Id)
			if id == "" {
				continue
			}

			label := aws.ToString(account.Email)
			if label == "" {
				label = aws.ToString(account.Name)
			}
			if label == "" {
				label = id
			}
			labels[id] = label
		}
	}

	return labels, nil
}
