package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
)

// IdentityRepositoryImpl implementa o IdentityRepository via STS.
type IdentityRepositoryImpl struct {
	client STSAPI
}

// NewIdentityRepository cria uma nova implementação do IdentityRepository.
func NewIdentityRepository(client STSAPI) repository.IdentityRepository {
	return &IdentityRepositoryImpl{client: client}
}

// GetAccountID returns the account id of the caller credentials.
func (r *IdentityRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	result, err := r.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting caller account ID: %w", err)
	}
	return aws.ToString(result.Account), nil
}
