package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
)

// SecretRepositoryImpl lê a URL do webhook de um secret JSON no Secrets Manager.
type SecretRepositoryImpl struct {
	client   SecretsManagerAPI
	secretID string
	key      string
}

// NewSecretRepository cria uma nova implementação do SecretRepository.
func NewSecretRepository(client SecretsManagerAPI, secretID, key string) repository.SecretRepository {
	if key == "" {
		key = "webhooking_url"
	}
	return &SecretRepositoryImpl{client: client, secretID: secretID, key: key}
}

// GetWebhookURL lê o secret JSON e devolve o valor da chave configurada.
func (r *SecretRepositoryImpl) GetWebhookURL(ctx context.Context) (string, error) {
	if r.secretID == "" {
		return "", types.ErrMissingSecretID
	}

	output, err := r.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(r.secretID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", r.secretID, err)
	}

	var secret map[string]interface{}
	if err := json.Unmarshal([]byte(aws.ToString(output.SecretString)), &secret); err != nil {
		return "", fmt.Errorf("secret %s is not a JSON object: %w", r.secretID, err)
	}

	url, ok := secret[r.key].(string)
	if !ok || url == "" {
		return "", fmt.Errorf("%w: %s in %s", types.ErrSecretKeyMissing, r.key, r.secretID)
	}

	return url, nil
}
