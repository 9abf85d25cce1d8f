package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Cost Explorer e Organizations só respondem em us-east-1.
const globalRegion = "us-east-1"

// CostExplorerAPI is the subset of the Cost Explorer client used by CostRepositoryImpl.
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// SecretsManagerAPI is the subset of the Secrets Manager client used by SecretRepositoryImpl.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// STSAPI is the subset of the STS client used by IdentityRepositoryImpl.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Clients agrupa os clientes de serviço criados a partir de uma única aws.Config.
type Clients struct {
	CostExplorer   *costexplorer.Client
	Organizations  *organizations.Client
	SecretsManager *secretsmanager.Client
	STS            *sts.Client
}

// LoadAWSConfig carrega a configuração padrão do SDK, opcionalmente com perfil e região.
func LoadAWSConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		if profile != "" {
			return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
		}
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// NewClients cria os clientes usados pelo relatório.
func NewClients(cfg aws.Config) *Clients {
	globalCfg := cfg.Copy()
	globalCfg.Region = globalRegion

	regionalCfg := cfg.Copy()
	if regionalCfg.Region == "" {
		regionalCfg.Region = globalRegion
	}

	return &Clients{
		CostExplorer:   costexplorer.NewFromConfig(globalCfg),
		Organizations:  organizations.NewFromConfig(globalCfg),
		SecretsManager: secretsmanager.NewFromConfig(regionalCfg),
		STS:            sts.NewFromConfig(regionalCfg),
	}
}
