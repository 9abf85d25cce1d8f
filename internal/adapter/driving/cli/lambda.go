package cli

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"github.com/wsscc2021/aws-cost-reporter/internal/adapter/driving/lambda"
	"github.com/wsscc2021/aws-cost-reporter/internal/application/usecase"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
	"github.com/wsscc2021/aws-cost-reporter/pkg/console"
)

// NewLambdaCommand cria o subcomando que entrega o controle ao runtime do Lambda.
// Configuração vem do ambiente da função e, opcionalmente, de --config-file.
func NewLambdaCommand(configRepo repository.ConfigRepository, factory usecase.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda handler for scheduled invocations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configFile, _ := cmd.Flags().GetString("config-file")
			handler := lambda.NewHandler(configRepo, factory, console.NewPlainConsole(), configFile)
			awslambda.Start(handler.Handle)
			return nil
		},
	}
}
