package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wsscc2021/aws-cost-reporter/internal/application/usecase"
	"github.com/wsscc2021/aws-cost-reporter/internal/domain/repository"
	"github.com/wsscc2021/aws-cost-reporter/internal/shared/types"
)

// Handler atende invocações agendadas (EventBridge) e roda um relatório por evento.
type Handler struct {
	configRepo repository.ConfigRepository
	factory    usecase.Factory
	console    types.ConsoleInterface
	configFile string
	now        func() time.Time
}

// NewHandler cria o handler da função Lambda.
func NewHandler(configRepo repository.ConfigRepository, factory usecase.Factory, console types.ConsoleInterface, configFile string) *Handler {
	return &Handler{
		configRepo: configRepo,
		factory:    factory,
		console:    console,
		configFile: configFile,
		now:        time.Now,
	}
}

// Handle ignores the event payload. Configuration is reloaded on every
// invocation so a warm container picks up environment changes.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) error {
	cfg, err := h.configRepo.Load(h.configFile)
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	reportUseCase, err := h.factory(ctx, cfg, h.console)
	if err != nil {
		return err
	}

	reports, err := reportUseCase.Run(ctx, h.now().In(loc))
	if err != nil {
		h.console.LogError("Cost report run failed: %s", err)
		return err
	}

	h.console.LogSuccess("Cost report run %s finished", reports.RunID)
	return nil
}
