package repository

import (
	"context"

	"github.com/wsscc2021/aws-cost-reporter/internal/domain/entity"
)

// Notifier delivers a finished report set to a chat channel.
type Notifier interface {
	Send(ctx context.Context, reports entity.ReportSet) error
}
