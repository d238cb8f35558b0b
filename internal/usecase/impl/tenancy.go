package impl

import (
	"context"
	"log/slog"

	"multipost/config"
	deliverycontext "multipost/internal/delivery/context"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
)

// tenancy resolves the owner filter for repository queries. A nil scope
// means workspaces are global.
type tenancy struct {
	multiTenant bool
}

func newTenancy(cfg *config.Config) tenancy {
	return tenancy{multiTenant: cfg != nil && cfg.Tenancy.MultiTenant}
}

func (t tenancy) scope(rawOwner string) (*string, error) {
	if !t.multiTenant {
		return nil, nil
	}

	owner, ok := entity.NormalizeOwnerID(rawOwner)
	if !ok {
		return nil, domainerrors.ErrAuthorization.WithDetails("user_id is required")
	}

	return &owner, nil
}

// requestLogger returns the request-scoped logger if available.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
