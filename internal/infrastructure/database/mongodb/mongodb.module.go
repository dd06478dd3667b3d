package mongodb

import (
	"context"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewClient),
	fx.Provide(NewCollectionManager),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client, cm *CollectionManager) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx); err != nil {
				return err
			}
			return cm.EnsureAuditCollection(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return client.Close(ctx)
		},
	})
}
