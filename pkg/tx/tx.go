package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager оборачивает trm-менеджер и фиксирует уровень изоляции.
type Manager struct {
	trm *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{trm: manager.Must(pgxv5.NewDefaultFactory(db))}
}

// Do выполняет fn в serializable-транзакции. Конкурентные назначения
// отправлений на одного водителя сериализуются именно на этом уровне,
// без него две параллельные проверки вместимости могут обе пройти.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.Serializable}),
	)
	return m.trm.DoWithSettings(ctx, txSettings, fn)
}
