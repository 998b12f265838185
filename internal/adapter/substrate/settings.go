package substrate

import "github.com/iho/chainsnap/internal/infrastructure/config"

// ConfigFromSettings maps the NODE_* and STORAGE_* settings to a client Config.
func ConfigFromSettings(cfg *config.Config) Config {
	return Config{
		URL:         cfg.NodeURL,
		Token:       cfg.NodeToken,
		PageSize:    cfg.NodePageSize,
		WaitTimeout: cfg.NodeWaitTimeout,
		Layout: Layout{
			BalancesModule: cfg.StorageBalancesModule,
			AccountItem:    cfg.StorageAccountItem,
			AggregatesItem: cfg.StorageAggregatesItem,
			TotalItem:      cfg.StorageTotalItem,
			VestingModule:  cfg.StorageVestingModule,
			VestingItem:    cfg.StorageVestingItem,
			VestedItem:     cfg.StorageVestedItem,
		},
	}
}
