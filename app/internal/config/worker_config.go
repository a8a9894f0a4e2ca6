package config

import "time"

type WorkerConfig struct {
	PoolSize             int           `mapstructure:"pool_size"`
	StatsRefreshInterval time.Duration `mapstructure:"stats_refresh_interval"`
	OverdueReportCron    string        `mapstructure:"overdue_report_cron"`
	DistributedLock      bool          `mapstructure:"distributed_lock"`
}
