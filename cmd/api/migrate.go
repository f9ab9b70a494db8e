package api

import (
	// 外部依赖
	cobra "github.com/spf13/cobra"

	// 内部引用
	config "github.com/srinivas-tce/labgigs/internal/config"
	db "github.com/srinivas-tce/labgigs/pkg/middleware/db"
	migrate "github.com/srinivas-tce/labgigs/pkg/model/migrate"
)

func NewMigrate() *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Long:         `api server db migrate`,
		SilenceUsage: true,
		PreRunE:      initMigrate,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate.Table(cmd.Root().Context())
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.ClosePostgres(cmd.Context())
			return nil
		},
	}
}

func NewSeed() *cobra.Command {
	return &cobra.Command{
		Use:          "seed",
		Long:         `load development fixtures into the database`,
		SilenceUsage: true,
		PreRunE:      initMigrate,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := migrate.Table(cmd.Root().Context()); err != nil {
				return err
			}
			return migrate.Seed(cmd.Root().Context())
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.ClosePostgres(cmd.Context())
			return nil
		},
	}
}

func initMigrate(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	db.InitPostgres(cmd.Context(), &db.Config{
		Host:   conf.Database.Host,
		Port:   conf.Database.Port,
		User:   conf.Database.User,
		PW:     conf.Database.Password,
		DBName: conf.Database.Name,
		LogConf: db.LogConf{
			Level: conf.Log.LogLevel,
		},
	})

	return nil
}
