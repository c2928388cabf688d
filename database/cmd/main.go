package main

import (
	"fmt"
	"os"

	"anket.link/configs"
	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"
	"anket.link/database"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Hata: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		migrate bool
		seed    bool
	)

	cmd := &cobra.Command{
		Use:   "anket-db",
		Short: "Veritabanı migrasyon ve seed aracı",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(migrate, seed)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Migrasyonları çalıştır")
	cmd.Flags().BoolVar(&seed, "seed", false, "Demo verilerini oluştur")
	return cmd
}

func run(migrate, seed bool) error {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadEnv()
	db, err := configsdatabase.InitDB(cfg)
	if err != nil {
		return err
	}
	defer configsdatabase.CloseDB(db)

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	if err := database.Initialize(db, migrate, seed); err != nil {
		return err
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
	return nil
}
