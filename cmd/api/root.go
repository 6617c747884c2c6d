package main

import (
	"fmt"

	"pet-clinic/internal/config"
	"pet-clinic/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	// configFile es el flag --config.
	configFile string

	cfg *config.Config
	log *logger.ZapLogger
)

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Pet clinic backend",
	Long: `Backend de la clínica veterinaria. Sin subcomando levanta el servidor HTTP;
los subcomandos cubren el alta de cuentas de staff y las tareas periódicas.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		l, err := logger.New(logger.Options{
			Level:  logger.ParseLevel(c.Log.Level),
			Format: logger.ParseFormat(c.Log.Format),
			App:    c.AppName,
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		cfg, log = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml); env PETCLINIC_* overrides it")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(remindersCmd)
}
