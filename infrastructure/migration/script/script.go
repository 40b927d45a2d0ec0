package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/migrations"
	"github.com/vfg2006/ads-sync-api/infrastructure/database/sqldb"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-sync-api/pkg/log"
)

type scriptFlags struct {
	Verbose  bool
	TokenTTL time.Duration
	UserID   string
	Role     int
}

var flags scriptFlags

var rootCmd = &cobra.Command{
	Use:   "ads-sync-script",
	Short: "Tarefas operacionais do ads-sync-api",
	Long: `Ferramenta operacional do ads-sync-api.

Usa as mesmas variáveis de ambiente (.env) da API para encontrar o banco.

Comandos:
  migrate        Aplica as migrações pendentes
  import-links   Importa vínculos conta -> cliente a partir de um CSV
  backfill-links Preenche client_id nas métricas já gravadas
  issue-token    Emite um JWT para chamadas de serviço`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		if flags.Verbose {
			level = "debug"
		}
		log.Setup(level)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica as migrações pendentes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnection(cmd.Context(), func(ctx context.Context, _ *config.Config, conn *sqldb.Connection) error {
			before, err := migrations.CurrentVersion(ctx, conn)
			if err != nil {
				return err
			}

			if err := migrations.Run(ctx, conn); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"from": before,
				"to":   migrations.LatestVersion(),
			}).Info("Migrações aplicadas")
			return nil
		})
	},
}

var importLinksCmd = &cobra.Command{
	Use:   "import-links <arquivo.csv>",
	Short: "Importa vínculos conta -> cliente (account_id,client_id)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("erro ao abrir o arquivo: %w", err)
		}
		defer file.Close()

		return withConnection(cmd.Context(), func(ctx context.Context, _ *config.Config, conn *sqldb.Connection) error {
			startTime := time.Now()
			result, err := importClientLinks(ctx, repository.NewClientLinkRepository(conn), file)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"imported": result.Imported,
				"skipped":  result.Skipped,
				"elapsed":  time.Since(startTime).String(),
			}).Info("Importação de vínculos concluída")
			return nil
		})
	},
}

var backfillLinksCmd = &cobra.Command{
	Use:   "backfill-links",
	Short: "Preenche client_id nas métricas que ainda não têm cliente",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConnection(cmd.Context(), func(ctx context.Context, cfg *config.Config, conn *sqldb.Connection) error {
			updated, err := repository.NewMetricRepository(conn, cfg).BackfillClientLinks(ctx)
			if err != nil {
				return err
			}

			logrus.WithField("updated", updated).Info("Backfill de vínculos concluído")
			return nil
		})
	},
}

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Emite um JWT assinado com AUTH_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		if err := config.LoadSecrets(cmd.Context(), cfg, config.NewRenderClient(cfg)); err != nil {
			return err
		}
		if err := cfg.ValidateAuthSecret(); err != nil {
			return err
		}

		token, err := authenticating.NewService(cfg).IssueToken(flags.UserID, flags.Role, flags.TokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Logs em nível debug")

	issueTokenCmd.Flags().DurationVar(&flags.TokenTTL, "ttl", 24*time.Hour, "Validade do token")
	issueTokenCmd.Flags().StringVar(&flags.UserID, "user", "", "user_id do token (obrigatório para role cliente)")
	issueTokenCmd.Flags().IntVar(&flags.Role, "role", authenticating.RoleService, "1=admin, 2=serviço, 3=cliente")

	rootCmd.AddCommand(migrateCmd, importLinksCmd, backfillLinksCmd, issueTokenCmd)
}

// withConnection carrega a configuração, abre o banco e garante o schema antes de fn
func withConnection(ctx context.Context, fn func(context.Context, *config.Config, *sqldb.Connection) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	logrus.WithField("driver", cfg.Database.Driver).Info("Conectando ao banco de dados...")
	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}
	defer conn.Close()

	if err := migrations.Run(ctx, conn); err != nil {
		return err
	}

	return fn(ctx, cfg, conn)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
