package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dessert-catalog/internal/core/mealdb"
	"dessert-catalog/internal/core/recipe"
	"dessert-catalog/internal/infrastructure/config"
	"dessert-catalog/internal/pkg/common"

	"github.com/spf13/cobra"
)

// options 全域旗標
type options struct {
	baseURL string
	timeout time.Duration
	asJSON  bool
	verbose bool

	catalog *recipe.Service
	client  *mealdb.Client
}

// RootCmd 建立 desserts 指令
func RootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "desserts",
		Short:         "Browse dessert recipes from TheMealDB",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.client != nil {
				return opts.client.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", "", "override the TheMealDB API base URL")
	flags.DurationVar(&opts.timeout, "timeout", 0, "override the upstream request timeout (0 keeps the configured value)")
	flags.BoolVar(&opts.asJSON, "json", false, "print raw JSON instead of formatted text")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log upstream calls to stdout")

	root.AddCommand(
		listCmd(opts),
		showCmd(opts),
	)

	return root
}

// setup 載入設定並建立目錄服務
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("base-url") {
		if err := config.ValidateBaseURL(o.baseURL); err != nil {
			return err
		}
		cfg.MealDB.BaseURL = o.baseURL
	}
	if cmd.Flags().Changed("timeout") {
		if o.timeout < 0 {
			return fmt.Errorf("timeout must not be negative")
		}
		cfg.MealDB.Timeout = o.timeout
	}

	if o.verbose {
		if err := common.InitLogger(common.LoggerOptions{Level: "debug"}); err != nil {
			return err
		}
	}

	o.client = mealdb.NewClient(cfg.MealDB)
	o.catalog = recipe.NewService(o.client)
	return nil
}

// Execute 執行 CLI，回傳 process exit code
func Execute() int {
	// Ctrl-C 取消進行中的請求
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := RootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), formatError(err))
		return 1
	}
	return 0
}

// formatError 附上錯誤類型，方便使用者判斷是否重試
func formatError(err error) string {
	if kind := mealdb.KindOf(err); kind != "" {
		return errorStyle.Render(fmt.Sprintf("Error [%s]:", kind)) + " " + err.Error()
	}
	return errorStyle.Render("Error:") + " " + err.Error()
}
