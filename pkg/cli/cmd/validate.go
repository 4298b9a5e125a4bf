package cmd

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/outlierai/outlier/pkg/config"
	"github.com/outlierai/outlier/pkg/loggers"
	"github.com/outlierai/outlier/pkg/training"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config file]",
	Short: "Validate a run config and show the selected training logger",
	Example: `
outlier validate
outlier validate runs/bottle-patchcore.yaml
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath := "config.yaml"
		if len(args) == 1 {
			configPath = args[0]
		}

		v := viper.New()
		runConfig, err := config.LoadRunConfiguration(v, configPath)
		if err != nil {
			fmt.Printf("%s: failed to load run config '%s': %s\n", aurora.Red("error"), aurora.Blue(configPath), err.Error())
			os.Exit(1)
		}

		logger, err := training.LoadLogger(runConfig)
		if err != nil {
			fmt.Printf("%s: %s\n", aurora.Red("error"), err.Error())
			os.Exit(1)
		}

		if zapLogger := loggers.ZapLogger(); zapLogger != nil {
			zapLogger.Debug("validated run config",
				zap.String("config", configPath),
				zap.String("logger", logger.Name()),
			)
			defer zapLogger.Sync()
		}

		if logger == training.Disabled {
			fmt.Println(aurora.Yellow("training logging is disabled"))
			return
		}

		fmt.Println(aurora.Green(fmt.Sprintf("run config is valid, training logger: %s", logger.Name())))
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
