package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tasktree/internal/adapter/console"
	appservice "tasktree/internal/app/service"
	"tasktree/internal/config"
	"tasktree/pkg/translator"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "tasktree",
		Short:   "Hierarchical task manager with undo/redo and urgent queues",
		Version: Version,
		RunE:    run,
	}

	rootCmd.Flags().String("lang", "", "interface language (en, es); overrides APP_LANG")
	rootCmd.Flags().Bool("no-clear", false, "do not clear the screen between menus")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.AppLang = lang
	}
	noClear, _ := cmd.Flags().GetBool("no-clear")

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageEs},
	})

	manager := appservice.NewTaskManager(logger)
	ui := console.New(manager, cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
		Lang:        cfg.AppLang,
		DateFormat:  cfg.DateFormat,
		ClearScreen: !noClear,
	})

	logger.Info("starting console", zap.String("lang", cfg.AppLang))
	return ui.Run()
}
