package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pjordaan/asset-lib/internal/bundler"
	"github.com/pjordaan/asset-lib/internal/config"
	"github.com/pjordaan/asset-lib/internal/iofs"
	"github.com/pjordaan/asset-lib/internal/logger"
	"github.com/pjordaan/asset-lib/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Resolve every configured entry point and asset, and write outputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := config.Options{
			ProjectRoot:  viper.GetString("projectRoot"),
			WebRoot:      viper.GetString("webRoot"),
			OutputDir:    viper.GetString("outputFolder"),
			SourceRoot:   viper.GetString("sourceRoot"),
			EntryPoints:  viper.GetStringSlice("entryPoints"),
			AssetFiles:   viper.GetStringSlice("assetFiles"),
			IncludePaths: viper.GetStringSlice("includePaths"),
			CacheDir:     viper.GetString("cacheDir"),
			IsDev:        viper.GetBool("isDev"),
			LogSink:      logger.NewPtermLog(),
		}
		if err := opts.Normalize(); err != nil {
			return err
		}

		// No concrete transpiler processors are registered here: spec.md
		// section 1 treats them as an external collaborator. A caller
		// embedding this module registers its own pipeline.Processor
		// implementations (TypeScript, Less, ...) before calling
		// bundler.New directly; the CLI ships only the identity pass
		// the pipeline always falls back to.
		driver := bundler.New(iofs.Real{}, opts, nil, pipeline.Events{})
		return driver.Run()
	},
}
