// Command assetlib is the thin CLI front-end around internal/bundler,
// out of core scope per spec.md section 1 ("the command-line front-end
// and configuration loader ... specified only by the interfaces the core
// consumes"). It exists only so the module is runnable end to end; it
// imports cobra and viper the way cmd/ in philjestin-philtographer and
// standardbeagle-lci both do, and internal/bundler never imports back
// into this package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "assetlib",
	Short: "Dependency-graph-driven asset bundler",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(".")
			viper.SetConfigName("assetlib")
		}
		viper.SetEnvPrefix("ASSETLIB")
		viper.AutomaticEnv()
		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./assetlib.yaml)")
	rootCmd.PersistentFlags().String("project-root", ".", "absolute base for all relative paths")
	rootCmd.PersistentFlags().Bool("dev", false, "enable dev mode: freshness caches and the non-minified runtime shim")

	_ = viper.BindPFlag("projectRoot", rootCmd.PersistentFlags().Lookup("project-root"))
	_ = viper.BindPFlag("isDev", rootCmd.PersistentFlags().Lookup("dev"))

	rootCmd.AddCommand(buildCmd)
}

func main() {
	Execute()
}
