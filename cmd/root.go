package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "cookie-check [flags] URL",
	Short: "Audit the Set-Cookie headers of a URL against security best practices",
	Long: `cookie-check fetches a single HTTP(S) resource, parses every Set-Cookie
response header, and grades each cookie A-F against a fixed set of
security heuristics (HttpOnly, Secure, SameSite, Path, expiry,
__Secure-/__Host- prefix rules, value size).

Intended for developers and CI pipelines: with --ci the process exits
non-zero when any cookie grades below --min-grade.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".cookie-check")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()
		applyConfigDefaults(cmd.Flags())

		// init logger
		if cliConfig.Scan.Verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l.Sugar()
		} else {
			logger = zap.NewNop().Sugar()
		}

		return nil
	},
	RunE: runScan,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cookie-check.yaml)")
	rootCmd.PersistentFlags().BoolVar(&cliConfig.Scan.Verbose, "verbose", false, "enable verbose logging")

	flags := rootCmd.Flags()
	flags.BoolVar(&cliConfig.Scan.JSONOutput, "json", false, "emit the audit as a JSON document")
	flags.BoolVar(&cliConfig.Scan.CIMode, "ci", false, "exit non-zero when any cookie grades below --min-grade")
	flags.StringVar(&cliConfig.Scan.MinGrade, "min-grade", cliConfig.Scan.MinGrade, "minimum acceptable grade with --ci (A-F)")
	flags.BoolVar(&cliConfig.Scan.FollowRedirects, "follow-redirects", cliConfig.Scan.FollowRedirects, "follow 3xx redirects to the final resource")
	flags.BoolVar(&cliConfig.Scan.NoRedirects, "no-redirects", false, "audit the first response without following redirects")
	flags.IntVarP(&cliConfig.Scan.TimeoutMillis, "timeout", "t", cliConfig.Scan.TimeoutMillis, "request timeout in milliseconds")
	flags.IntVar(&cliConfig.Scan.MaxRedirects, "max-redirects", cliConfig.Scan.MaxRedirects, "maximum redirect hops to follow")
	flags.StringArrayVarP(&cliConfig.Scan.Headers, "header", "H", nil, `extra request header ("Name: Value", repeatable)`)

	// add subcommands
	rootCmd.AddCommand(versionCmd)
}
