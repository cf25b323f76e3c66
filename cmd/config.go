package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	consts "github.com/LXGIC-Studios/cookie-check/internal/constants"
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Scan ScanRuntimeConfig
}

// ScanRuntimeConfig consolidates flag-driven settings for the scan.
type ScanRuntimeConfig struct {
	TimeoutMillis   int
	FollowRedirects bool
	NoRedirects     bool
	MaxRedirects    int
	JSONOutput      bool
	CIMode          bool
	MinGrade        string
	Headers         []string
	Verbose         bool
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Scan: ScanRuntimeConfig{
			TimeoutMillis:   consts.DefaultTimeoutMillis,
			FollowRedirects: true,
			MaxRedirects:    consts.DefaultMaxRedirects,
			MinGrade:        consts.DefaultMinGrade,
		},
	}
}

// applyConfigDefaults merges config file defaults into the runtime config
// when the user did not explicitly override the corresponding flag.
func applyConfigDefaults(flags *pflag.FlagSet) {
	if viper.IsSet("defaults.timeout_ms") {
		applyIntDefault(flags, "timeout", viper.GetInt("defaults.timeout_ms"), func(v int) {
			cliConfig.Scan.TimeoutMillis = v
		})
	}

	if viper.IsSet("defaults.min_grade") {
		applyStringDefault(flags, "min-grade", viper.GetString("defaults.min_grade"), func(v string) {
			cliConfig.Scan.MinGrade = v
		})
	}

	if viper.IsSet("defaults.follow_redirects") {
		applyBoolDefault(flags, "follow-redirects", viper.GetBool("defaults.follow_redirects"), func(v bool) {
			cliConfig.Scan.FollowRedirects = v
		})
	}

	if viper.IsSet("defaults.max_redirects") {
		applyIntDefault(flags, "max-redirects", viper.GetInt("defaults.max_redirects"), func(v int) {
			cliConfig.Scan.MaxRedirects = v
		})
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyStringDefault(flags *pflag.FlagSet, name string, value string, setter func(string)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
