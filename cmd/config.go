package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "playwright-ai"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	verboseFlagName     = "verbose"
	driverFlagName      = "driver"
	parallelFlagName    = "parallel"
	headlessFlagName    = "headless"
	screenshotFlagName  = "screenshot"
	nameFlagName        = "name"
	noHelpersFlagName   = "no-helpers"
	noGotoFlagName      = "no-goto"
	modeFlagName        = "mode"
	jsonFlagName        = "json"
	interactiveFlagName = "interactive"
	providerFlagName    = "provider"
	modelFlagName       = "model"

	driverConfigKey     = "generate.driver"
	parallelConfigKey   = "generate.parallel"
	headlessConfigKey   = "generate.headless"
	screenshotConfigKey = "generate.screenshot"
	providerConfigKey   = "steps.provider"
	modelConfigKey      = "steps.model"

	defaultOutputDir  = "pages"
	defaultDriver     = "playwright"
	defaultParallel   = 2
	defaultHeadless   = true
	defaultScreenshot = false

	envPrefix = "PLAYWRIGHT_AI"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".playwright-ai.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(driverConfigKey, defaultDriver)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(headlessConfigKey, defaultHeadless)
	viper.SetDefault(screenshotConfigKey, defaultScreenshot)
	viper.SetDefault(providerConfigKey, "")
	viper.SetDefault(modelConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// configFile is the on-disk shape of playwright-ai.yaml. Only the
// generator section is decoded here; runtime keys go through viper.
type configFile struct {
	Generator m.ConfigOverlay `yaml:"generator"`
}

// loadGeneratorConfig merges the generator section of the config file
// over the built-in defaults. A missing file yields the defaults.
func loadGeneratorConfig() (m.Config, error) {
	base := m.DefaultConfig()

	raw, err := os.ReadFile(filepath.Join(configFolderPath, configFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}

	if err != nil {
		return m.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var file configFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return m.Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return m.Merge(base, file.Generator), nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
