package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const logsDirectory = "logs"

const VendorName = "six78"
const ApplicationName = "arbiter-client"

const DefaultDialTimeout = 10 * time.Second

const UserColor = lipgloss.Color("#7D56F4")
const ForegroundShadeColor = lipgloss.Color("#555555")

var address string
var playerName string
var debug bool
var logDirectory string
var dialTimeout = DefaultDialTimeout

var Logger *zap.Logger
var LogFilePath string

func RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&debug, "debug", false, "Show debug info and log to stderr")
	flags.StringVar(&logDirectory, "log-dir", "", "Directory for log files (default: user config folder)")
	flags.DurationVar(&dialTimeout, "dial-timeout", DefaultDialTimeout, "Timeout for connecting to the arbiter")
}

// SetArguments stores the positional arguments. It reports false when
// fewer than two were given.
func SetArguments(args []string) bool {
	if len(args) < 2 {
		return false
	}
	address = args[0]
	playerName = args[1]
	return true
}

func SetupLogger() error {
	var c zap.Config
	if debug {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
	}

	path, err := createLogFile()
	if err != nil {
		return err
	}

	LogFilePath = path
	c.OutputPaths = []string{LogFilePath}
	if debug {
		c.OutputPaths = append(c.OutputPaths, "stderr")
	}
	c.Development = false

	logger, err := c.Build()
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}
	Logger = logger
	return nil
}

func createLogFile() (string, error) {
	name := fmt.Sprintf("arbiter-client-%s.log", time.Now().UTC().Format(time.RFC3339))
	name = strings.Replace(name, ":", "-", -1)

	directory := logDirectory
	if directory == "" {
		configDirs := configdir.New(VendorName, ApplicationName)
		folders := configDirs.QueryFolders(configdir.Global)
		if len(folders) == 0 {
			return "", errors.New("no config folder available for logs")
		}
		directory = filepath.Join(folders[0].Path, logsDirectory)
	}

	path := filepath.Join(directory, name)
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return "", errors.Wrap(err, "failed to create logs directory")
	}

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create log file")
	}
	_ = file.Close()

	return path, nil
}

func Address() string {
	return address
}

func PlayerName() string {
	return playerName
}

func Debug() bool {
	return debug
}

func DialTimeout() time.Duration {
	return dialTimeout
}

func LogDirectory() string {
	return logDirectory
}
