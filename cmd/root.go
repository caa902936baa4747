package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/yext/minihttpd/common"
	"github.com/yext/minihttpd/config"
	"github.com/yext/minihttpd/home"
	"github.com/yext/minihttpd/minihttpd"
	"github.com/yext/minihttpd/ui/terminal"
	"github.com/yext/minihttpd/updates"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var client *minihttpd.Client

var settings = config.New()

var checkUpdateChan chan interface{}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   common.Name,
	Short: "A minimal single-threaded HTTP server",
	Long: `minihttpd serves a small site over raw TCP, one connection at a time.
Pages are plain text templates with {{ key }} placeholders.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dirConfig, err := home.NewConfiguration(minihttpdHome)
		if err != nil {
			return errors.WithStack(err)
		}

		prefix := fmt.Sprintf("%s %s", common.Name, cmd.Name())
		if redirectLogs {
			log.SetOutput(os.Stdout)
		} else {
			log.SetOutput(&lumberjack.Logger{
				Filename:   dirConfig.ToolLog(),
				MaxSize:    50, // megabytes
				MaxBackups: 30,
				MaxAge:     1, //days
			})
		}
		log.SetPrefix(fmt.Sprintf("%s > ", prefix))
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

		log.Printf("=== %v v%v ===\n", common.Name, common.Version)
		log.Printf("Args: %v\n", os.Args)

		if configPath == "" {
			configPath, err = config.GetConfigPathFromWorkingDirectory(dirConfig.Dir)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		if configPath != "" {
			log.Printf("Using config file: %v\n", configPath)
			if err := config.ReadFile(settings, configPath); err != nil {
				return errors.WithStack(err)
			}
		}
		cfg, err := config.Load(settings)
		if err != nil {
			return errors.WithStack(err)
		}

		client = minihttpd.NewClient(cfg, dirConfig)
		client.ConfigFile = configPath
		client.Logger = log.New(log.Writer(), log.Prefix(), log.Flags())
		client.UI = &terminal.Provider{
			Out:   os.Stdout,
			Plain: plainOutput,
		}

		switch cmd.Name() {
		case "serve", "log", "version":
		default:
			checkUpdateChan = make(chan interface{})
			go checkUpdateAvailable(dirConfig.CacheDir, checkUpdateChan)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if checkUpdateChan != nil {
			updateAvailable, ok := (<-checkUpdateChan).(bool)
			if ok && updateAvailable {
				latestVersion := (<-checkUpdateChan).(string)
				fmt.Printf("A new version of %v is available (%v), update with:\n\tgo get -u github.com/yext/minihttpd\n", common.Name, latestVersion)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

var configPath string
var redirectLogs bool
var plainOutput bool
var minihttpdHome string

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Use configuration file at `PATH`")
	RootCmd.PersistentFlags().BoolVar(&redirectLogs, "redirect_logs", false, "Redirect diagnostic logs to the console")
	RootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Print tables as tab separated text")
	RootCmd.PersistentFlags().StringVar(&minihttpdHome, "minihttpd_home", "", "")
	err := RootCmd.PersistentFlags().MarkHidden("redirect_logs")
	if err != nil {
		panic(err)
	}
	err = RootCmd.PersistentFlags().MarkHidden("minihttpd_home")
	if err != nil {
		panic(err)
	}
}

func checkUpdateAvailable(cacheDir string, checkUpdateChan chan interface{}) {
	defer close(checkUpdateChan)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	checker := updates.Checker{
		Owner:     "yext",
		Repo:      common.Name,
		CachePath: cacheDir,
	}
	updateAvailable, latestVersion, err := checker.UpdateAvailable(ctx, common.Version)
	if err != nil {
		log.Println("Error checking for updates:", err)
		return
	}

	checkUpdateChan <- updateAvailable
	if updateAvailable {
		checkUpdateChan <- latestVersion
	}
}
