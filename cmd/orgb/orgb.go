// Command orgb allows performing basic operations on OpenRGB controllers
// over the network
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/goorgb/goorgb"
	"github.com/goorgb/goorgb/internal/env"
)

var (
	client *goorgb.Client

	flagServer   string
	flagName     string
	flagLogLevel string

	logger = logrus.New()
	app    = &cobra.Command{
		Use: `orgb`,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			setLogger()
		},
	}

	cmdGenerateBashComp = &cobra.Command{
		Use:   `bashcomp <filename>`,
		Short: "generate bash completion at <file>",
		Run:   generateBashComp,
	}

	cmdGenerateDocs = &cobra.Command{
		Use:   `docs <path>`,
		Short: "generate markdown documentation at <path>",
		Run:   generateDocs,
	}
)

func init() {
	goorgb.SetLogger(logger)

	server := goorgb.DefaultAddr
	name := `orgb`
	if conf, err := env.LoadConfig(context.Background()); err == nil {
		if conf.Server != `` {
			server = conf.Server
		}
		if conf.ClientName != `` {
			name = conf.ClientName
		}
	}

	app.PersistentFlags().StringVarP(&flagServer, `server`, `s`, server, `OpenRGB SDK server address (host:port)`)
	app.PersistentFlags().StringVarP(&flagName, `name`, `n`, name, `client name announced to the server`)
	app.PersistentFlags().StringVarP(&flagLogLevel, `log-level`, `L`, `info`, `log level, one of: [debug,info,warn,error]`)

	app.AddCommand(cmdList)
	app.AddCommand(cmdGet)
	app.AddCommand(cmdColor)
	app.AddCommand(cmdProfiles)
	app.AddCommand(cmdProfile)
	app.AddCommand(cmdGenerateBashComp)
	app.AddCommand(cmdGenerateDocs)
}

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}

func setLogger() {
	level, err := logrus.ParseLevel(flagLogLevel)
	if err != nil {
		logger.WithField(`log-level`, flagLogLevel).Fatalln(`Unknown log level`)
	}
	logger.SetLevel(level)
}

func setupClient(c *cobra.Command, args []string) {
	var err error

	client, err = goorgb.ConnectTo(flagServer)
	if err != nil {
		logger.WithFields(logrus.Fields{
			`server`: flagServer,
			`error`:  err,
		}).Fatalln(`Failed connecting to OpenRGB server`)
	}

	if err = client.SetName(flagName); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed setting client name`)
	}
}

func closeClient(c *cobra.Command, args []string) {
	if err := client.Close(); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed closing client`)
	}
}

func generateBashComp(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing filename`)
	}

	f, err := os.Create(args[0])
	if err != nil {
		logger.WithFields(logrus.Fields{
			`filename`: args[0],
			`error`:    err,
		}).Fatalln(`Could not open file`)
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	_ = app.GenBashCompletion(buf)
	_, _ = buf.WriteTo(f)
}

func generateDocs(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing path`)
	}

	path := args[0]
	if path[len(path)-1] != os.PathSeparator {
		path += string(os.PathSeparator)
	}
	if err := doc.GenMarkdownTree(app, path); err != nil {
		logger.WithFields(logrus.Fields{
			`path`:  path,
			`error`: err,
		}).Fatalln(`Could not generate documentation`)
	}
}
