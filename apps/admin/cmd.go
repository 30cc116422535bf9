package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/malcolm008/RFID-system/core"
	"github.com/malcolm008/RFID-system/storage/database"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf *core.Config
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  createdb                            - create the application database and user if missing")
	fmt.Println("  migrate <up|up-by-one|down|redo|status|version> - run database migrations")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	switch args[1] {
	case "createdb":
		return database.CreateIfNotExist(cli.conf)
	case "migrate":
		if err := migrateCmd.Parse(args[2:]); err != nil {
			return err
		}
		if migrateCmd.NArg() == 0 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(migrateCmd.Args())
	default:
		cli.printUsage()
		return errHelp
	}
}
