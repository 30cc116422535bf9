package main

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	appfs "github.com/malcolm008/RFID-system/fs"
	"github.com/malcolm008/RFID-system/storage/database"
)

func (cli *commandLine) migrate(args []string) error {
	db, err := sql.Open("pgx", database.DSN(cli.conf))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(appfs.FS)
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}

	var arguments []string
	if len(args) > 1 {
		arguments = args[1:]
	}
	return goose.Run(args[0], db, "migrations", arguments...)
}
