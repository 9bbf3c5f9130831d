package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/db"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/gateway"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/parser"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/spinner"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/styles"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/table"
)

func (a *App) handleQuery() {
	var formatName string
	configPath, rest := a.parseFlags("query", func(fs *flag.FlagSet) {
		fs.StringVar(&formatName, "format", "table", "output format for reads: table, csv, tsv, json or markdown")
	})
	if len(rest) < 1 {
		printError("Usage: sqlgate query [-config <file>] [-format <format>] <sql>")
		os.Exit(1)
	}
	statement := strings.Join(rest, " ")

	format, err := table.ParseExportFormat(formatName)
	if err != nil {
		printError("%v", err)
		os.Exit(1)
	}

	_, logger, factory := bootstrap(configPath, io.Discard)
	defer logger.Sync()

	service := gateway.New(factory, logger)

	start := time.Now()
	stop := spinner.Start(os.Stderr)
	result, err := service.Run(context.Background(), statement)
	stop()
	elapsed := time.Since(start)

	if err != nil {
		var failure *gateway.Failure
		if errors.As(err, &failure) {
			printError("%s", failure.Report.Message)
		} else {
			printError("Could not execute query: %v", err)
		}
		os.Exit(1)
	}

	if result.Kind == db.KindAck {
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ %s in %.2fs", gateway.StatusExecuted, elapsed.Seconds())))
		fmt.Println(parser.HighlightSQL(statement))
		return
	}

	if format == table.ExportTable {
		fmt.Println(table.Render(result, elapsed, table.DefaultCellWidth))
		return
	}

	out, err := table.Export(result, format)
	if err != nil {
		printError("Could not format result: %v", err)
		os.Exit(1)
	}
	fmt.Print(out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Println()
	}
}
