package main

import (
	"fmt"
	"strings"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/styles"
)

func (a *App) handleHelp() {
	if len(a.args) == 0 {
		a.PrintGeneralHelp()
	} else {
		a.PrintCommandHelp(a.args[0])
	}
}

func (a *App) PrintGeneralHelp() {
	fmt.Println(styles.Title.Render("sqlgate - run SQL over HTTP against one encrypted backend"))
	fmt.Println(styles.Faint.Render("Reads return headers and rows, writes are committed and acknowledged."))
	fmt.Println()

	fmt.Println(styles.Title.Render("Usage"))
	fmt.Println("  sqlgate <command> [arguments]")
	fmt.Println()

	fmt.Println(styles.Title.Render("Commands"))
	fmt.Println("  serve       " + styles.Faint.Render("Start the HTTP gateway (default)"))
	fmt.Println("  query       " + styles.Faint.Render("Run one statement and print the outcome (alias: run)"))
	fmt.Println("  version     " + styles.Faint.Render("Print the build version"))
	fmt.Println("  help        " + styles.Faint.Render("Show help for sqlgate or a specific command"))
	fmt.Println()

	fmt.Println(styles.Title.Render("Environment"))
	fmt.Println("  MYSQL_HOST MYSQL_PORT MYSQL_USER MYSQL_PASSWORD MYSQL_DATABASE")
	fmt.Println("  " + styles.Faint.Render("Any key may also be set as SQLGATE_<SECTION>_<KEY>, e.g. SQLGATE_SERVER_ADDR"))
	fmt.Println()

	fmt.Println(styles.Title.Render("Examples"))
	fmt.Println("  sqlgate serve -config /etc/sqlgate/config.yaml")
	fmt.Println("  sqlgate query \"SELECT id, name FROM users LIMIT 5\"")
	fmt.Println("  curl 'http://localhost:8000/sqlquery/?sqlquery=SELECT%201'")
}

func (a *App) PrintCommandHelp(command string) {
	section := func(title string) {
		fmt.Println(styles.Title.Render(title))
	}

	switch strings.ToLower(command) {
	case "serve":
		section("Command: serve")
		fmt.Println(styles.Faint.Render("Serve GET /sqlquery/?sqlquery=<statement> until interrupted."))
		fmt.Println()
		section("Usage")
		fmt.Println("  sqlgate serve [-config <file>]")
		fmt.Println()
		section("Description")
		fmt.Println("  - Every request opens its own TLS connection and closes it afterwards.")
		fmt.Println("  - Backend failures answer 500 with {\"detail\": \"<Backend> error: <message>\"}.")
		fmt.Println("  - /healthz reports liveness, /metrics exposes Prometheus metrics when enabled.")

	case "query", "run":
		section("Command: query")
		fmt.Println(styles.Faint.Render("Run one statement with the server configuration and print the outcome."))
		fmt.Println()
		section("Usage")
		fmt.Println("  sqlgate query [-config <file>] [-format table|csv|tsv|json|markdown] <sql>")
		fmt.Println()
		section("Description")
		fmt.Println("  - Reads are printed as a table unless -format picks csv, tsv, json or markdown.")
		fmt.Println("  - Writes are committed and the statement is echoed back.")
		fmt.Println("  - Exits with status 1 when the backend reports an error.")
		fmt.Println()
		section("Examples")
		fmt.Println("  sqlgate query \"SELECT 1 AS x\"")
		fmt.Println("  sqlgate query -format csv \"SELECT * FROM orders\" > orders.csv")
		fmt.Println("  sqlgate query \"UPDATE users SET active = 0 WHERE id = 7\"")

	case "version":
		section("Command: version")
		fmt.Println("  sqlgate version")

	default:
		printError("Unknown command: %s", command)
		a.PrintGeneralHelp()
	}
}
