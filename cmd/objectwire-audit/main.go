// objectwire-audit runs read-only analytics reports over an audit.Store
// sqlite file by attaching it into an in-memory DuckDB instance. It never
// touches a live Bridge; it only reads what audit.Store already recorded.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/marcboeker/go-duckdb"
)

func main() {
	dbPath := flag.String("db", "objectwire-audit.db", "path to the audit.Store sqlite file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: objectwire-audit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Reports on the audit trail written by audit.Store: exceptions per\n")
		fmt.Fprintf(os.Stderr, "session, and outstanding handles per session (created minus dropped).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if _, err := os.Stat(*dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "cannot find audit database %s: %v\n", *dbPath, err)
		os.Exit(1)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening duckdb: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	attach := fmt.Sprintf("ATTACH '%s' AS audit_db (TYPE sqlite)", *dbPath)
	if _, err := db.Exec(attach); err != nil {
		fmt.Fprintf(os.Stderr, "attaching %s: %v\n", *dbPath, err)
		os.Exit(1)
	}

	if err := reportExceptionsPerSession(db); err != nil {
		fmt.Fprintf(os.Stderr, "exceptions-per-session report: %v\n", err)
		os.Exit(1)
	}
	if err := reportHandleHighWaterMark(db); err != nil {
		fmt.Fprintf(os.Stderr, "handle high-water mark report: %v\n", err)
		os.Exit(1)
	}
}

func reportExceptionsPerSession(db *sql.DB) error {
	rows, err := db.Query(`
		SELECT session, count(*) AS n
		FROM audit_db.events
		WHERE kind IN ('host_exception', 'remote_exception')
		GROUP BY session
		ORDER BY n DESC
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	fmt.Println("Exceptions per session:")
	for rows.Next() {
		var session string
		var n int64
		if err := rows.Scan(&session, &n); err != nil {
			return err
		}
		fmt.Printf("  %-24s %d\n", session, n)
	}
	return rows.Err()
}

func reportHandleHighWaterMark(db *sql.DB) error {
	rows, err := db.Query(`
		SELECT session,
		       sum(CASE WHEN kind = 'handle_created' THEN 1 ELSE 0 END) AS created,
		       sum(CASE WHEN kind = 'handle_dropped' THEN 1 ELSE 0 END) AS dropped
		FROM audit_db.events
		GROUP BY session
		ORDER BY created DESC
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	fmt.Println("\nOutstanding handles per session (created - dropped):")
	for rows.Next() {
		var session string
		var created, dropped int64
		if err := rows.Scan(&session, &created, &dropped); err != nil {
			return err
		}
		fmt.Printf("  %-24s %d\n", session, created-dropped)
	}
	return rows.Err()
}
