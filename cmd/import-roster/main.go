// import-roster replaces the officer roster from an Excel spreadsheet.
//
// Usage:
//
//	import-roster [-force] <roster.xlsx>
//
// The spreadsheet's first sheet must carry "First Name", "Last Name" and
// "Job Title" columns. The previous roster is deleted in full before the
// new rows are inserted; officer IDs are regenerated, so existing feedback
// is orphaned. The tool refuses to run while feedback rows exist unless
// -force is given. Run it only as an exclusive maintenance operation, never
// alongside live traffic.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"police-feedback-server/config"
	"police-feedback-server/database"
	"police-feedback-server/roster"
)

func main() {
	force := flag.Bool("force", false, "reseed even when feedback rows exist (orphans them)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-force] <roster.xlsx>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.Load()

	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	count, err := roster.FeedbackCount(database.DB)
	if err != nil {
		log.Fatal("Failed to check feedback table:", err)
	}
	if count > 0 && !*force {
		log.Fatalf("⚠️  %d feedback rows exist; reseeding would orphan them. Re-run with -force to proceed.", count)
	}

	log.Printf("Reading Excel file: %s", filename)
	rows, err := roster.ReadWorkbook(filename)
	if err != nil {
		log.Fatal("Failed to read workbook:", err)
	}
	log.Printf("Found %d rows in the Excel file.", len(rows))

	report, err := roster.Replace(database.DB, rows)
	if err != nil {
		log.Fatal("Import failed, no changes were made:", err)
	}

	log.Printf("✅ Successfully imported %d officers (%d rows found, %d skipped).",
		report.Imported, report.Found, report.Skipped)
}
