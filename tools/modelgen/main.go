package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Regenerates the journal table models after the migrations have been
// applied to the target database.
func main() {
	var dsn, out string
	var table string
	flag.StringVar(&dsn, "dsn", os.Getenv("BRIDGE_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.StringVar(&table, "table", "bridge_observations", "table to generate a model for")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or BRIDGE_DB_DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext,
	})
	g.UseDB(db)
	g.GenerateModel(table)
	g.Execute()

	fmt.Printf("generated model for %s at %s\n", table, out)
}
