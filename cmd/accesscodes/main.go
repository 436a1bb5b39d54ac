package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/agpcoach/agp/internal/accesscodes"
	"github.com/agpcoach/agp/internal/config"
	"github.com/agpcoach/agp/internal/db"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	list := flag.Bool("list", false, "list existing access codes instead of generating new ones")
	count := flag.Int("count", 1, "number of access codes to generate")
	maxUses := flag.Int("max-uses", 1, "how many sign-ups each code allows")
	expiresInDays := flag.Int("expires-in-days", 0, "code validity in days (0 for no expiry)")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		ConnString: cfg.PostgresURL,
		MaxConns:   2,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	repo := accesscodes.NewRepo(dbPool)

	if *list {
		if err := printCodes(ctx, repo); err != nil {
			log.Fatalf("list access codes: %s", err)
		}
		return
	}

	if *count < 1 || *maxUses < 1 {
		log.Fatalln("count and max-uses must be positive")
	}

	now := time.Now().UTC()
	var expiresAt *time.Time
	if *expiresInDays > 0 {
		t := now.AddDate(0, 0, *expiresInDays)
		expiresAt = &t
	}

	for i := 0; i < *count; i++ {
		code, err := accesscodes.Generate()
		if err != nil {
			log.Fatalf("generate access code: %s", err)
		}
		if err := repo.Add(ctx, accesscodes.AccessCode{
			Code:      code,
			MaxUses:   *maxUses,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		}); err != nil {
			log.Fatalf("store access code: %s", err)
		}
		fmt.Println(code)
	}
}

func printCodes(ctx context.Context, repo *accesscodes.Repo) error {
	codes, err := repo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tUSED\tMAX\tEXPIRES\tUSABLE")
	for _, c := range codes {
		expires := "-"
		if c.ExpiresAt != nil {
			expires = c.ExpiresAt.Format(time.DateOnly)
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%t\n", c.Code, c.UsedCount, c.MaxUses, expires, c.Usable(now))
	}
	return w.Flush()
}
