package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caregrid/intake/internal/catalog"
	"github.com/caregrid/intake/internal/cli"
	"github.com/caregrid/intake/internal/clock"
	"github.com/caregrid/intake/internal/recovery"
	"github.com/caregrid/intake/internal/repository"
	"github.com/caregrid/intake/internal/session"
	"github.com/caregrid/intake/internal/sessionid"
	"github.com/caregrid/intake/internal/storage"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for development; a missing file is fine.
	_ = godotenv.Load()

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	codec := sessionid.New()
	repo := repository.NewSessionRepo(store, clock.System{})

	// Seed the codec with every persisted identifier so new sessions never
	// collide with resumable drafts.
	ids, err := repo.ListIDs()
	if err != nil {
		return fmt.Errorf("listing saved sessions: %w", err)
	}
	codec.RegisterKnownIDs(ids)

	sessions := session.New(repo, codec, clock.System{})
	flow := recovery.New(sessions, repo, codec)

	// Reopen whatever session the previous run left active, so commands
	// compose across invocations.
	if err := flow.Reopen(); err != nil {
		return fmt.Errorf("reopening session: %w", err)
	}

	milestones, err := catalog.Load(os.Getenv("INTAKE_CATALOG"))
	if err != nil {
		return fmt.Errorf("loading milestone catalog: %w", err)
	}

	app := &cli.App{
		Store:       sessions,
		Flow:        flow,
		Codec:       codec,
		Catalog:     milestones,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	runErr := cli.NewRootCmd(app).Execute()

	// Commands exit long before the debounce interval elapses; flush the
	// draft synchronously so the last edits reach storage.
	if err := sessions.Detach(); err != nil && runErr == nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return runErr
}

// openStore selects the durable backend: SQLite by default, one-file-per-key
// when INTAKE_BACKEND=file.
func openStore() (storage.Store, func(), error) {
	switch backend := os.Getenv("INTAKE_BACKEND"); backend {
	case "", "sqlite":
		path := os.Getenv("INTAKE_DB")
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("finding home directory: %w", err)
			}
			path = filepath.Join(home, ".intake", "intake.db")
		}
		db, err := storage.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return db, func() { _ = db.Close() }, nil

	case "file":
		dir := os.Getenv("INTAKE_DATA")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("finding home directory: %w", err)
			}
			dir = filepath.Join(home, ".intake", "data")
		}
		fs, err := storage.NewFileStore(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening data directory: %w", err)
		}
		return fs, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown INTAKE_BACKEND %q (sqlite|file)", backend)
	}
}
