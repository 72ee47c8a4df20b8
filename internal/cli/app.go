package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/minilearn/internal/access"
	"github.com/dmitrijs2005/minilearn/internal/auth"
	"github.com/dmitrijs2005/minilearn/internal/catalog"
	"github.com/dmitrijs2005/minilearn/internal/config"
	"github.com/dmitrijs2005/minilearn/internal/filex"
	"github.com/dmitrijs2005/minilearn/internal/logging"
	"github.com/dmitrijs2005/minilearn/internal/progress"
	"github.com/dmitrijs2005/minilearn/internal/storage"
)

const dbFileName = "learning.db"

// sessionService is the part of *auth.SessionStore the CLI uses.
type sessionService interface {
	Login(ctx context.Context, email, password string) (*auth.User, error)
	Signup(ctx context.Context, in auth.SignupInput) (*auth.User, error)
	CurrentUser(ctx context.Context) (*auth.User, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
}

// progressService is the part of *progress.Store the CLI uses.
type progressService interface {
	Completed(ctx context.Context) ([]string, error)
	MarkComplete(ctx context.Context, courseID string) error
	IsCompleted(ctx context.Context, courseID string) (bool, error)
	Reset(ctx context.Context) error
	Stats(ctx context.Context, total int) (progress.Stats, error)
}

type App struct {
	store      storage.Store
	sessions   sessionService
	progress   progressService
	policy     *access.Policy
	catalog    *catalog.Catalog
	logger     logging.Logger
	loginDelay time.Duration
	reader     *bufio.Reader
	out        io.Writer
	closeFn    func() error
}

// NewApp opens the configured store and builds the services on top of it.
// Logs go to stderr at the configured level.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	courses := catalog.Default()
	if c.CatalogPath != "" {
		loaded, err := catalog.Load(c.CatalogPath)
		if err != nil {
			return nil, err
		}
		courses = loaded
	}

	store, closeFn, err := openStore(ctx, c)
	if err != nil {
		logger.Error(ctx, "error opening storage", "storage", c.Storage, "error", err)
		return nil, err
	}
	logger.Debug(ctx, "storage opened", "storage", c.Storage)

	a := newApp(store, courses, logger, bufio.NewReader(os.Stdin), os.Stdout)
	a.loginDelay = c.LoginDelay
	a.closeFn = closeFn
	return a, nil
}

// newApp assembles an App from already opened parts.
func newApp(store storage.Store, courses *catalog.Catalog, logger logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	sessions := auth.NewSessionStore(store, nil, logger)
	prog := progress.NewStore(store, logger)
	return &App{
		store:    store,
		sessions: sessions,
		progress: prog,
		policy:   access.NewPolicy(sessions, prog),
		catalog:  courses,
		logger:   logger,
		reader:   reader,
		out:      out,
		closeFn:  func() error { return nil },
	}
}

func openStore(ctx context.Context, c *config.Config) (storage.Store, func() error, error) {
	switch c.Storage {
	case config.StorageMemory:
		return storage.NewMemoryStore(), func() error { return nil }, nil

	case config.StorageRedis:
		client, err := storage.OpenRedis(ctx, c.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(client, c.RedisPrefix), client.Close, nil

	default:
		dir, err := filex.EnsureDir(c.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to prepare data dir: %w", err)
		}
		db, err := storage.OpenSQLite(ctx, filepath.Join(dir, dbFileName))
		if err != nil {
			return nil, nil, err
		}
		return storage.NewSQLiteStore(db), db.Close, nil
	}
}

// Run shows the landing screen and blocks in the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closeFn(); err != nil {
			a.logger.Warn(ctx, "error closing storage", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	ok, err := a.sessions.IsAuthenticated(ctx)
	if err != nil {
		a.logger.Error(ctx, "error reading session", "error", err)
		return false
	}
	return ok
}
