package sqlscript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ErrStatement wraps the failure of one statement; the message carries
// its line number and a shortened copy of its text.
var ErrStatement = errors.New("sqlscript: statement failed")

// Result summarises a successful run.
type Result struct {
	Statements   int
	RowsAffected int64
	Duration     time.Duration
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	Logger *zap.Logger
	Split  []Option
	// NoTransaction executes statements one by one in autocommit mode,
	// for DDL that cannot run inside a transaction.
	NoTransaction bool
}

// RunnerOption mutates RunnerOptions.
type RunnerOption func(*RunnerOptions)

// WithLogger logs each statement at debug level. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("sqlscript: WithLogger(nil)")
	}
	return func(o *RunnerOptions) { o.Logger = l }
}

// WithSplitOptions passes lexer options to Split.
func WithSplitOptions(opts ...Option) RunnerOption {
	return func(o *RunnerOptions) { o.Split = append(o.Split, opts...) }
}

// WithoutTransaction runs in autocommit mode.
func WithoutTransaction() RunnerOption {
	return func(o *RunnerOptions) { o.NoTransaction = true }
}

// Runner executes scripts against a database.
type Runner struct {
	db   *sqlx.DB
	opts RunnerOptions
}

// NewRunner wraps db.
func NewRunner(db *sqlx.DB, opts ...RunnerOption) *Runner {
	o := RunnerOptions{Logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	return &Runner{db: db, opts: o}
}

// Exec splits script and runs every statement. In transactional mode
// (the default) the first failure rolls everything back.
func (r *Runner) Exec(ctx context.Context, script string) (Result, error) {
	start := time.Now()
	stmts, err := Statements(script, r.opts.Split...)
	if err != nil {
		return Result{}, err
	}
	log := r.opts.Logger.With(zap.Int("statements", len(stmts)))

	if r.opts.NoTransaction {
		res, err := r.run(ctx, r.db, stmts)
		res.Duration = time.Since(start)
		return res, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("sqlscript: begin: %w", err)
	}
	res, err := r.run(ctx, tx, stmts)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback failed", zap.Error(rbErr))
		}
		log.Warn("script rolled back", zap.Error(err))
		return Result{}, err
	}
	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("sqlscript: commit: %w", err)
	}
	res.Duration = time.Since(start)
	log.Info("script applied", zap.Int64("rows", res.RowsAffected), zap.Duration("took", res.Duration))
	return res, nil
}

// ExecFile runs the script stored at path.
func (r *Runner) ExecFile(ctx context.Context, path string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return r.Exec(ctx, string(b))
}

func (r *Runner) run(ctx context.Context, ex sqlx.ExecerContext, stmts []Statement) (Result, error) {
	var res Result
	for _, s := range stmts {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		r.opts.Logger.Debug("exec", zap.Int("line", s.Line), zap.String("sql", abbreviate(s.SQL, 120)))
		out, err := ex.ExecContext(ctx, s.SQL)
		if err != nil {
			return res, fmt.Errorf("%w at line %d (%s): %w", ErrStatement, s.Line, abbreviate(s.SQL, 60), err)
		}
		if n, err := out.RowsAffected(); err == nil {
			res.RowsAffected += n
		}
		res.Statements++
	}
	return res, nil
}

func abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
