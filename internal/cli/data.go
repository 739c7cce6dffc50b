package cli

import (
	"errors"
	"sort"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvkit/files"
	"github.com/katalvlaran/lvkit/sqlscript"
)

var errNoDSN = errors.New("no database: pass --dsn or set LVKIT_DATABASE_URL")

func sqlCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sql",
		Short: "Split and run SQL scripts",
	}

	var postgres, keepComments bool
	splitOpts := func() []sqlscript.Option {
		var opts []sqlscript.Option
		if postgres {
			opts = append(opts, sqlscript.PostgreSQL())
		}
		if keepComments {
			opts = append(opts, sqlscript.WithComments())
		}
		return opts
	}

	split := &cobra.Command{
		Use:   "split [FILE]",
		Short: "Print each statement of a script on its own, with its line number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(cmd, args)
			if err != nil {
				return err
			}
			stmts, err := sqlscript.Statements(string(src), splitOpts()...)
			if err != nil {
				return err
			}
			for _, s := range stmts {
				printf(cmd, "-- line %d\n%s;\n", s.Line, s.SQL)
			}
			return nil
		},
	}
	split.Flags().BoolVar(&postgres, "postgres", false, "PostgreSQL lexing rules")
	split.Flags().BoolVar(&keepComments, "keep-comments", false, "keep comments in statements")

	var dsn string
	var noTx bool
	exec := &cobra.Command{
		Use:   "exec [FILE]",
		Short: "Run a script against PostgreSQL inside one transaction",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = a.cfg.DatabaseURL
			}
			if dsn == "" {
				return errNoDSN
			}
			src, err := input(cmd, args)
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()

			db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
			if err != nil {
				return err
			}
			defer db.Close()

			opts := []sqlscript.RunnerOption{
				sqlscript.WithLogger(a.log),
				sqlscript.WithSplitOptions(append(splitOpts(), sqlscript.PostgreSQL())...),
			}
			if noTx {
				opts = append(opts, sqlscript.WithoutTransaction())
			}
			res, err := sqlscript.NewRunner(db, opts...).Exec(ctx, string(src))
			if err != nil {
				return err
			}
			a.log.Info("script applied",
				zap.Int("statements", res.Statements),
				zap.Int64("rows", res.RowsAffected),
				zap.Duration("elapsed", res.Duration))
			printf(cmd, "%d statements, %d rows affected\n", res.Statements, res.RowsAffected)
			return nil
		},
	}
	exec.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL connection string (default LVKIT_DATABASE_URL)")
	exec.Flags().BoolVar(&noTx, "no-tx", false, "autocommit each statement")
	exec.Flags().BoolVar(&keepComments, "keep-comments", false, "send comments to the server")

	cmd.AddCommand(split, exec)
	return cmd
}

func hashCmd(a *app) *cobra.Command {
	var algo string
	var workers int
	cmd := &cobra.Command{
		Use:   "hash FILE...",
		Short: "Checksum files concurrently (md5, sha1, sha256, sha512, crc32)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			sums, err := files.HashMany(ctx, args, algo, workers)
			if err != nil {
				return err
			}
			paths := make([]string, 0, len(sums))
			for p := range sums {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			for _, p := range paths {
				printf(cmd, "%s  %s\n", sums[p], p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", "sha256", "hash algorithm")
	cmd.Flags().IntVarP(&workers, "workers", "j", 4, "parallel workers")
	return cmd
}
