package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvkit/jsonx"
	"github.com/katalvlaran/lvkit/str"
	"github.com/katalvlaran/lvkit/supports"
	"github.com/katalvlaran/lvkit/uid"
)

func slugCmd(_ *app) *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "slug TEXT...",
		Short: "Turn text into a URL slug",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printf(cmd, "%s\n", str.Slugify(strings.Join(args, " "), sep))
			return nil
		},
	}
	cmd.Flags().StringVarP(&sep, "separator", "s", "-", "word separator")
	return cmd
}

func uuidCmd(a *app) *cobra.Command {
	var (
		version   int
		namespace string
		name      string
		short     bool
		count     int
	)
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate UUIDs (v1, v3, v4, v5, v6, v7)",
		Example: `  lvkit uuid -n 3
  lvkit uuid --version 5 --namespace dns --name example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []uid.Option
			if name != "" {
				opts = append(opts, uid.WithName(name))
			}
			if namespace != "" {
				ns, ok := uid.Namespaces[strings.ToLower(namespace)]
				if !ok {
					parsed, err := uid.Parse(namespace)
					if err != nil {
						return fmt.Errorf("namespace %q: %w", namespace, err)
					}
					ns = parsed
				}
				opts = append(opts, uid.WithNamespace(ns))
			}
			for i := 0; i < count; i++ {
				u, err := uid.New(version, opts...)
				if err != nil {
					return err
				}
				if short {
					printf(cmd, "%s\n", uid.Short(u))
				} else {
					printf(cmd, "%s\n", u)
				}
			}
			a.log.Debug("generated uuids", zap.Int("version", version), zap.Int("count", count))
			return nil
		},
	}
	cmd.Flags().IntVar(&version, "version", 4, "UUID version")
	cmd.Flags().StringVar(&namespace, "namespace", "", "v3/v5 namespace: dns, url, oid, x500 or a UUID")
	cmd.Flags().StringVar(&name, "name", "", "v3/v5 name")
	cmd.Flags().BoolVar(&short, "short", false, "print the base-36 short form")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many to generate")
	return cmd
}

func jsonCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Format and query JSON documents",
	}

	var width int
	var sortKeys bool
	pretty := &cobra.Command{
		Use:   "pretty [FILE]",
		Short: "Pretty-print JSON (stdin when FILE is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(cmd, args)
			if err != nil {
				return err
			}
			w := a.cfg.Indent
			if cmd.Flags().Changed("indent") {
				w = width
			}
			var out []byte
			if sortKeys {
				out, err = jsonx.SortKeys(src, indent(w))
			} else {
				out, err = jsonx.Pretty(src, indent(w))
			}
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", out)
			return nil
		},
	}
	pretty.Flags().IntVar(&width, "indent", 4, "spaces per level (default LVKIT_JSON_INDENT)")
	pretty.Flags().BoolVar(&sortKeys, "sort", false, "sort object keys")

	minify := &cobra.Command{
		Use:   "minify [FILE]",
		Short: "Strip insignificant whitespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(cmd, args)
			if err != nil {
				return err
			}
			out, err := jsonx.Minify(src)
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", out)
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get PATH [FILE]",
		Short: "Print the value at a gjson path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := input(cmd, args[1:])
			if err != nil {
				return err
			}
			if !jsonx.Valid(src) {
				return jsonx.ErrInvalid
			}
			v, ok := jsonx.Get(src, args[0])
			if !ok {
				return fmt.Errorf("path %q not found", args[0])
			}
			printf(cmd, "%s\n", v)
			return nil
		},
	}

	cmd.AddCommand(pretty, minify, get)
	return cmd
}

func vocabCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vocab [LIST]",
		Short: "List the built-in vocabularies or the entries of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range supports.Lists() {
					printf(cmd, "%s\n", name)
				}
				return nil
			}
			items, err := supports.List(args[0])
			if err != nil {
				return err
			}
			width := 0
			for _, it := range items {
				width = max(width, str.Length(it.Key))
			}
			for _, it := range items {
				printf(cmd, "%s  %s\n", str.PadRight(it.Key, width, " "), it.Label)
			}
			return nil
		},
	}
}
