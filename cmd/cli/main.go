package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	postgresRepo "github.com/iho/chainsnap/internal/adapter/repository/postgres"
	"github.com/iho/chainsnap/internal/adapter/substrate"
	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/infrastructure/config"
	"github.com/iho/chainsnap/internal/infrastructure/logger"
	"github.com/iho/chainsnap/internal/keystore"
	"github.com/iho/chainsnap/internal/usecase"
)

// errMismatch makes the process exit with status 1 without printing usage.
var errMismatch = errors.New("snapshots differ")

type options struct {
	decimals       int32
	noColor        bool
	identitiesFile string
	logLevel       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errMismatch) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "chainsnap",
		Short:         "Chain balance snapshot tool",
		Long:          `Capture balance snapshots from a node and compare them with tolerance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Int32Var(&opts.decimals, "decimals", usecase.DefaultDecimals, "Token decimals used to render amounts")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured diff output")
	rootCmd.PersistentFlags().StringVar(&opts.identitiesFile, "identities", os.Getenv("IDENTITIES_FILE"), "YAML file with custom identities")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level")

	rootCmd.AddCommand(
		snapshotCmd(opts),
		compareCmd(opts),
		identitiesCmd(opts),
		showCmd(opts),
	)

	return rootCmd
}

func snapshotCmd(opts *options) *cobra.Command {
	var (
		out     string
		nodeURL string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture a snapshot from the node into a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if nodeURL != "" {
				cfg.NodeURL = nodeURL
			}

			log := logger.New(logger.Config{Level: opts.logLevel, Format: "console", Output: cmd.ErrOrStderr()})
			ctx := cmd.Context()

			node, err := substrate.Dial(ctx, substrate.ConfigFromSettings(cfg), log)
			if err != nil {
				return fmt.Errorf("failed to dial node: %w", err)
			}
			defer node.Close()

			if err := node.WaitReady(ctx); err != nil {
				return err
			}

			uc := usecase.NewSnapshotUseCase(node, nil, postgresRepo.NewULIDGenerator(), nil, keystore.DevAccountIDs(), log)
			stashed, err := uc.Capture(ctx)
			if err != nil {
				return err
			}

			if err := usecase.WriteSnapshot(out, stashed); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s block=%s accounts=%d\n",
				stashed.ID, out, stashed.Block, len(stashed.Snapshot.Balances))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "snapshot.json", "Output file")
	cmd.Flags().StringVar(&nodeURL, "node", "", "Node RPC URL (overrides NODE_URL)")

	return cmd
}

func compareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Compare two snapshot files; exits 1 when they differ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			identities, err := identityUseCase(opts)
			if err != nil {
				return err
			}

			left, err := usecase.ReadSnapshot(args[0])
			if err != nil {
				return err
			}
			right, err := usecase.ReadSnapshot(args[1])
			if err != nil {
				return err
			}

			store := identities.KeyStore(left.Snapshot, right.Snapshot)
			result := usecase.CompareSnapshotsWithKeyStore(left.Snapshot, right.Snapshot, store)

			out := cmd.OutOrStdout()
			if result.Equal {
				fmt.Fprintln(out, "snapshots are equal")
				return nil
			}

			styles := newDiffStyles(out, opts.noColor)
			printReport(out, result.Report, styles)
			printDiscrepancies(out, result.Discrepancies, opts.decimals, styles)

			return errMismatch
		},
	}
}

func identitiesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "identities",
		Short: "Print the built-in and custom identities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			identities, err := identityUseCase(opts)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), identities.Identities())
		},
	}
}

func showCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a snapshot file with account names resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identities, err := identityUseCase(opts)
			if err != nil {
				return err
			}

			stashed, err := usecase.ReadSnapshot(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), identities.Humanize(stashed.Snapshot))
		},
	}
}

func identityUseCase(opts *options) (*usecase.IdentityUseCase, error) {
	if opts.identitiesFile == "" {
		return usecase.NewIdentityUseCase(nil), nil
	}
	custom, err := keystore.LoadIdentities(opts.identitiesFile)
	if err != nil {
		return nil, err
	}
	return usecase.NewIdentityUseCase(custom), nil
}

type diffStyles struct {
	removed lipgloss.Style
	added   lipgloss.Style
	header  lipgloss.Style
	plain   bool
}

func newDiffStyles(w io.Writer, noColor bool) diffStyles {
	r := lipgloss.NewRenderer(w)
	return diffStyles{
		removed: r.NewStyle().Foreground(lipgloss.Color("1")),
		added:   r.NewStyle().Foreground(lipgloss.Color("2")),
		header:  r.NewStyle().Bold(true),
		plain:   noColor,
	}
}

func (s diffStyles) render(style lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return style.Render(text)
}

func printReport(w io.Writer, report string, styles diffStyles) {
	for _, line := range strings.Split(strings.TrimSuffix(report, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, string(usecase.DiffRemoved)):
			line = styles.render(styles.removed, line)
		case strings.HasPrefix(line, string(usecase.DiffAdded)):
			line = styles.render(styles.added, line)
		}
		fmt.Fprintln(w, line)
	}
}

func printDiscrepancies(w io.Writer, discrepancies []domain.Discrepancy, decimals int32, styles diffStyles) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.render(styles.header, fmt.Sprintf("%d discrepancies:", len(discrepancies))))

	for _, d := range discrepancies {
		var where []string
		for _, part := range []string{string(d.Section), d.Account, d.Currency, d.Field} {
			if part != "" {
				where = append(where, part)
			}
		}
		fmt.Fprintf(w, "  %s: %s -> %s (%s)\n",
			strings.Join(where, " "),
			formatSide(d.Left, decimals),
			formatSide(d.Right, decimals),
			signed(usecase.FormatUnits(d.Difference, decimals)),
		)
	}
}

func formatSide(amount *decimal.Decimal, decimals int32) string {
	if amount == nil {
		return "absent"
	}
	return usecase.FormatUnits(*amount, decimals)
}

func signed(s string) string {
	if s == "0" || strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}

func printJSON(w io.Writer, v any) error {
	s, err := usecase.PrettyJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
