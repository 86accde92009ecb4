// Command proposald runs the proposal enrichment backend.
//
// Subcommands:
//
//	serve          start the HTTP API
//	migrate        apply database migrations and exit
//	enrich <id>    re-run enrichment for one stored proposal
//	token <sub>    issue an API bearer token
//	version        print build information
//
// Configuration comes from CONFIG_PATH (YAML), a .env file and the environment.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/proposal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/proposal-backend/internal/app"
	"github.com/heartmarshall/proposal-backend/internal/auth"
	"github.com/heartmarshall/proposal-backend/internal/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "proposald",
		Short:         "Proposal enrichment backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(serveCmd(), migrateCmd(), enrichCmd(), tokenCmd(), versionCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			return postgres.Migrate(ctx, cfg.Database.DSN, logger)
		},
	}
}

type enrichOutput struct {
	ID                string  `json:"id"`
	OpportunityNumber *string `json:"opportunityNumber"`
	ProposedBy        *string `json:"proposedBy"`
	ChooseEmployee    *string `json:"chooseEmployee"`
	OK                bool    `json:"ok"`
	OpportunityError  string  `json:"opportunityError,omitempty"`
	EmployeeError     string  `json:"employeeError,omitempty"`
}

func enrichCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "enrich <proposal-id>",
		Short: "Re-run opportunity and employee enrichment for a stored proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid proposal id %q: %w", args[0], err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			a, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Proposals().ReenrichProposal(ctx, id)
			if err != nil {
				return err
			}

			out := enrichOutput{
				ID:                res.Proposal.ID.String(),
				OpportunityNumber: res.Proposal.OpportunityNumber,
				ProposedBy:        res.Proposal.ProposedBy,
				OK:                res.Report.OK(),
			}
			if res.Proposal.ChooseEmployee != nil {
				s := res.Proposal.ChooseEmployee.String()
				out.ChooseEmployee = &s
			}
			if res.Report.OpportunityErr != nil {
				out.OpportunityError = res.Report.OpportunityErr.Error()
			}
			if res.Report.EmployeeErr != nil {
				out.EmployeeError = res.Report.EmployeeErr.Error()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return err
			}

			if strict && !out.OK {
				return errors.New("enrichment incomplete")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when an enrichment step failed")
	return cmd
}

func tokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue a bearer token for an API caller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.Auth.Enabled() {
				return errors.New("auth.jwt_secret is not configured")
			}

			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).GenerateToken(args[0], ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime (0 for no expiry)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "proposald", app.BuildVersion())
		},
	}
}
