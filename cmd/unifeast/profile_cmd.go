package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"unifeast/config"
	"unifeast/internal/domain/entity"
	"unifeast/internal/domain/repository"
	"unifeast/internal/infra/auth"
	"unifeast/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

var (
	outputFormat string
	ensureEmail  string
	deleteStore  string
	tokenEmail   string
	cmdTimeout   time.Duration
)

// profileCmd groups the operator commands for stored profiles
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and repair stored profiles",
	Long: `Inspect and repair stored profiles using the service configuration.

Available subcommands:
  get    - Resolve a user's canonical profile across both stores
  ensure - Create the default profile when none exists
  delete - Remove a record from one store`,
}

var profileGetCmd = &cobra.Command{
	Use:   "get <user-id>",
	Short: "Resolve a user's canonical profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCore(cmd.Context(), func(ctx context.Context, deps coreDeps) error {
			profile, err := deps.Profiles.GetProfile(ctx, args[0])
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), newProfileView(profile))
		})
	},
}

var profileEnsureCmd = &cobra.Command{
	Use:   "ensure <user-id>",
	Short: "Create the default profile when none exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCore(cmd.Context(), func(ctx context.Context, deps coreDeps) error {
			profile, err := deps.Profiles.EnsureProfile(ctx, args[0], ensureEmail)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), newProfileView(profile))
		})
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Remove a record from one store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if deleteStore != repository.StorePrimary && deleteStore != repository.StoreSecondary {
			return errors.Errorf("--store must be %q or %q", repository.StorePrimary, repository.StoreSecondary)
		}

		return withCore(cmd.Context(), func(ctx context.Context, deps coreDeps) error {
			if err := deps.Profiles.DeleteProfile(ctx, args[0], deleteStore); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s from %s\n", args[0], deleteStore)

			return nil
		})
	},
}

// menuCmd prints the menu as the given user, or an anonymous visitor, would see it
var menuCmd = &cobra.Command{
	Use:   "menu [user-id]",
	Short: "Print the menu as a user would see it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var userID string
		if len(args) == 1 {
			userID = args[0]
		}

		return withCore(cmd.Context(), func(ctx context.Context, deps coreDeps) error {
			entries, err := deps.Menu.GetMenu(ctx, userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, entry := range entries {
				warning := ""
				if entry.AllergenWarning {
					warning = "  ! contains your allergens"
				}
				fmt.Fprintf(out, "%-28s %-20s £%6.2f%s\n", entry.Item.Name, entry.Item.Restaurant, entry.Price, warning)
			}

			return nil
		})
	},
}

// tokenCmd issues an access token accepted by the jwt auth provider
var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Issue a development access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		tokens, err := auth.NewTokenService(cfg)
		if err != nil {
			return err
		}

		token, err := tokens.GenerateToken(&entity.Identity{UserID: args[0], Email: tokenEmail})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", token)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires in %s\n", tokens.GetTokenDuration())

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&cmdTimeout, "timeout", 30*time.Second, "Operation timeout")

	profileCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format: yaml or json")
	profileEnsureCmd.Flags().StringVar(&ensureEmail, "email", "", "Login email recorded on a newly created profile")
	profileDeleteCmd.Flags().StringVar(&deleteStore, "store", "", "Store to delete from: primary or secondary")
	_ = profileDeleteCmd.MarkFlagRequired("store")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim of the token")

	profileCmd.AddCommand(profileGetCmd, profileEnsureCmd, profileDeleteCmd)
}

type coreDeps struct {
	fx.In

	Profiles usecase.ProfileUsecase
	Menu     usecase.MenuUsecase
}

// withCore starts the stores and services without the HTTP server, runs fn, then stops them.
func withCore(parent context.Context, fn func(ctx context.Context, deps coreDeps) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, cmdTimeout)
	defer cancel()

	var deps coreDeps
	app := fx.New(
		coreOptions(),
		fx.NopLogger,
		fx.Populate(&deps),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "wire dependencies")
	}
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start dependencies")
	}
	defer func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}()

	return fn(ctx, deps)
}

// profileView is the operator-facing rendering of a profile.
type profileView struct {
	UserID             string    `json:"userId" yaml:"userId"`
	Email              string    `json:"email" yaml:"email"`
	DisplayName        string    `json:"displayName" yaml:"displayName"`
	IdentityTier       string    `json:"identityTier" yaml:"identityTier"`
	DietaryPreferences []string  `json:"dietaryPreferences" yaml:"dietaryPreferences"`
	PeriodPlan         string    `json:"periodPlan" yaml:"periodPlan"`
	CoreAllergens      []string  `json:"coreAllergens" yaml:"coreAllergens"`
	OtherAllergens     []string  `json:"otherAllergens" yaml:"otherAllergens"`
	HasSessionData     bool      `json:"hasSessionData" yaml:"hasSessionData"`
	CreatedAt          time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" yaml:"updatedAt"`
}

func newProfileView(p *entity.Profile) profileView {
	return profileView{
		UserID:             p.ID,
		Email:              p.Email,
		DisplayName:        p.DisplayName,
		IdentityTier:       p.IdentityTier.String(),
		DietaryPreferences: p.DietaryPreferences.Strings(),
		PeriodPlan:         p.PeriodPlan,
		CoreAllergens:      p.CoreAllergens.Labels(),
		OtherAllergens:     p.OtherAllergens,
		HasSessionData:     p.SessionData != "",
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func render(w io.Writer, v any) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()

		return enc.Encode(v)
	default:
		return errors.Errorf("unknown output format %q", outputFormat)
	}
}
