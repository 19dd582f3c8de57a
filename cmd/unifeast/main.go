package main

import (
	"context"
	"fmt"
	"os"

	"unifeast/config"
	"unifeast/internal/delivery/api"
	"unifeast/internal/delivery/api/middleware"
	"unifeast/internal/delivery/api/router/handler"
	"unifeast/internal/domain/repository"
	"unifeast/internal/infra/auth"
	"unifeast/internal/infra/catalog"
	"unifeast/internal/infra/lock"
	logs "unifeast/internal/infra/log"
	"unifeast/internal/infra/persistence/dynamodb"
	"unifeast/internal/infra/persistence/postgres"
	"unifeast/internal/infra/pubsub"
	"unifeast/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var rootCmd = &cobra.Command{
	Use:   "unifeast",
	Short: "Campus food ordering profile and menu service",
	Long: `unifeast serves user dietary profiles and personalized menus.

Available subcommands:
  serve   - Run the HTTP API
  profile - Inspect and repair stored profiles
  menu    - Print the menu as a user would see it
  token   - Issue a development access token`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, profileCmd, menuCmd, tokenCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// coreOptions wires everything below the delivery layer.
func coreOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		dynamodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				postgres.NewProfileRepository,
				fx.ResultTags(`name:"primaryStore"`),
			),
			fx.Annotate(
				newSecondaryStore,
				fx.ResultTags(`name:"secondaryStore"`),
			),
		),
	)
}

// newSecondaryStore binds the DynamoDB store to the configured table.
func newSecondaryStore(client dynamodb.API, cfg *config.Config) repository.ProfileStore {
	return dynamodb.NewUserRepository(client, cfg.DynamoDB.TableName)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			auth.NewTokenService,
			lock.New,
			catalog.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.PolicyFromConfig,
			impl.NewProfileService,
			impl.NewMenuService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewMenuHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
