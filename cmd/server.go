package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/spf13/cobra"

	"github.com/frain-dev/httpauth/auth/realm/basic"
	"github.com/frain-dev/httpauth/config"
	"github.com/frain-dev/httpauth/internal/pkg/middleware"
	"github.com/frain-dev/httpauth/pkg/log"
	"github.com/frain-dev/httpauth/util"
)

func addServerCommand(logger *log.Logger) *cobra.Command {
	var port uint32

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start an HTTP server protected by the configured authentication stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			router, err := buildRouter(cfg, logger)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Handler:      router,
				Addr:         fmt.Sprintf(":%d", port),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			logger.WithFields(log.Fields{"port": port, "stages": len(cfg.Auth.Stages)}).Info("starting httpauth server")
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().Uint32Var(&port, "port", 5005, "Port to listen on")

	return cmd
}

func buildRouter(cfg *config.Configuration, logger *log.Logger) (http.Handler, error) {
	router := chi.NewRouter()

	for i := range cfg.Auth.Stages {
		stageCfg := &cfg.Auth.Stages[i]

		table, err := stageCfg.Table()
		if err != nil {
			return nil, err
		}

		realm, err := basic.NewRealm(stageCfg.Realm, table)
		if err != nil {
			return nil, err
		}

		stage := middleware.NewStage(&middleware.CreateStage{
			Realm:                realm,
			Verbosity:            cfg.Auth.Verbosity,
			Halt:                 stageCfg.Halt,
			AdvertiseUnattempted: stageCfg.AdvertiseUnattempted,
			Logger:               logger,
		})

		router.Use(stage.Handler)
	}

	router.Use(middleware.RequireAuthenticated())

	router.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		authUser := middleware.GetAuthUserFromContext(r.Context())

		resp, err := util.NewServerResponse("authenticated", authUser, http.StatusOK)
		if err != nil {
			_ = render.Render(w, r, util.NewErrorResponse("internal server error", http.StatusInternalServerError))
			return
		}

		_ = render.Render(w, r, resp)
	})

	return router, nil
}
