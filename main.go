package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FG-IT/spree-paypal-express/config"
	"github.com/FG-IT/spree-paypal-express/dao"
	"github.com/FG-IT/spree-paypal-express/handlers"
	"github.com/FG-IT/spree-paypal-express/interceptors"
	"github.com/FG-IT/spree-paypal-express/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.Namespace = "spree-paypal-express"

	// a .env file is optional, the environment wins
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", log.Data{"error": err.Error()})
	}

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	if err = cfg.Validate(); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	paypalClient, err := service.GetPayPalClient(*cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg, dao.NewDAOService(cfg), paypalClient)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowedHeaders:   []string{"Content-Type", interceptors.OrderTokenHeader},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: c.Handler(router),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting spree-paypal-express service", log.Data{"bind_addr": cfg.BindAddr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(err)
	}
	log.Trace("Exiting spree-paypal-express service")
}
