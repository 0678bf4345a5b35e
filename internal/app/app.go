package app

import (
	"baccarat_sim/internal/config"
	"context"
	"log"
	"net/http"
)

type App struct {
	ServiceProvider *ServiceProvider
	configPath      string
}

func NewApp(configPath string) *App {
	return &App{configPath: configPath}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.configPath)
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	srv := &http.Server{
		Addr:        s.ServiceProvider.HTTPCfg().Address(),
		Handler:     r,
		ReadTimeout: s.ServiceProvider.HTTPCfg().ReadTimeout(),
	}

	log.Printf("starting server at %s", srv.Addr)
	return srv.ListenAndServe()
}
