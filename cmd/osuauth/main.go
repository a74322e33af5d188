package main

import (
	"os"
	"time"

	"github.com/okvr/osuauth/internal/config"
	"github.com/okvr/osuauth/internal/database"
	"github.com/okvr/osuauth/internal/handler"
	"github.com/okvr/osuauth/internal/http"
	"github.com/okvr/osuauth/internal/logger"
	"github.com/okvr/osuauth/internal/middleware"
	"github.com/okvr/osuauth/internal/repository"
	"github.com/okvr/osuauth/pkg/oauth"
)

func main() {
	// Initialize basic dependencies.
	conf := config.Load()
	logger.Init(os.Stdout, conf.Logger.Level, conf.Logger.Pretty)

	// Connect to the database and bring the schema up to date.
	db, err := database.Connect(conf)
	if err != nil {
		panic(err)
	}
	if err := database.Migrate(db); err != nil {
		panic(err)
	}

	// The osu! OAuth provider.
	provider := oauth.NewOsu(oauth.OsuConfig{
		ClientID:      conf.OAuthOsu.ClientID,
		ClientSecret:  conf.OAuthOsu.ClientSecret,
		AuthURL:       conf.OAuthOsu.AuthURL,
		TokenEndpoint: conf.OAuthOsu.TokenEndpoint,
		APIBaseURL:    conf.OAuthOsu.APIBaseURL,
		Scopes:        conf.OAuthOsu.Scopes,
		RedirectURI:   conf.OAuthOsu.RedirectURI,
		Timeout:       time.Duration(conf.OAuthOsu.TimeoutSeconds) * time.Second,
	})

	// Initialize the HTTP server.
	server := &http.Server{
		Config:     conf,
		Middleware: middleware.Middleware{},
		Handler:    handler.NewHandler(conf, provider, repository.NewRepository(db)),
	}

	// This internally calls ListenAndServe.
	// This is a blocking call and will panic if the server is unable to start.
	server.Start()
}
