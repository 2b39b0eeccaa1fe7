package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"updownriver-server/internal/config"
	"updownriver-server/internal/mux"
	"updownriver-server/pkg/db"
	"updownriver-server/pkg/game"
	"updownriver-server/pkg/room"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	options := game.DefaultOptions()
	if cfg.Game.MinPlayers > 0 {
		options.MinPlayers = cfg.Game.MinPlayers
	}
	if cfg.Game.MaxPlayers > 0 {
		options.MaxPlayers = cfg.Game.MaxPlayers
	}
	options.DealerHook = cfg.Game.DealerHook

	manager := room.NewManager(logrus.StandardLogger(), options)

	if cfg.PGDSN != "" {
		db.Migrate()
		manager.SetArchiver(db.NewArchive(db.Instance()))
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, manager))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
