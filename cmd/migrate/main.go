package main

import (
	"time"

	"updownriver-server/pkg/db"

	"github.com/sirupsen/logrus"
)

const (
	connectTimeout = time.Second * 10
	retryInterval  = time.Millisecond * 500
)

// migrates the database, waiting for it to come up first so this can start
// alongside postgres
func main() {
	deadline := time.Now().Add(connectTimeout)
	for !tryConnect() {
		if time.Now().After(deadline) {
			logrus.Fatal("could not connect to database")
		}

		time.Sleep(retryInterval)
	}

	db.Migrate()
}

func tryConnect() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("cause", r).Debug("database not ready")
			ok = false
		}
	}()

	db.Instance()
	return true
}
