// Copyright 2025 Scenic Roster Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"

	"golang.org/x/crypto/bcrypt"

	"github.com/scenicrp/roster/internal/engine/bootstrap"
	"github.com/scenicrp/roster/internal/engine/config"
	"github.com/scenicrp/roster/internal/engine/router"
	"github.com/scenicrp/roster/pkg/database"
	httpx "github.com/scenicrp/roster/pkg/http"
	"github.com/scenicrp/roster/pkg/log"
)

/**
 * @file: main.go
 * @description: roster engine program
 */

var configFile string

func init() {
	flag.StringVar(&configFile, "conf", "conf.d/config.toml", "conf file path, e.g. -conf ./conf.d/config.toml")
}

func main() {
	flag.Parse()

	appConf, settings := config.NewConf(configFile)

	log.MustInit(&appConf.Log)

	gormDB, err := database.NewDatabase(appConf.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	db := database.NewGormDB(gormDB)

	if err := bootstrap.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	if pw := appConf.Roster.Auth.BootstrapPassword; pw != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash bootstrap password: %v", err)
		}
		if err := bootstrap.Seed(db, string(hash)); err != nil {
			log.Fatalf("failed to seed initial data: %v", err)
		}
	}

	route := router.NewRouter(appConf.Http, db, settings)

	wait := httpx.Server(appConf.Http, route.Router())
	wait()
}
