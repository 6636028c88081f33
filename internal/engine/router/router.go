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

package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/scenicrp/roster/internal/engine/config"
	"github.com/scenicrp/roster/internal/engine/errs"
	"github.com/scenicrp/roster/internal/engine/model"
	"github.com/scenicrp/roster/internal/engine/repo"
	"github.com/scenicrp/roster/internal/engine/service"
	"github.com/scenicrp/roster/pkg/database"
	httpx "github.com/scenicrp/roster/pkg/http"
	"github.com/scenicrp/roster/pkg/http/middleware"
)

/**
 * @file: router.go
 * @description: setup router, internal api router
 */

type Router struct {
	Http     httpx.Http
	Settings config.Provider

	lifecycleSvc *service.LifecycleService
	accountSvc   *service.AccountService
	authSvc      *service.AuthService
}

func NewRouter(httpConf httpx.Http, db database.IDatabase, settings config.Provider) *Router {
	accountRepo := repo.NewAccountRepo(db)
	memberRepo := repo.NewMemberRepo(db)
	return &Router{
		Http:         httpConf,
		Settings:     settings,
		lifecycleSvc: service.NewLifecycleService(db, settings),
		accountSvc:   service.NewAccountService(accountRepo, settings),
		authSvc:      service.NewAuthService(accountRepo, memberRepo, settings),
	}
}

// Router mounts every route onto a fresh fiber application.
func (rt *Router) Router() *fiber.App {
	app := httpx.NewApp(rt.Http)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	auth := middleware.Authorization(rt.Http.Auth.SecretKey, func(sessionId string) bool {
		_, err := rt.authSvc.SessionAccount(sessionId)
		return err == nil
	})

	api := app.Group(rt.Http.ContextPath)
	{
		rt.authRouter(api, auth)
		rt.memberRouter(api, auth)
		rt.archiveRouter(api, auth)
		rt.accountRouter(api, auth)
		rt.logRouter(api, auth)
	}

	return app
}

// actor loads the calling account and resolves its effective authorization.
func (rt *Router) actor(c *fiber.Ctx) (*model.Account, service.Resolution, error) {
	sessionId, _ := c.Locals(middleware.SessionIdKey).(string)
	account, err := rt.authSvc.SessionAccount(sessionId)
	if err != nil {
		return nil, service.Resolution{}, err
	}
	return account, rt.authSvc.ResolveAccount(account), nil
}

// repErr maps an engine error onto the response code registry.
func repErr(c *fiber.Ctx, err error) error {
	var rsp *httpx.Response
	switch errs.KindOf(err) {
	case errs.KindValidation:
		rsp = httpx.ValidationFailed
	case errs.KindCapability:
		if errors.Is(err, errs.ErrSignupDisabled) {
			rsp = httpx.SignupDisabled
		} else {
			rsp = httpx.PermissionDenied
		}
	case errs.KindCeiling:
		rsp = httpx.CeilingExceeded
	case errs.KindConflict:
		if errors.Is(err, errs.ErrEmailTaken) {
			rsp = httpx.AccountAlreadyExist
		} else {
			rsp = httpx.Conflict
		}
	case errs.KindNotFound:
		switch {
		case errors.Is(err, errs.ErrMemberNotFound):
			rsp = httpx.MemberNotFound
		case errors.Is(err, errs.ErrArchiveNotFound):
			rsp = httpx.ArchiveRecordNotFound
		default:
			rsp = httpx.NotFound
		}
	case errs.KindCredential:
		switch {
		case errors.Is(err, errs.ErrAccountNotFound):
			rsp = httpx.AccountNotExist
		case errors.Is(err, errs.ErrAccountDisabled):
			rsp = httpx.AccountDisabled
		default:
			rsp = httpx.IncorrectPassword
		}
	default:
		rsp = httpx.InternalError
	}
	return httpx.WithRepErrMsg(c, rsp.Code, err.Error(), c.Path())
}
