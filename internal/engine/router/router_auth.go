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
	"github.com/gofiber/fiber/v2"

	"github.com/scenicrp/roster/internal/engine/model"
	httpx "github.com/scenicrp/roster/pkg/http"
	"github.com/scenicrp/roster/pkg/http/middleware"
)

func (rt *Router) authRouter(r fiber.Router, auth fiber.Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.Post("/login", rt.login)
		authGroup.Post("/signup", rt.signup)

		authGroup.Post("/logout", auth, rt.logout)
		authGroup.Get("/me", auth, rt.me)
	}
}

func (rt *Router) login(c *fiber.Ctx) error {
	var login model.Login
	if err := c.BodyParser(&login); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	resp, err := rt.authSvc.Authenticate(&login, rt.Http.Auth)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, resp)
}

func (rt *Router) signup(c *fiber.Ctx) error {
	var signup model.Signup
	if err := c.BodyParser(&signup); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	account, err := rt.accountSvc.Signup(&signup)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, account)
}

func (rt *Router) logout(c *fiber.Ctx) error {
	sessionId, _ := c.Locals(middleware.SessionIdKey).(string)
	if err := rt.authSvc.Logout(sessionId); err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepNotDetail(c)
}

// me returns the caller's account plus its resolved authorization summary.
func (rt *Router) me(c *fiber.Ctx) error {
	account, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, fiber.Map{
		"account":      account,
		"group":        res.Group,
		"permissions":  res.Perms,
		"ceilingIndex": res.CeilingIndex,
	})
}
