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

	"github.com/scenicrp/roster/internal/engine/errs"
	"github.com/scenicrp/roster/internal/engine/model"
	httpx "github.com/scenicrp/roster/pkg/http"
)

func (rt *Router) accountRouter(r fiber.Router, auth fiber.Handler) {
	accountGroup := r.Group("/accounts", auth)
	{
		accountGroup.Get("/", rt.listAccounts)
		accountGroup.Post("/", rt.addAccount)
		accountGroup.Put("/:id", rt.updateAccount)
		accountGroup.Delete("/:id", rt.deleteAccount)
		accountGroup.Put("/:id/password", rt.resetPassword)
	}
}

func (rt *Router) listAccounts(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}
	if !res.Perms.CanManageUsers {
		return repErr(c, errs.Capability("manage users"))
	}

	accounts, err := rt.accountSvc.List()
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, accounts)
}

func (rt *Router) addAccount(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}
	if !res.Perms.CanManageUsers {
		return repErr(c, errs.Capability("manage users"))
	}

	var req model.AddAccountReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	account, err := rt.accountSvc.CreateAccount(&req)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, account)
}

func (rt *Router) updateAccount(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}
	if !res.Perms.CanManageUsers {
		return repErr(c, errs.Capability("manage users"))
	}

	var req model.UpdateAccountReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	account, err := rt.accountSvc.UpdateAccount(c.Params("id"), &req)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, account)
}

func (rt *Router) deleteAccount(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}
	if !res.Perms.CanManageUsers {
		return repErr(c, errs.Capability("manage users"))
	}

	if err := rt.accountSvc.DeleteAccount(c.Params("id")); err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepNotDetail(c)
}

func (rt *Router) resetPassword(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}
	if !res.Perms.CanManageUsers {
		return repErr(c, errs.Capability("manage users"))
	}

	var req model.ResetPasswordReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	if err := rt.accountSvc.SetPassword(c.Params("id"), req.NewPassword); err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepNotDetail(c)
}
