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
	httpx "github.com/scenicrp/roster/pkg/http"
)

func (rt *Router) logRouter(r fiber.Router, auth fiber.Handler) {
	logGroup := r.Group("/logs", auth)
	{
		logGroup.Get("/removals", rt.listRemovals)
		logGroup.Get("/transfers", rt.listTransfers)
	}
}

func (rt *Router) listRemovals(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}
	if !res.Perms.CanAccessArchive {
		return repErr(c, errs.Capability("access archive"))
	}

	logs, err := rt.lifecycleSvc.Removals()
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, logs)
}

func (rt *Router) listTransfers(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}
	if !res.Perms.CanAccessArchive {
		return repErr(c, errs.Capability("access archive"))
	}

	logs, err := rt.lifecycleSvc.Transfers()
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, logs)
}
