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

func (rt *Router) archiveRouter(r fiber.Router, auth fiber.Handler) {
	archiveGroup := r.Group("/archive", auth)
	{
		archiveGroup.Get("/", rt.listArchive)
		archiveGroup.Post("/:number/restore", rt.restoreMember)
	}
}

func (rt *Router) listArchive(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}
	if !res.Perms.CanAccessArchive {
		return repErr(c, errs.Capability("access archive"))
	}

	archive, err := rt.lifecycleSvc.Archive()
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, archive)
}

func (rt *Router) restoreMember(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}

	m, err := rt.lifecycleSvc.Restore(res, c.Params("number"))
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, m)
}
