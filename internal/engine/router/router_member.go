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

	"github.com/scenicrp/roster/internal/engine/consts"
	"github.com/scenicrp/roster/internal/engine/model"
	httpx "github.com/scenicrp/roster/pkg/http"
)

func (rt *Router) memberRouter(r fiber.Router, auth fiber.Handler) {
	memberGroup := r.Group("/members", auth)
	{
		memberGroup.Get("/", rt.listMembers)
		memberGroup.Post("/", rt.addMember)
		memberGroup.Post("/activity-check", rt.activityCheck)
		memberGroup.Get("/:number", rt.getMember)
		memberGroup.Put("/:number", rt.editMember)
		memberGroup.Put("/:number/hours", rt.updateHours)
		memberGroup.Post("/:number/transfer", rt.transferMember)
		memberGroup.Post("/:number/discharge", rt.dischargeMember)
	}
}

func (rt *Router) listMembers(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}

	filter := model.MemberFilter{
		Department:    c.Query("department"),
		CommunityRank: consts.CommunityRank(c.Query("communityRank")),
		Status:        c.Query("status"),
	}
	members, err := rt.lifecycleSvc.List(filter)
	if err != nil {
		return repErr(c, err)
	}

	if !res.Perms.CanEditMembers {
		for i := range members {
			members[i] = members[i].Redacted()
		}
	}
	return httpx.WithRepJSON(c, members)
}

func (rt *Router) getMember(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}

	m, err := rt.lifecycleSvc.Get(c.Params("number"))
	if err != nil {
		return repErr(c, err)
	}
	if !res.Perms.CanEditMembers {
		redacted := m.Redacted()
		m = &redacted
	}
	return httpx.WithRepJSON(c, m)
}

func (rt *Router) addMember(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}

	var req model.AddMemberReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	m, err := rt.lifecycleSvc.Create(res, &req)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, m)
}

func (rt *Router) editMember(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}

	var req model.EditMemberReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	m, err := rt.lifecycleSvc.Edit(res, c.Params("number"), &req)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, m)
}

func (rt *Router) updateHours(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}

	var req model.HoursReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	m, err := rt.lifecycleSvc.UpdateHours(res, c.Params("number"), &req)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, m)
}

func (rt *Router) activityCheck(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}

	report, err := rt.lifecycleSvc.ActivityCheck(res)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, report)
}

func (rt *Router) transferMember(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}

	var req model.TransferReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	m, err := rt.lifecycleSvc.Transfer(res, c.Params("number"), &req)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, m)
}

func (rt *Router) dischargeMember(c *fiber.Ctx) error {
	_, res, err := rt.actor(c)
	if err != nil {
		return repErr(c, err)
	}

	var req model.DischargeReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, err.Error(), c.Path())
	}

	am, err := rt.lifecycleSvc.Discharge(res, c.Params("number"), &req)
	if err != nil {
		return repErr(c, err)
	}
	return httpx.WithRepJSON(c, am)
}
