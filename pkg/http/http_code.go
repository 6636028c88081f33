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

package http

var (
	Failed                        = failed(500, "Request failed")
	RequestParameterParsingFailed = failed(5001, "Request parameter parsing failed")

	// Unauthorized 401
	Unauthorized         = failed(4401, "Unauthorized")
	AuthenticationFailed = failed(4402, "Authentication failed")
	AuthorizationEmpty   = failed(4404, "Authorization is empty")
	InvalidToken         = failed(4405, "Invalid token")
	TokenExpired         = failed(4407, "Token is expired")

	// BadRequest 400
	BadRequest       = failed(4000, "Bad request")
	NotFound         = failed(4004, "Not found")
	ValidationFailed = failed(4005, "Validation failed")

	// Forbidden 403
	Forbidden        = failed(4030, "Forbidden")
	PermissionDenied = failed(4031, "Permission denied")
	CeilingExceeded  = failed(4032, "Community rank exceeds assignable ceiling")

	InternalError = failed(5000, "Internal error, please contact the administrator")

	AccountNotExist       = failed(4041, "Account does not exist")
	AccountAlreadyExist   = failed(4042, "Account already exists")
	AccountDisabled       = failed(4044, "Account is disabled")
	IncorrectPassword     = failed(4043, "Incorrect password")
	MemberNotFound        = failed(4046, "Member not found")
	ArchiveRecordNotFound = failed(4047, "Archived member not found")
	Conflict              = failed(4090, "Conflict")
	SignupDisabled        = failed(4033, "Sign-up is disabled")
)

var (
	Success = success(200, "Request Success")
)

func failed(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}

func success(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}
