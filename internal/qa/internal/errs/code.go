// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errs

var (
	AnswerNotFound   = ErrorCode{Code: 410001, Msg: "回答不存在"}
	QuestionNotFound = ErrorCode{Code: 410002, Msg: "问题不存在"}
	PermissionDenied = ErrorCode{Code: 410003, Msg: "没有权限"}
	InvalidReaction  = ErrorCode{Code: 410004, Msg: "非法的评价"}
	InvalidParam     = ErrorCode{Code: 410005, Msg: "参数错误"}

	SystemError = ErrorCode{Code: 510001, Msg: "系统错误"}
	// ScoringDelayed 数据已经保存，但是质量分可能是旧的
	ScoringDelayed = ErrorCode{Code: 510002, Msg: "质量分更新延迟"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
