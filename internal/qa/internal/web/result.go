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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobmate/internal/qa/internal/errs"
	"github.com/ecodeclub/jobmate/internal/qa/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func codeResult(code errs.ErrorCode) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	}
}

// toResult 业务错误只体现在 Code 上，只有系统错误才会返回 error。
// 写入成功但是质量分没算出来的时候，依旧返回数据
func toResult(data any, err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{Data: data}, nil
	case errors.Is(err, service.ErrScoringFailed):
		elog.DefaultLogger.Error("质量分更新失败", elog.FieldErr(err))
		res := codeResult(errs.ScoringDelayed)
		res.Data = data
		return res, nil
	case errors.Is(err, service.ErrAnswerNotFound):
		return codeResult(errs.AnswerNotFound), nil
	case errors.Is(err, service.ErrQuestionNotFound):
		return codeResult(errs.QuestionNotFound), nil
	case errors.Is(err, service.ErrPermissionDenied):
		return codeResult(errs.PermissionDenied), nil
	case errors.Is(err, service.ErrInvalidReaction):
		return codeResult(errs.InvalidReaction), nil
	default:
		return systemErrorResult, err
	}
}
