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
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/errs"
	"github.com/ecodeclub/jobmate/internal/qa/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 质量分排查，只读，外加一个强制重新计算
type AdminHandler struct {
	svc service.QualityService
}

func NewAdminHandler(svc service.QualityService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/qa/admin/answers")
	g.GET("/:aid/quality", ginx.W(h.Quality))
	g.POST("/:aid/quality/recompute", ginx.W(h.Recompute))
}

func (h *AdminHandler) Quality(ctx *ginx.Context) (ginx.Result, error) {
	aid, err := h.aid(ctx)
	if err != nil {
		return codeResult(errs.InvalidParam), nil
	}
	return h.debug(ctx, aid)
}

func (h *AdminHandler) Recompute(ctx *ginx.Context) (ginx.Result, error) {
	aid, err := h.aid(ctx)
	if err != nil {
		return codeResult(errs.InvalidParam), nil
	}
	_, err = h.svc.Recompute(ctx, aid, domain.TriggerManual)
	if err != nil {
		return toResult(nil, err)
	}
	return h.debug(ctx, aid)
}

func (h *AdminHandler) debug(ctx *ginx.Context, aid int64) (ginx.Result, error) {
	d, err := h.svc.Debug(ctx, aid)
	if err != nil {
		return toResult(nil, err)
	}
	return ginx.Result{
		Data: newQualityDebug(d),
	}, nil
}

func (h *AdminHandler) aid(ctx *ginx.Context) (int64, error) {
	aid, err := strconv.ParseInt(ctx.Context.Param("aid"), 10, 64)
	if err != nil || aid <= 0 {
		return 0, errors.New("非法的回答 id")
	}
	return aid, nil
}
