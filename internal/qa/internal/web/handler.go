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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

// PrivateRoutes 统一用 POST
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/qa")
	g.POST("/question/save", ginx.BS[SaveQuestionReq](h.SaveQuestion))
	g.POST("/question/answers", ginx.B[QidReq](h.ListAnswers))
	g.POST("/answer/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/answer/edit", ginx.BS[EditReq](h.Edit))
	g.POST("/answer/accept", ginx.BS[AidReq](h.Accept))
	g.POST("/answer/react", ginx.BS[ReactReq](h.React))
	g.POST("/answer/flag", ginx.BS[FlagReq](h.Flag))
	g.POST("/answer/followup", ginx.BS[FollowupReq](h.Followup))
	g.POST("/answer/delete", ginx.BS[AidReq](h.Delete))
	g.POST("/answer/detail", ginx.B[AidReq](h.Detail))
}

func (h *Handler) SaveQuestion(ctx *ginx.Context, req SaveQuestionReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.SaveQuestion(ctx, domain.Question{
		Uid:     sess.Claims().Uid,
		Title:   req.Title,
		Content: req.Content,
	})
	return toResult(id, err)
}

func (h *Handler) ListAnswers(ctx *ginx.Context, req QidReq) (ginx.Result, error) {
	ras, err := h.svc.ListByQuestion(ctx, req.Qid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newRankedAnswerList(ras),
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Submit(ctx, domain.Answer{
		Qid:     req.Qid,
		Uid:     sess.Claims().Uid,
		Content: req.Content,
	})
	return toResult(id, err)
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Edit(ctx, sess.Claims().Uid, req.Aid, req.Content)
	return toResult(req.Aid, err)
}

func (h *Handler) Accept(ctx *ginx.Context, req AidReq, sess session.Session) (ginx.Result, error) {
	accepted, err := h.svc.Accept(ctx, sess.Claims().Uid, req.Aid)
	return toResult(AcceptResp{Accepted: accepted}, err)
}

func (h *Handler) React(ctx *ginx.Context, req ReactReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.React(ctx, domain.Reaction{
		Aid:  req.Aid,
		Uid:  sess.Claims().Uid,
		Type: domain.ReactionType(req.Type),
	})
	return toResult(req.Aid, err)
}

func (h *Handler) Flag(ctx *ginx.Context, req FlagReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Flag(ctx, domain.Flag{
		Aid:    req.Aid,
		Uid:    sess.Claims().Uid,
		Reason: req.Reason,
	})
	return toResult(req.Aid, err)
}

func (h *Handler) Followup(ctx *ginx.Context, req FollowupReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Followup(ctx, domain.Followup{
		Aid:     req.Aid,
		Uid:     sess.Claims().Uid,
		Content: req.Content,
	})
	return toResult(id, err)
}

func (h *Handler) Delete(ctx *ginx.Context, req AidReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Aid)
	return toResult(req.Aid, err)
}

func (h *Handler) Detail(ctx *ginx.Context, req AidReq) (ginx.Result, error) {
	ra, err := h.svc.Detail(ctx, req.Aid)
	if err != nil {
		return toResult(nil, err)
	}
	return ginx.Result{
		Data: newRankedAnswer(ra),
	}, nil
}
