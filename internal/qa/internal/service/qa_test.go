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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository"
	repomocks "github.com/ecodeclub/jobmate/internal/qa/internal/repository/mocks"
	qamocks "github.com/ecodeclub/jobmate/internal/qa/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type qaMocks struct {
	questionRepo *repomocks.MockQuestionRepository
	answerRepo   *repomocks.MockAnswerRepository
	qualityRepo  *repomocks.MockQualityRepository
	qualitySvc   *qamocks.MockQualityService
}

func newQAService(ctrl *gomock.Controller) (Service, qaMocks) {
	m := qaMocks{
		questionRepo: repomocks.NewMockQuestionRepository(ctrl),
		answerRepo:   repomocks.NewMockAnswerRepository(ctrl),
		qualityRepo:  repomocks.NewMockQualityRepository(ctrl),
		qualitySvc:   qamocks.NewMockQualityService(ctrl),
	}
	return NewService(m.questionRepo, m.answerRepo, m.qualityRepo, m.qualitySvc), m
}

func TestService_Submit(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m qaMocks)
		wantId  int64
		wantErr error
	}{
		{
			name: "提交成功",
			mock: func(m qaMocks) {
				m.questionRepo.EXPECT().FindByID(gomock.Any(), testQid).Return(domain.Question{Id: testQid}, nil)
				m.answerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(testAid, nil)
				m.qualitySvc.EXPECT().Recompute(gomock.Any(), testAid, domain.TriggerSubmit).
					Return(domain.QualityMetrics{Aid: testAid}, nil)
			},
			wantId: testAid,
		},
		{
			name: "问题不存在",
			mock: func(m qaMocks) {
				m.questionRepo.EXPECT().FindByID(gomock.Any(), testQid).
					Return(domain.Question{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrQuestionNotFound,
		},
		{
			name: "计算失败，回答依旧保存成功",
			mock: func(m qaMocks) {
				m.questionRepo.EXPECT().FindByID(gomock.Any(), testQid).Return(domain.Question{Id: testQid}, nil)
				m.answerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(testAid, nil)
				m.qualitySvc.EXPECT().Recompute(gomock.Any(), testAid, domain.TriggerSubmit).
					Return(domain.QualityMetrics{}, errors.New("mock db error"))
			},
			wantId:  testAid,
			wantErr: ErrScoringFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newQAService(ctrl)
			tc.mock(m)
			id, err := svc.Submit(context.Background(), domain.Answer{Qid: testQid, Uid: testAuthor, Content: testBodyText})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestService_Edit(t *testing.T) {
	testCases := []struct {
		name    string
		uid     int64
		mock    func(m qaMocks)
		wantErr error
	}{
		{
			name: "编辑成功",
			uid:  testAuthor,
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(testAnswer(), nil)
				m.answerRepo.EXPECT().UpdateContent(gomock.Any(), testAid, "new content").Return(nil)
				m.qualitySvc.EXPECT().Recompute(gomock.Any(), testAid, domain.TriggerEdit).
					Return(domain.QualityMetrics{}, nil)
			},
		},
		{
			name: "不能编辑别人的回答",
			uid:  testAsker,
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(testAnswer(), nil)
			},
			wantErr: ErrPermissionDenied,
		},
		{
			name: "回答不存在",
			uid:  testAuthor,
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).
					Return(domain.Answer{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrAnswerNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newQAService(ctrl)
			tc.mock(m)
			err := svc.Edit(context.Background(), tc.uid, testAid, "new content")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Accept(t *testing.T) {
	accepted := testAnswer()
	accepted.Accepted = true
	testCases := []struct {
		name         string
		uid          int64
		mock         func(m qaMocks)
		wantAccepted bool
		wantErr      error
	}{
		{
			name: "提问者采纳",
			uid:  testAsker,
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(testAnswer(), nil)
				m.questionRepo.EXPECT().FindByID(gomock.Any(), testQid).Return(domain.Question{Id: testQid, Uid: testAsker}, nil)
				m.answerRepo.EXPECT().ToggleAccepted(gomock.Any(), testAid).Return(true, nil)
				m.qualitySvc.EXPECT().Recompute(gomock.Any(), testAid, domain.TriggerAccept).
					Return(domain.QualityMetrics{}, nil)
			},
			wantAccepted: true,
		},
		{
			name: "再次调用取消采纳",
			uid:  testAsker,
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(accepted, nil)
				m.questionRepo.EXPECT().FindByID(gomock.Any(), testQid).Return(domain.Question{Id: testQid, Uid: testAsker}, nil)
				m.answerRepo.EXPECT().ToggleAccepted(gomock.Any(), testAid).Return(false, nil)
				m.qualitySvc.EXPECT().Recompute(gomock.Any(), testAid, domain.TriggerAccept).
					Return(domain.QualityMetrics{}, nil)
			},
			wantAccepted: false,
		},
		{
			name: "不是提问者",
			uid:  testAuthor,
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(testAnswer(), nil)
				m.questionRepo.EXPECT().FindByID(gomock.Any(), testQid).Return(domain.Question{Id: testQid, Uid: testAsker}, nil)
			},
			wantErr: ErrPermissionDenied,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newQAService(ctrl)
			tc.mock(m)
			res, err := svc.Accept(context.Background(), tc.uid, testAid)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantAccepted, res)
		})
	}
}

func TestService_React(t *testing.T) {
	testCases := []struct {
		name    string
		req     domain.Reaction
		mock    func(m qaMocks)
		wantErr error
	}{
		{
			name: "评价成功",
			req:  domain.Reaction{Aid: testAid, Uid: testAsker, Type: domain.ReactionHelpful},
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(testAnswer(), nil)
				m.answerRepo.EXPECT().SaveReaction(gomock.Any(), domain.Reaction{
					Aid: testAid, Uid: testAsker, Type: domain.ReactionHelpful,
				}).Return(nil)
				m.qualitySvc.EXPECT().Recompute(gomock.Any(), testAid, domain.TriggerReaction).
					Return(domain.QualityMetrics{}, nil)
			},
		},
		{
			name:    "非法的评价类型",
			req:     domain.Reaction{Aid: testAid, Uid: testAsker, Type: domain.ReactionUnknown},
			mock:    func(m qaMocks) {},
			wantErr: ErrInvalidReaction,
		},
		{
			name: "不能评价自己",
			req:  domain.Reaction{Aid: testAid, Uid: testAuthor, Type: domain.ReactionHelpful},
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(testAnswer(), nil)
			},
			wantErr: ErrInvalidReaction,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newQAService(ctrl)
			tc.mock(m)
			err := svc.React(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		uid     int64
		mock    func(m qaMocks)
		wantErr error
	}{
		{
			name: "作者删除",
			uid:  testAuthor,
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(testAnswer(), nil)
				// 删除和清理缓存都交给质量分服务，和重新计算互斥
				m.qualitySvc.EXPECT().Purge(gomock.Any(), testAid).Return(nil)
			},
		},
		{
			name: "不是作者",
			uid:  testAsker,
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(testAnswer(), nil)
			},
			wantErr: ErrPermissionDenied,
		},
		{
			name: "删除失败",
			uid:  testAuthor,
			mock: func(m qaMocks) {
				m.answerRepo.EXPECT().FindByID(gomock.Any(), testAid).Return(testAnswer(), nil)
				m.qualitySvc.EXPECT().Purge(gomock.Any(), testAid).Return(errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newQAService(ctrl)
			tc.mock(m)
			err := svc.Delete(context.Background(), tc.uid, testAid)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr.Error())
		})
	}
}

func TestService_ListByQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newQAService(ctrl)
	m.answerRepo.EXPECT().ListByQid(gomock.Any(), testQid).Return([]domain.Answer{
		{Id: 1, Qid: testQid},
		{Id: 2, Qid: testQid},
		{Id: 3, Qid: testQid},
		{Id: 4, Qid: testQid},
	}, nil)
	m.qualitySvc.EXPECT().GetByAids(gomock.Any(), []int64{1, 2, 3, 4}).
		Return(map[int64]domain.QualityMetrics{
			1: {Aid: 1, AQS: 40},
			2: {Aid: 2, AQS: 88},
			4: {Aid: 4, AQS: 40},
		}, nil)
	res, err := svc.ListByQuestion(context.Background(), testQid)
	require.NoError(t, err)
	ids := make([]int64, 0, len(res))
	for _, ra := range res {
		ids = append(ids, ra.Answer.Id)
	}
	assert.Equal(t, []int64{2, 1, 4, 3}, ids)
	assert.Nil(t, res[3].Metrics)
}
