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
	repomocks "github.com/ecodeclub/jobmate/internal/qa/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExpertiseService_RefreshStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	answerRepo := repomocks.NewMockAnswerRepository(ctrl)
	expertiseRepo := repomocks.NewMockExpertiseRepository(ctrl)
	svc := NewExpertiseService(answerRepo, expertiseRepo)

	gomock.InOrder(
		answerRepo.EXPECT().AuthorStats(gomock.Any(), int64(0), 2).Return([]domain.AuthorStat{
			{Uid: 1, TotalAnswers: 30, AcceptedCount: 15},
			{Uid: 3, TotalAnswers: 30, AcceptedCount: 3},
		}, nil),
		expertiseRepo.EXPECT().SaveStats(gomock.Any(), []domain.ExpertiseProfile{
			{Uid: 1, TotalAnswers: 30, AcceptanceRate: 0.5, ExpertLevel: domain.ExpertLevelExpert},
			{Uid: 3, TotalAnswers: 30, AcceptanceRate: 0.1, ExpertLevel: domain.ExpertLevelIntermediate},
		}).Return(nil),
		answerRepo.EXPECT().AuthorStats(gomock.Any(), int64(3), 2).Return([]domain.AuthorStat{
			{Uid: 5, TotalAnswers: 2, AcceptedCount: 2},
		}, nil),
		expertiseRepo.EXPECT().SaveStats(gomock.Any(), []domain.ExpertiseProfile{
			{Uid: 5, TotalAnswers: 2, AcceptanceRate: 1, ExpertLevel: domain.ExpertLevelNovice},
		}).Return(nil),
	)
	cnt, err := svc.RefreshStats(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, cnt)
}

func TestExpertiseService_RefreshStatsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	answerRepo := repomocks.NewMockAnswerRepository(ctrl)
	expertiseRepo := repomocks.NewMockExpertiseRepository(ctrl)
	svc := NewExpertiseService(answerRepo, expertiseRepo)
	answerRepo.EXPECT().AuthorStats(gomock.Any(), int64(0), 100).
		Return(nil, errors.New("mock db error"))
	_, err := svc.RefreshStats(context.Background(), 0)
	assert.Error(t, err)
}

func TestExpertiseService_SaveStrength(t *testing.T) {
	testCases := []struct {
		name     string
		strength float64
		want     float64
	}{
		{name: "正常", strength: 66.5, want: 66.5},
		{name: "超过 100", strength: 130, want: 100},
		{name: "负数", strength: -3, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			expertiseRepo := repomocks.NewMockExpertiseRepository(ctrl)
			svc := NewExpertiseService(repomocks.NewMockAnswerRepository(ctrl), expertiseRepo)
			expertiseRepo.EXPECT().SaveStrength(gomock.Any(), int64(1), tc.want).Return(nil)
			require.NoError(t, svc.SaveStrength(context.Background(), 1, tc.strength))
		})
	}
}

func TestExpertLevel(t *testing.T) {
	assert.Equal(t, domain.ExpertLevelExpert, expertLevel(20, 0.4))
	assert.Equal(t, domain.ExpertLevelIntermediate, expertLevel(20, 0.39))
	assert.Equal(t, domain.ExpertLevelIntermediate, expertLevel(5, 0))
	assert.Equal(t, domain.ExpertLevelNovice, expertLevel(4, 1))
	assert.Equal(t, domain.ExpertLevelNovice, expertLevel(0, 0))
}
