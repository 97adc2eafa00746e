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

package job

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository"
	repomocks "github.com/ecodeclub/jobmate/internal/qa/internal/repository/mocks"
	"github.com/ecodeclub/jobmate/internal/qa/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRefreshExpertiseProfileJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.AnswerRepository, repository.ExpertiseRepository)
		wantErr error
	}{
		{
			name: "刷新成功",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, repository.ExpertiseRepository) {
				answerRepo := repomocks.NewMockAnswerRepository(ctrl)
				expertiseRepo := repomocks.NewMockExpertiseRepository(ctrl)
				answerRepo.EXPECT().AuthorStats(gomock.Any(), int64(0), 2).
					Return([]domain.AuthorStat{{Uid: 1, TotalAnswers: 1}}, nil)
				expertiseRepo.EXPECT().SaveStats(gomock.Any(), gomock.Any()).Return(nil)
				return answerRepo, expertiseRepo
			},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) (repository.AnswerRepository, repository.ExpertiseRepository) {
				answerRepo := repomocks.NewMockAnswerRepository(ctrl)
				expertiseRepo := repomocks.NewMockExpertiseRepository(ctrl)
				answerRepo.EXPECT().AuthorStats(gomock.Any(), int64(0), 2).
					Return(nil, errors.New("mock db error"))
				return answerRepo, expertiseRepo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			answerRepo, expertiseRepo := tc.mock(ctrl)
			j := NewRefreshExpertiseProfileJob(service.NewExpertiseService(answerRepo, expertiseRepo), 2)
			assert.Equal(t, "RefreshExpertiseProfileJob", j.Name())
			err := j.Run(context.Background())
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr.Error())
		})
	}
}
