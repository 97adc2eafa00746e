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
	"fmt"

	"github.com/ecodeclub/jobmate/internal/qa/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*RefreshExpertiseProfileJob)(nil)

// RefreshExpertiseProfileJob 按作者汇总回答数和采纳率
type RefreshExpertiseProfileJob struct {
	svc       service.ExpertiseService
	batchSize int
	logger    *elog.Component
}

func NewRefreshExpertiseProfileJob(svc service.ExpertiseService, batchSize int) *RefreshExpertiseProfileJob {
	return &RefreshExpertiseProfileJob{
		svc:       svc,
		batchSize: batchSize,
		logger:    elog.DefaultLogger,
	}
}

func (j *RefreshExpertiseProfileJob) Name() string {
	return "RefreshExpertiseProfileJob"
}

func (j *RefreshExpertiseProfileJob) Run(ctx context.Context) error {
	cnt, err := j.svc.RefreshStats(ctx, j.batchSize)
	if err != nil {
		return fmt.Errorf("刷新作者专业度画像失败，已处理 %d 个作者: %w", cnt, err)
	}
	j.logger.Info("刷新作者专业度画像", elog.Int("count", cnt))
	return nil
}
