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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository/cache"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./quality.go -package=repomocks -destination=./mocks/quality.mock.go QualityRepository
type QualityRepository interface {
	// Save 先写数据库，再刷新缓存。缓存失败不影响结果
	Save(ctx context.Context, m domain.QualityMetrics) error
	// Get 缓存未命中的时候直接读数据库，不回写缓存
	Get(ctx context.Context, aid int64) (domain.QualityMetrics, error)
	GetByAids(ctx context.Context, aids []int64) ([]domain.QualityMetrics, error)
	// Evict 回答删除之后清理缓存
	Evict(ctx context.Context, aid int64) error
}

type CachedQualityRepository struct {
	dao    dao.QualityDAO
	cache  cache.QualityCache
	logger *elog.Component
}

func NewCachedQualityRepository(d dao.QualityDAO, c cache.QualityCache) QualityRepository {
	return &CachedQualityRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedQualityRepository) Save(ctx context.Context, m domain.QualityMetrics) error {
	err := r.dao.Upsert(ctx, r.toEntity(m))
	if err != nil {
		return err
	}
	// 缓存只由 Save 写入，刷新失败就删掉旧值
	err = r.cache.Set(ctx, m)
	if err == nil {
		return nil
	}
	r.logger.Error("刷新质量分缓存失败",
		elog.FieldErr(err),
		elog.Int64("aid", m.Aid))
	if err = r.cache.Delete(ctx, m.Aid); err != nil {
		r.logger.Error("删除旧的质量分缓存失败",
			elog.FieldErr(err),
			elog.Int64("aid", m.Aid))
	}
	return nil
}

func (r *CachedQualityRepository) Get(ctx context.Context, aid int64) (domain.QualityMetrics, error) {
	res, err := r.cache.Get(ctx, aid)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrQualityNotFound) {
		r.logger.Error("查询质量分缓存失败",
			elog.FieldErr(err),
			elog.Int64("aid", aid))
	}
	m, err := r.dao.FindByAid(ctx, aid)
	if err != nil {
		return domain.QualityMetrics{}, err
	}
	return r.toDomain(m), nil
}

func (r *CachedQualityRepository) GetByAids(ctx context.Context, aids []int64) ([]domain.QualityMetrics, error) {
	ms, err := r.dao.FindByAids(ctx, aids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(idx int, src dao.QualityMetrics) domain.QualityMetrics {
		return r.toDomain(src)
	}), nil
}

func (r *CachedQualityRepository) Evict(ctx context.Context, aid int64) error {
	return r.cache.Delete(ctx, aid)
}

func (r *CachedQualityRepository) toEntity(m domain.QualityMetrics) dao.QualityMetrics {
	return dao.QualityMetrics{
		Aid:              m.Aid,
		ContentScore:     m.ContentScore,
		EngagementScore:  m.EngagementScore,
		ExpertScore:      m.ExpertScore,
		TrustScore:       m.TrustScore,
		ExpertMultiplier: m.ExpertMultiplier,
		Aqs:              m.AQS,
		Label:            m.Label.String(),
		Details: sqlx.JsonColumn[domain.Breakdown]{
			Val:   m.Details,
			Valid: true,
		},
		TriggerReason: m.Trigger.String(),
		ComputedAt:    m.ComputedAt.UnixMilli(),
	}
}

func (r *CachedQualityRepository) toDomain(m dao.QualityMetrics) domain.QualityMetrics {
	return domain.QualityMetrics{
		Aid:              m.Aid,
		ContentScore:     m.ContentScore,
		EngagementScore:  m.EngagementScore,
		ExpertScore:      m.ExpertScore,
		TrustScore:       m.TrustScore,
		ExpertMultiplier: m.ExpertMultiplier,
		AQS:              m.Aqs,
		Label:            domain.Label(m.Label),
		Details:          m.Details.Val,
		Trigger:          domain.Trigger(m.TriggerReason),
		ComputedAt:       toTime(m.ComputedAt),
	}
}
