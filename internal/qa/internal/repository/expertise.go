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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository/dao"
)

//go:generate mockgen -source=./expertise.go -package=repomocks -destination=./mocks/expertise.mock.go ExpertiseRepository
type ExpertiseRepository interface {
	FindByUid(ctx context.Context, uid int64) (domain.ExpertiseProfile, error)
	SaveStats(ctx context.Context, profiles []domain.ExpertiseProfile) error
	SaveStrength(ctx context.Context, uid int64, strength float64) error
}

type expertiseRepository struct {
	dao dao.ExpertiseDAO
}

func NewExpertiseRepository(d dao.ExpertiseDAO) ExpertiseRepository {
	return &expertiseRepository{dao: d}
}

func (r *expertiseRepository) FindByUid(ctx context.Context, uid int64) (domain.ExpertiseProfile, error) {
	p, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.ExpertiseProfile{}, err
	}
	return domain.ExpertiseProfile{
		Uid:             p.Uid,
		TotalAnswers:    p.TotalAnswers,
		AcceptanceRate:  p.AcceptanceRate,
		ExpertLevel:     domain.ExpertLevel(p.ExpertLevel),
		ProfileStrength: p.ProfileStrength,
		Utime:           toTime(p.Utime),
	}, nil
}

func (r *expertiseRepository) SaveStats(ctx context.Context, profiles []domain.ExpertiseProfile) error {
	return r.dao.UpsertStats(ctx, slice.Map(profiles, func(idx int, src domain.ExpertiseProfile) dao.ExpertiseProfile {
		return dao.ExpertiseProfile{
			Uid:            src.Uid,
			TotalAnswers:   src.TotalAnswers,
			AcceptanceRate: src.AcceptanceRate,
			ExpertLevel:    string(src.ExpertLevel),
		}
	}))
}

func (r *expertiseRepository) SaveStrength(ctx context.Context, uid int64, strength float64) error {
	return r.dao.UpsertStrength(ctx, uid, strength)
}
