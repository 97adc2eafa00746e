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

package event

import (
	"context"

	"github.com/ecodeclub/jobmate/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go QualityEventProducer
type QualityEventProducer interface {
	Produce(ctx context.Context, evt QualityEvent) error
}

// NewQualityEventProducer 按照 JSON 发送到 answer_quality_events
func NewQualityEventProducer(q mq.MQ) (QualityEventProducer, error) {
	p, err := mqx.NewGeneralProducer[QualityEvent](q, QualityTopic)
	if err != nil {
		return nil, err
	}
	return p, nil
}
