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

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/notification/event"
	"github.com/ecodeclub/recruit/internal/pkg/mqx"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go StepStartedEventProducer
type StepStartedEventProducer interface {
	Produce(ctx context.Context, started domain.StepStarted) error
}

type stepStartedEventProducer struct {
	producer mqx.Producer[event.StepStartedEvent]
	node     *snowflake.Node
}

func NewStepStartedEventProducer(q mq.MQ, node *snowflake.Node) (StepStartedEventProducer, error) {
	p, err := mqx.NewJSONProducer[event.StepStartedEvent](q, event.StepStartedEventName)
	if err != nil {
		return nil, err
	}
	return &stepStartedEventProducer{producer: p, node: node}, nil
}

func (p *stepStartedEventProducer) Produce(ctx context.Context, started domain.StepStarted) error {
	return p.producer.Produce(ctx, newStepStartedEvent(p.node.Generate().Int64(), started))
}

func newStepStartedEvent(id int64, started domain.StepStarted) event.StepStartedEvent {
	return event.StepStartedEvent{
		EventID:    id,
		OfferID:    started.Offer.ID,
		OfferTitle: started.Offer.Title,
		StepID:     started.Step.ID,
		StepKind:   started.Step.Kind.String(),
		StepTitle:  started.Step.Title,
		Duration:   started.Step.Duration,
		Candidates: slice.Map(started.Applications, func(idx int, src domain.Application) event.Candidate {
			return event.Candidate{
				ApplicationID: src.ID,
				Uid:           src.Candidate.Uid,
				Name:          src.Candidate.Name,
				Email:         src.Candidate.Email,
				Phone:         src.Candidate.Phone,
			}
		}),
		Ctime: started.Step.Utime,
	}
}
