package etl

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"fuelprices/internal/observability"
	"fuelprices/internal/runstate"
)

// Stage é um passo do pipeline: o estado que ele representa e a função que o
// executa.
type Stage struct {
	State runstate.State
	Run   func() error
}

// Pipeline executa os estágios em sequência estrita: cada um só começa depois
// do anterior terminar, e o primeiro erro encerra a execução. Não há retry nem
// resume dentro de uma execução; o agendador externo recomeça do zero.
type Pipeline struct {
	RunID   string
	Tracker runstate.Tracker
	Stages  []Stage
}

func NewPipeline(stages []Stage, tracker runstate.Tracker) *Pipeline {
	return &Pipeline{
		RunID:   uuid.NewString(),
		Tracker: tracker,
		Stages:  stages,
	}
}

func (p *Pipeline) Run() error {
	p.track(runstate.Pending, nil)

	for _, s := range p.Stages {
		p.track(s.State, nil)
		start := time.Now()
		err := s.Run()
		observability.StageDuration.WithLabelValues(string(s.State)).Observe(time.Since(start).Seconds())
		if err != nil {
			p.track(runstate.Failed, err)
			observability.RunsTotal.WithLabelValues("failed").Inc()
			return fmt.Errorf("%s: %w", s.State, err)
		}
	}

	p.track(runstate.Succeeded, nil)
	observability.RunsTotal.WithLabelValues("succeeded").Inc()
	return nil
}

func (p *Pipeline) track(state runstate.State, cause error) {
	if p.Tracker == nil {
		return
	}
	if err := p.Tracker.SetState(p.RunID, state, cause); err != nil {
		log.Printf("run %s: não foi possível registrar estado %s: %v", p.RunID, state, err)
	}
}
