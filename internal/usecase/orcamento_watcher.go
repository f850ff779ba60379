package usecase

import (
	"context"
	"log"
	"reflect"
	"sync"
	"time"

	"oficina_mb/internal/domain/entities"
)

const defaultWatchInterval = 2 * time.Second

// OrcamentoSubscription is a live filtered query over orçamentos, modeled
// as an explicit resource: a goroutine polls the repository and delivers
// the full result set on Snapshots whenever it changes (the first snapshot
// arrives immediately). The owner must call Close when the consuming
// context loses interest; both channels are closed on release.
type OrcamentoSubscription struct {
	snapshots chan []entities.Orcamento
	errs      chan error
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// Snapshots yields the current result set after every observed change.
func (s *OrcamentoSubscription) Snapshots() <-chan []entities.Orcamento {
	return s.snapshots
}

// Errs reports transient poll failures; the subscription keeps polling
// after an error.
func (s *OrcamentoSubscription) Errs() <-chan error {
	return s.errs
}

// Close releases the subscription. Safe to call more than once.
func (s *OrcamentoSubscription) Close() {
	s.closeOnce.Do(s.cancel)
}

// Watch opens a subscription for the orçamentos in the given situação.
// interval <= 0 selects the default poll interval. The subscription is also
// torn down when ctx is cancelled.
func (u *OrcamentoUseCase) Watch(ctx context.Context, s entities.Situacao, interval time.Duration) (*OrcamentoSubscription, error) {
	if s != entities.SituacaoAberto && s != entities.SituacaoFechado {
		return nil, ErrInvalidSituacao
	}
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &OrcamentoSubscription{
		snapshots: make(chan []entities.Orcamento, 1),
		errs:      make(chan error, 1),
		cancel:    cancel,
	}

	go u.watchLoop(ctx, s, interval, sub)
	return sub, nil
}

func (u *OrcamentoUseCase) watchLoop(ctx context.Context, s entities.Situacao, interval time.Duration, sub *OrcamentoSubscription) {
	defer close(sub.snapshots)
	defer close(sub.errs)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last []entities.Orcamento
	delivered := false

	poll := func() {
		list, err := u.repo.ListBySituacao(ctx, s)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[orcamento][watch] poll failed situacao=%s err=%v", s, err)
			select {
			case sub.errs <- err:
			default:
			}
			return
		}
		if list == nil {
			list = []entities.Orcamento{}
		}
		if delivered && reflect.DeepEqual(last, list) {
			return
		}
		select {
		case sub.snapshots <- list:
			last = list
			delivered = true
		case <-ctx.Done():
		}
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}
