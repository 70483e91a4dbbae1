package schedule

import (
	weave "github.com/iov-one/weave"
	"github.com/tendermint/tendermint/libs/common"
)

// Executor pays out due distributions at the beginning of every block,
// without anyone having to submit an execute message.
type Executor struct {
	distributor
}

var _ weave.Ticker = (*Executor)(nil)

// NewExecutor returns a ticker executing due schedule distributions.
func NewExecutor(ctrl CashController) *Executor {
	return &Executor{
		distributor: distributor{
			schedules: NewScheduleBucket(),
			ctrl:      ctrl,
		},
	}
}

// Tick implements the weave.Ticker interface. Every distribution runs
// within its own cache so that a single failure does not prevent the other
// schedules from being paid out.
func (e *Executor) Tick(ctx weave.Context, store weave.CacheableKVStore) weave.TickResult {
	var res weave.TickResult

	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		return res
	}
	ids, err := dueScheduleIDs(store, weave.AsUnixTime(blockTime))
	if err != nil {
		return res
	}
	for _, id := range ids {
		cache := store.CacheWrap()
		done, err := e.distribute(ctx, cache, id)
		if err != nil || !done {
			cache.Discard()
			continue
		}
		if err := cache.Write(); err != nil {
			cache.Discard()
			continue
		}
		res.Tags = append(res.Tags, common.KVPair{
			Key:   []byte("distribution"),
			Value: id,
		})
	}
	return res
}
