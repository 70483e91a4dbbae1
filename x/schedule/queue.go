package schedule

import (
	"encoding/binary"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Due distributions are tracked in a queue outside of the schedule bucket
// so that they can be found with a single prefix scan. Queue keys order by
// execution time.
var queuePrefix = []byte("_s:distqueue:")

func queueKey(runAt weave.UnixTime, scheduleID []byte) []byte {
	key := make([]byte, 0, len(queuePrefix)+8+len(scheduleID))
	key = append(key, queuePrefix...)
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(runAt))
	key = append(key, ts[:]...)
	return append(key, scheduleID...)
}

func enqueue(db weave.KVStore, runAt weave.UnixTime, scheduleID []byte) error {
	return db.Set(queueKey(runAt, scheduleID), scheduleID)
}

func dequeue(db weave.KVStore, runAt weave.UnixTime, scheduleID []byte) error {
	return db.Delete(queueKey(runAt, scheduleID))
}

// dueScheduleIDs returns the ids of all schedules queued for execution not
// later than the given time.
func dueScheduleIDs(db weave.ReadOnlyKVStore, now weave.UnixTime) ([][]byte, error) {
	since := queueKey(0, nil)
	until := queueKey(now+1, nil)
	it, err := db.Iterator(since, until)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create iterator")
	}
	defer it.Release()

	var ids [][]byte
	for {
		switch _, value, err := it.Next(); {
		case err == nil:
			ids = append(ids, value)
		case errors.ErrIteratorDone.Is(err):
			return ids, nil
		default:
			return nil, errors.Wrap(err, "cannot get next queue item")
		}
	}
}
