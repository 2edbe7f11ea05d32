package store

import (
	"bytes"
	"encoding/json"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/ayoisaiah/focusflow/internal/models"
)

const schemaVersion = 1

// rekeyHistory rewrites history entries whose key does not match the
// end-time ordering, such as records imported by hand.
func rekeyHistory(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(historyBucket))

	type entry struct {
		key, value []byte
		record     models.FocusRecord
	}

	var stale []entry

	cur := bucket.Cursor()

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		var r models.FocusRecord

		err := json.Unmarshal(v, &r)
		if err != nil {
			return errCorruptRecord.Fmt(string(k)).Wrap(err)
		}

		if !bytes.Equal(k, historyKey(&r)) {
			stale = append(stale, entry{
				key:    bytes.Clone(k),
				value:  bytes.Clone(v),
				record: r,
			})
		}
	}

	for i := range stale {
		err := bucket.Delete(stale[i].key)
		if err != nil {
			return err
		}

		err = bucket.Put(historyKey(&stale[i].record), stale[i].value)
		if err != nil {
			return err
		}
	}

	return nil
}

func storedVersion(tx *bbolt.Tx) int {
	v := tx.Bucket([]byte(metaBucket)).Get([]byte(schemaVersionKey))

	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0
	}

	return n
}

func (c *Client) migrate(tx *bbolt.Tx) error {
	if storedVersion(tx) >= schemaVersion {
		return nil
	}

	err := rekeyHistory(tx)
	if err != nil {
		return err
	}

	return tx.Bucket([]byte(metaBucket)).Put(
		[]byte(schemaVersionKey),
		[]byte(strconv.Itoa(schemaVersion)),
	)
}
