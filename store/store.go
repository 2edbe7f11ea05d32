package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/osutil"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
)

const (
	stateBucket   = "state"
	historyBucket = "history"
	tagsBucket    = "tags"
	metaBucket    = "meta"

	snapshotKey      = "snapshot"
	catalogKey       = "catalog"
	schemaVersionKey = "schema_version"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// historyKey orders records by end time. The id suffix keeps records that
// end in the same instant apart.
func historyKey(r *models.FocusRecord) []byte {
	key := timeutil.ToKey(time.UnixMilli(r.EndTime))
	key = append(key, '_')

	return append(key, r.ID...)
}

func (c *Client) LoadSnapshot() ([]byte, error) {
	var b []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(stateBucket)).Get([]byte(snapshotKey))
		if v != nil {
			b = slices.Clone(v)
		}

		return nil
	})

	return b, err
}

func (c *Client) SaveSnapshot(b []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put([]byte(snapshotKey), b)
	})
}

func (c *Client) AppendHistory(r models.FocusRecord) error {
	value, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(historyBucket)).Put(historyKey(&r), value)
	})
}

func (c *Client) LoadHistory() ([]models.FocusRecord, error) {
	var records []models.FocusRecord

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(historyBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var r models.FocusRecord

			err := json.Unmarshal(v, &r)
			if err != nil {
				return errCorruptRecord.Fmt(string(k)).Wrap(err)
			}

			records = append(records, r)
		}

		return nil
	})

	return records, err
}

func (c *Client) DeleteHistory(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return c.Update(func(tx *bolt.Tx) error {
		return deleteHistory(tx.Bucket([]byte(historyBucket)), ids)
	})
}

// ReplaceHistory swaps the stored records sharing an id with records in a
// single transaction.
func (c *Client) ReplaceHistory(records []models.FocusRecord) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]string, 0, len(records))
	values := make([][]byte, 0, len(records))

	for i := range records {
		value, err := json.Marshal(records[i])
		if err != nil {
			return err
		}

		ids = append(ids, records[i].ID)
		values = append(values, value)
	}

	return c.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(historyBucket))

		err := deleteHistory(bucket, ids)
		if err != nil {
			return err
		}

		for i := range records {
			err = bucket.Put(historyKey(&records[i]), values[i])
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func deleteHistory(bucket *bolt.Bucket, ids []string) error {
	var keys [][]byte

	cur := bucket.Cursor()

	for k, _ := cur.First(); k != nil; k, _ = cur.Next() {
		i := bytes.LastIndexByte(k, '_')
		if i < 0 {
			continue
		}

		if slices.Contains(ids, string(k[i+1:])) {
			keys = append(keys, slices.Clone(k))
		}
	}

	for _, k := range keys {
		err := bucket.Delete(k)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) LoadTags() ([]models.Tag, error) {
	var tags []models.Tag

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(tagsBucket)).Get([]byte(catalogKey))
		if v == nil {
			return nil
		}

		tags = []models.Tag{}

		return json.Unmarshal(v, &tags)
	})

	return tags, err
}

func (c *Client) SaveTags(tags []models.Tag) error {
	if tags == nil {
		tags = []models.Tag{}
	}

	b, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(tagsBucket)).Put([]byte(catalogKey), b)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errFocusRunning
		}

		return nil, errOpenStore.Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{
		db,
	}

	// Create the necessary buckets for storing data if they do not exist
	// already, then bring older layouts up to date
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{
			stateBucket,
			historyBucket,
			tagsBucket,
			metaBucket,
		} {
			_, err = tx.CreateBucketIfNotExists([]byte(name))
			if err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
