// Package settings keeps per-property report configuration and report memos
// in a bbolt database.
package settings

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
)

// ErrNotFound is returned when a memo is not found.
var ErrNotFound = errors.New("record not found")

// Bucket names.
const (
	BucketReportSettings = "report_settings"
	BucketReportMemos    = "report_memos"
)

// Store represents the bbolt database wrapper.
type Store struct {
	db       *bolt.DB
	defaults *report.Settings
	now      func() time.Time
}

// New opens the database at dbPath and initializes buckets. defaults is
// returned for properties without stored settings; nil selects the built-in
// defaults.
func New(dbPath string, defaults *report.Settings) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{BucketReportSettings, BucketReportMemos} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if defaults == nil {
		defaults = report.DefaultSettings()
	}
	return &Store{db: db, defaults: defaults, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetClock replaces the time source used to stamp memos.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// ReportSettings returns the stored settings of the property, or a copy of
// the defaults when none are stored.
func (s *Store) ReportSettings(propertyID int64) (*report.Settings, error) {
	var settings *report.Settings
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(BucketReportSettings)).Get(itob(propertyID))
		if data == nil {
			return nil
		}
		settings = &report.Settings{}
		return json.Unmarshal(data, settings)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get report settings: %w", err)
	}
	if settings == nil {
		settings = s.defaults.Clone()
	}
	settings.PropertyID = propertyID
	return settings, nil
}

// PutReportSettings validates and stores the settings of the property.
func (s *Store) PutReportSettings(propertyID int64, settings *report.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	stored := settings.Clone()
	stored.PropertyID = propertyID

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(BucketReportSettings)).Put(itob(propertyID), data)
	})
}

// Memos lists the memos of the property ordered by field name.
func (s *Store) Memos(propertyID int64) ([]models.ReportMemo, error) {
	memos := []models.ReportMemo{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketReportMemos)).Bucket(itob(propertyID))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var m models.ReportMemo
			if err := json.Unmarshal(v, &m); err != nil {
				return err
			}
			memos = append(memos, m)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list memos: %w", err)
	}
	return memos, nil
}

// Memo returns one memo of the property.
func (s *Store) Memo(propertyID int64, field string) (*models.ReportMemo, error) {
	var memo *models.ReportMemo
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketReportMemos)).Bucket(itob(propertyID))
		if b == nil {
			return ErrNotFound
		}
		data := b.Get([]byte(field))
		if data == nil {
			return ErrNotFound
		}
		memo = &models.ReportMemo{}
		return json.Unmarshal(data, memo)
	})
	if err != nil {
		return nil, err
	}
	return memo, nil
}

// PutMemo sets the memo of a report field, creating it if needed.
func (s *Store) PutMemo(propertyID int64, field, value string) (*models.ReportMemo, error) {
	if field == "" {
		return nil, fmt.Errorf("%w: missing field", models.ErrValidation)
	}
	memo := &models.ReportMemo{
		PropertyID: propertyID,
		Field:      field,
		Value:      value,
		UpdatedAt:  s.now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(memo)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(BucketReportMemos)).CreateBucketIfNotExists(itob(propertyID))
		if err != nil {
			return err
		}
		return b.Put([]byte(field), data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save memo: %w", err)
	}
	return memo, nil
}

// itob converts an int64 to a byte slice for use as a bbolt key.
func itob(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
