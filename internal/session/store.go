// Package session owns the authenticated-session context and its local
// durability: the session cookie that keeps the player logged in across
// invocations, and the workflow bundles cached by notification id so an
// interrupted flow can resume. Everything else the client displays is
// re-fetched; this store is deliberately tiny.
package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// ErrNoBundle means no cached bundle exists for the notification.
var ErrNoBundle = errors.New("no cached bundle")

// CookieRecord persists the cookie set for one backend host.
type CookieRecord struct {
	gorm.Model
	Host    string `gorm:"uniqueIndex"`
	Payload []byte
}

// BundleRecord caches one assembled workflow bundle.
type BundleRecord struct {
	gorm.Model
	Key            string `gorm:"uniqueIndex"`
	NotificationID string `gorm:"index"`
	Kind           string
	Payload        []byte
}

// Store is the sqlite-backed local cache.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open creates or opens the store at path and migrates its schema.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DSN:        path,
		DriverName: "sqlite",
	}), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&CookieRecord{}, &BundleRecord{}); err != nil {
		return nil, err
	}
	return &Store{
		db:  db,
		log: logger.With().Str("module", "session").Str("component", "store").Logger(),
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveCookies persists the cookie set for a host, replacing any previous
// set.
func (s *Store) SaveCookies(host string, cookies []*http.Cookie) error {
	buf, err := json.Marshal(cookies)
	if err != nil {
		return err
	}
	var rec CookieRecord
	return s.db.Where(CookieRecord{Host: host}).
		Assign(CookieRecord{Host: host, Payload: buf}).
		FirstOrCreate(&rec).Error
}

// LoadCookies returns the persisted cookie set for a host, or nil when none
// exists.
func (s *Store) LoadCookies(host string) ([]*http.Cookie, error) {
	var rec CookieRecord
	err := s.db.Where("host = ?", host).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cookies []*http.Cookie
	if err := json.Unmarshal(rec.Payload, &cookies); err != nil {
		return nil, err
	}
	return cookies, nil
}

// ClearCookies drops the persisted cookie set for a host.
func (s *Store) ClearCookies(host string) error {
	return s.db.Unscoped().Where("host = ?", host).Delete(&CookieRecord{}).Error
}

// SaveBundle caches a workflow bundle keyed by notification id, replacing
// any previous bundle for the same notification.
func (s *Store) SaveBundle(kind, notificationID string, payload any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("notification_id = ?", notificationID).Delete(&BundleRecord{}).Error; err != nil {
			return err
		}
		return tx.Create(&BundleRecord{
			Key:            uuid.NewString(),
			NotificationID: notificationID,
			Kind:           kind,
			Payload:        buf,
		}).Error
	})
}

// LoadBundle decodes the cached bundle for a notification into out. The
// kind must match what was saved; a mismatch means the notification id was
// reused for a different flow and the cache entry is stale.
func (s *Store) LoadBundle(kind, notificationID string, out any) error {
	var rec BundleRecord
	err := s.db.Where("notification_id = ?", notificationID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoBundle
	}
	if err != nil {
		return err
	}
	if rec.Kind != kind {
		return ErrNoBundle
	}
	return json.Unmarshal(rec.Payload, out)
}

// DeleteBundle drops the cached bundle for a notification, if any.
func (s *Store) DeleteBundle(notificationID string) error {
	return s.db.Unscoped().Where("notification_id = ?", notificationID).Delete(&BundleRecord{}).Error
}

// ClearBundles drops every cached bundle; used on logout.
func (s *Store) ClearBundles() error {
	return s.db.Unscoped().Where("1 = 1").Delete(&BundleRecord{}).Error
}
