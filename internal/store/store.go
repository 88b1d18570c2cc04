package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bess-pcr/internal/sim"
)

// RunRecord is the persisted summary of one simulation run.
type RunRecord struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	Label     string

	Samples     int
	FinalSOCPct float64

	FullCycleEquivalents float64
	TxChargedMWh         float64
	TxDischargedMWh      float64
	TotalChargedMWh      float64
	TotalDischargedMWh   float64
	PctChargedViaTx      float64
	PctDischargedViaTx   float64
}

// NewRunRecord builds a record from a finished run.
func NewRunRecord(label string, samples int, res *sim.Result) RunRecord {
	s := res.Summary
	return RunRecord{
		ID:                   uuid.NewString(),
		CreatedAt:            time.Now().UTC(),
		Label:                label,
		Samples:              samples,
		FinalSOCPct:          res.FinalSOCPct(),
		FullCycleEquivalents: s.FullCycleEquivalents,
		TxChargedMWh:         s.TxChargedMWh,
		TxDischargedMWh:      s.TxDischargedMWh,
		TotalChargedMWh:      s.TotalChargedMWh,
		TotalDischargedMWh:   s.TotalDischargedMWh,
		PctChargedViaTx:      s.PctChargedViaTx,
		PctDischargedViaTx:   s.PctDischargedViaTx,
	}
}

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("run not found")

// Store persists run summaries to a local sqlite file.
type Store struct {
	db *gorm.DB
}

func New(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) SaveRun(rec RunRecord) error {
	return s.db.Create(&rec).Error
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	var recs []RunRecord
	q := s.db.Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *Store) GetRun(id string) (*RunRecord, error) {
	var rec RunRecord
	err := s.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
