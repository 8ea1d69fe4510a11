package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quotes-api/models"
	"quotes-api/storage"
)

// BackupService writes timestamped JSON snapshots of every collection
// to the backup directory. It runs on a cron schedule and can also be
// triggered on demand.
type BackupService struct {
	store storage.Store
	dir   string
}

func NewBackupService(store storage.Store, dir string) *BackupService {
	return &BackupService{store: store, dir: dir}
}

type backupSnapshot struct {
	CreatedAt    time.Time                       `json:"createdAt"`
	Products     []models.Product                `json:"products"`
	Budgets      []models.Budget                 `json:"budgets"`
	Calculations []models.ConsumptionCalculation `json:"calculations"`
}

// Run takes a snapshot and returns the path of the written file.
func (s *BackupService) Run() (string, error) {
	snapshot := backupSnapshot{
		CreatedAt:    time.Now(),
		Products:     []models.Product{},
		Budgets:      []models.Budget{},
		Calculations: []models.ConsumptionCalculation{},
	}
	if err := s.store.Get(storage.KeyProducts, &snapshot.Products); err != nil {
		return "", err
	}
	if err := s.store.Get(storage.KeyBudgets, &snapshot.Budgets); err != nil {
		return "", err
	}
	if err := s.store.Get(storage.KeyCalculations, &snapshot.Calculations); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}

	name := "backup-" + snapshot.CreatedAt.Format("20060102-150405") + ".json"
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}
