// ABOUTME: Export functionality for training log data.
// ABOUTME: Supports JSON and YAML export of both partitions plus weight history.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/biome/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for training data.
type ExportData struct {
	Version       string               `json:"version" yaml:"version"`
	ExportedAt    time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool          string               `json:"tool" yaml:"tool"`
	Entries       []*models.SetEntry   `json:"entries" yaml:"entries"`
	WeightHistory []models.WeightEntry `json:"weight_history" yaml:"weight_history"`
}

// GetAllData retrieves the primary partition and weight history for export.
// Demo data is seed material and deliberately excluded from backups.
func (d *DB) GetAllData() (*ExportData, error) {
	entries, err := d.Entries(PartitionPrimary)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	weights, err := d.WeightHistory()
	if err != nil {
		return nil, fmt.Errorf("weight history: %w", err)
	}

	return &ExportData{
		Version:       "1.0",
		ExportedAt:    time.Now(),
		Tool:          "biome",
		Entries:       entries,
		WeightHistory: weights,
	}, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}
