package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yhlin/n8n-consultant/models"
)

// Consultation is one stored consult run.
type Consultation struct {
	ID           int64
	Industry     string
	Department   string
	PainPoint    string
	SolutionID   string
	SolutionName string
	MatchScore   float64
	Difficulty   int
	CreatedAt    time.Time
}

// SaveConsultation records a completed roadmap and returns its row id.
func (db *DB) SaveConsultation(rm models.Roadmap) (int64, error) {
	payload, err := json.Marshal(rm)
	if err != nil {
		return 0, fmt.Errorf("failed to encode roadmap: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO consultations (industry, department, pain_point, solution_id, solution_name, match_score, difficulty, roadmap)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rm.Industry, rm.Department, rm.UserQuery, rm.SolutionID, rm.SolutionName, rm.MatchScore, rm.Difficulty, string(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to insert consultation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get consultation id: %w", err)
	}
	return id, nil
}

// ListConsultations returns the most recent consultations, newest first.
func (db *DB) ListConsultations(limit int) ([]Consultation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT consultation_id, industry, department, pain_point, solution_id, solution_name, match_score, difficulty, created_at
		FROM consultations
		ORDER BY consultation_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query consultations: %w", err)
	}
	defer rows.Close()

	var out []Consultation
	for rows.Next() {
		var c Consultation
		if err := rows.Scan(&c.ID, &c.Industry, &c.Department, &c.PainPoint,
			&c.SolutionID, &c.SolutionName, &c.MatchScore, &c.Difficulty, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan consultation: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetRoadmap loads the stored roadmap payload of one consultation.
func (db *DB) GetRoadmap(id int64) (*models.Roadmap, error) {
	var payload string
	err := db.QueryRow("SELECT roadmap FROM consultations WHERE consultation_id = ?", id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("consultation %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load consultation %d: %w", id, err)
	}

	var rm models.Roadmap
	if err := json.Unmarshal([]byte(payload), &rm); err != nil {
		return nil, fmt.Errorf("failed to decode roadmap %d: %w", id, err)
	}
	return &rm, nil
}
