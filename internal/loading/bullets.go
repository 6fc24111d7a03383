package loading

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-recommender/internal/types"
)

// charsPerLine is the estimated number of characters per rendered resume line,
// used when a bullet record carries no line count of its own.
const charsPerLine = 100

// LoadBulletPool loads a bullet pool from a JSON file and normalizes it.
func LoadBulletPool(path string) (*types.BulletPool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var pool types.BulletPool
	if err := json.Unmarshal(content, &pool); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := NormalizeBulletPool(&pool); err != nil {
		return nil, err
	}
	return &pool, nil
}

// NormalizeBulletPool validates every record and fills derived fields: the
// owning role name, a generated ID for records that carry none, and an
// estimated line count when lines is zero.
func NormalizeBulletPool(pool *types.BulletPool) error {
	if len(pool.Roles) == 0 {
		return &NormalizationError{Message: "bullet pool has no roles"}
	}

	validate := validator.New()
	for role, records := range pool.Roles {
		for i := range records {
			record := &records[i]
			if err := validate.Struct(record); err != nil {
				return &NormalizationError{
					Message: fmt.Sprintf("invalid bullet %d in role '%s'", i, role),
					Cause:   err,
				}
			}
			record.Role = role
			if record.ID == "" {
				record.ID = uuid.New().String()
			}
			if record.Lines <= 0 {
				record.Lines = estimateLines(record.Text)
			}
		}
	}
	return nil
}

func estimateLines(text string) int {
	if len(text) == 0 {
		return 1
	}
	return int(math.Ceil(float64(len(text)) / charsPerLine))
}
