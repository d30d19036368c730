package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"deals-service/internal/contracts"
	"deals-service/internal/core/domain"
)

// Статический набор сделок — замена бэкенда. Репозиторий наполняется
// из него один раз при старте; никакого другого источника данных нет.
//
//go:embed deals.json
var dealsJSON []byte

// Load разбирает встроенный набор данных, проверяя каждую запись
// по JSON-схеме. Невалидная запись — ошибка старта, а не тихий пропуск.
func Load() ([]domain.Deal, error) {
	var rawRecords []json.RawMessage
	if err := json.Unmarshal(dealsJSON, &rawRecords); err != nil {
		return nil, fmt.Errorf("dataset: parse deals.json: %w", err)
	}

	deals := make([]domain.Deal, 0, len(rawRecords))
	for i, raw := range rawRecords {
		if err := contracts.ValidateRecord("Deal", "1.0.0", raw); err != nil {
			return nil, fmt.Errorf("dataset: record %d failed validation: %w", i, err)
		}

		var rec dealRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("dataset: decode record %d: %w", i, err)
		}

		deal, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("dataset: map record %d (%s): %w", i, rec.ID, err)
		}
		deals = append(deals, deal)
	}

	return deals, nil
}
