package usecase

import (
	"context"
	"strings"

	"deals-service/internal/constants"
	"deals-service/internal/contextkeys"
	"deals-service/internal/core/domain"
	"deals-service/internal/core/port"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type GetDictionariesUseCase struct {
	repo  port.FilterOptionsRepositoryPort
	caser cases.Caser
}

func NewGetDictionariesUseCase(repo port.FilterOptionsRepositoryPort) *GetDictionariesUseCase {
	return &GetDictionariesUseCase{
		repo:  repo,
		caser: cases.Title(language.English),
	}
}

// Execute получает список имен справочников и возвращает их содержимое.
// Пустой список имен означает "все справочники".
func (uc *GetDictionariesUseCase) Execute(ctx context.Context, names []string) (map[string][]domain.DictionaryItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDictionaries",
	})

	ucLogger.Info("Use case started", nil)

	result := make(map[string][]domain.DictionaryItem)

	// Используем map для удобства проверки, какие справочники запрошены.
	namesMap := make(map[string]bool)
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			namesMap[trimmed] = true
		}
	}

	if namesMap[constants.DictionaryPropertyTypes] || len(namesMap) == 0 {
		types, err := uc.repo.GetDistinctPropertyTypes(ctx)
		if err != nil {
			ucLogger.Error("Storage returned an error while getting property types", err, nil)
		} else {
			result[constants.DictionaryPropertyTypes] = uc.toItems(types, constants.PropertyTypeLabels)
		}
	}

	if namesMap[constants.DictionaryLocations] || len(namesMap) == 0 {
		locations, err := uc.repo.GetDistinctLocations(ctx)
		if err != nil {
			ucLogger.Error("Storage returned an error while getting locations", err, nil)
		} else {
			result[constants.DictionaryLocations] = uc.toItems(locations, constants.LocationLabels)
		}
	}

	if namesMap[constants.DictionaryStatuses] || len(namesMap) == 0 {
		statuses, err := uc.repo.GetDistinctStatuses(ctx)
		if err != nil {
			ucLogger.Error("Storage returned an error while getting statuses", err, nil)
		} else {
			result[constants.DictionaryStatuses] = uc.toItems(statuses, constants.StatusLabels)
		}
	}

	return result, nil
}

// toItems собирает элементы справочника. Для незнакомого системного имени
// display-название генерируется тайтл-кейсом по дефисным частям
// ("mixed-use" -> "Mixed-Use").
func (uc *GetDictionariesUseCase) toItems(systemNames []string, labels map[string]string) []domain.DictionaryItem {
	items := make([]domain.DictionaryItem, 0, len(systemNames))
	for _, name := range systemNames {
		display, ok := labels[name]
		if !ok {
			parts := strings.Split(name, "-")
			for i, p := range parts {
				parts[i] = uc.caser.String(p)
			}
			display = strings.Join(parts, "-")
		}
		items = append(items, domain.DictionaryItem{
			SystemName:  name,
			DisplayName: display,
		})
	}
	return items
}
