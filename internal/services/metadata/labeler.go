package metadata

import (
	"log/slog"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
)

// Label resolves every physical trait code of record through lookup. Codes
// the lookup does not know get UnknownLabel; the record is never dropped.
func Label(record *ipc.TokenRecord, lookup LabelLookup) *ipc.LabeledRecord {
	labeled := &ipc.LabeledRecord{Record: *record}

	for trait, category := range ipc.TraitCategories {
		code := int(record.Physical[trait])

		label, ok := lookup.Lookup(category, code)
		if !ok {
			slog.Debug("No label for trait code",
				"token_id", record.ID,
				"category", category,
				"code", code,
			)
			label = UnknownLabel
		}
		labeled.Labels.Set(trait, label)
	}

	return labeled
}
