package inventory

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/excel"
)

// Snapshot is one immutable build of the inventory. Readers hold a
// snapshot reference and are never affected by later rebuilds.
type Snapshot struct {
	Units    map[string]model.UnitRecord
	Sources  []model.Source
	Version  uint64
	BuiltAt  time.Time
	identity string
}

// Lookup returns the record for a trimmed unit id.
func (s *Snapshot) Lookup(id string) (model.UnitRecord, bool) {
	rec, ok := s.Units[id]
	return rec, ok
}

// CountByStatus tallies units per status.
func (s *Snapshot) CountByStatus() map[model.Status]int {
	counts := make(map[model.Status]int, 3)
	for _, rec := range s.Units {
		counts[rec.Status]++
	}
	return counts
}

// Builder produces inventory snapshots from tabular sources.
// Building is a pure function of the source contents: the same files
// always yield the same snapshot.
type Builder struct {
	normalizer *excel.Normalizer
}

// NewBuilder creates a builder using the given column schema.
func NewBuilder(schema excel.ColumnSchema) *Builder {
	return &Builder{normalizer: excel.NewNormalizer(schema)}
}

// Build assembles a snapshot from the given sources. Master sources are
// applied first and introduce records as sold; vacancy sources then flip
// (or insert) records as available; a legacy source introduces every row
// as available. A missing or unreadable workbook contributes nothing.
// Build never fails.
func (b *Builder) Build(sources []model.Source) *Snapshot {
	units := make(map[string]model.UnitRecord)

	ordered := make([]model.Source, 0, len(sources))
	for _, src := range sources {
		if src.Role == model.RoleMaster {
			ordered = append(ordered, src)
		}
	}
	for _, src := range sources {
		if src.Role != model.RoleMaster {
			ordered = append(ordered, src)
		}
	}

	for _, src := range ordered {
		rows, err := excel.ReadRows(src.Path)
		if err != nil {
			logrus.WithField("source", src.Path).WithError(err).
				Warn("source workbook unreadable, skipping")
			continue
		}
		b.applyRows(units, rows, src.Role)
	}

	return &Snapshot{
		Units:    units,
		Sources:  sources,
		BuiltAt:  time.Now(),
		identity: sourceIdentity(sources),
	}
}

func (b *Builder) applyRows(units map[string]model.UnitRecord, rows [][]string, role model.SourceRole) {
	for _, row := range rows {
		rec, err := b.normalizer.NormalizeRow(row)
		if errors.Is(err, excel.ErrNoID) {
			continue
		}

		switch role {
		case model.RoleMaster:
			rec.Status = model.StatusSold
			units[rec.ID] = rec
		case model.RoleVacancy:
			if existing, ok := units[rec.ID]; ok {
				existing.Status = model.StatusAvailable
				units[rec.ID] = existing
			} else {
				rec.Status = model.StatusAvailable
				units[rec.ID] = rec
			}
		default: // legacy single-file mode
			rec.Status = model.StatusAvailable
			units[rec.ID] = rec
		}
	}
}

// sourceIdentity fingerprints the source set so the cache can tell when
// the underlying files changed. Stat failures fold into the identity,
// which forces a rebuild once the file reappears.
func sourceIdentity(sources []model.Source) string {
	identity := ""
	for _, src := range sources {
		identity += string(src.Role) + "|" + src.Path + "|"
		if info, err := os.Stat(src.Path); err == nil {
			identity += info.ModTime().UTC().String() + "|"
			identity += strconv.FormatInt(info.Size(), 10) + "|"
		} else {
			identity += "missing|"
		}
	}
	return identity
}
