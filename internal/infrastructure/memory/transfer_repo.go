package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/custodia-api/internal/domain/entity"
	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo ledger de transferencias en memoria. Solo anexa: el contrato
// del repositorio no expone update ni delete.
type TransferRepo struct {
	s  *Store
	tx bool
}

func (r *TransferRepo) lock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *TransferRepo) rlock() func() {
	if r.tx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

// Create anexa la transferencia al final del ledger.
func (r *TransferRepo) Create(_ context.Context, transfer *entity.Transfer) error {
	defer r.lock()()
	r.s.transfers = append(r.s.transfers, *transfer)
	return nil
}

// ListByAsset devuelve el historial del activo del más antiguo al más
// reciente.
func (r *TransferRepo) ListByAsset(_ context.Context, assetID string) ([]*entity.Transfer, error) {
	defer r.rlock()()
	var out []*entity.Transfer
	for _, t := range r.s.transfers {
		if t.AssetID == assetID {
			tt := t
			out = append(out, &tt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

// ListRecent devuelve las últimas transferencias del ledger completo,
// de la más reciente a la más antigua.
func (r *TransferRepo) ListRecent(_ context.Context, limit int) ([]*entity.Transfer, error) {
	defer r.rlock()()
	out := make([]*entity.Transfer, 0, len(r.s.transfers))
	for _, t := range r.s.transfers {
		tt := t
		out = append(out, &tt)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// List filtra por dirección y devuelve la página pedida con el total,
// de la más reciente a la más antigua.
func (r *TransferRepo) List(_ context.Context, direction string, limit, offset int) ([]*entity.Transfer, int64, error) {
	defer r.rlock()()
	var matched []*entity.Transfer
	for _, t := range r.s.transfers {
		if direction != "" && t.Direction != direction {
			continue
		}
		tt := t
		matched = append(matched, &tt)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Timestamp.After(matched[j].Timestamp) })
	total := int64(len(matched))

	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}
