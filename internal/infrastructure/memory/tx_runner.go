package memory

import (
	"context"

	"github.com/jhoicas/custodia-api/internal/domain/repository"
)

// TxRunner ejecuta el callback con repositorios atados al almacén bajo su
// lock exclusivo. Antes de ejecutar toma una instantánea de activos y ledger;
// si el callback falla la restaura, de modo que el lote de escrituras se
// publica completo o no se publica.
type TxRunner struct {
	s *Store
}

// Run ejecuta fn como una transacción sobre el almacén en memoria.
func (t *TxRunner) Run(_ context.Context, fn func(assetRepo repository.AssetRepository, transferRepo repository.TransferRepository) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	snap := t.s.snapshotLocked()
	if err := fn(&AssetRepo{s: t.s, tx: true}, &TransferRepo{s: t.s, tx: true}); err != nil {
		t.s.restoreLocked(snap)
		return err
	}
	return nil
}
