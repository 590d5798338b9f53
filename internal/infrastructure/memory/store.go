// Package memory implementa los puertos de persistencia sobre memoria de
// proceso: tests y ejecución local sin PostgreSQL. Mantiene el mismo contrato
// que la implementación pgx, incluido el layout del ledger: las transferencias
// son una secuencia append-only y la ubicación cacheada un índice mutable
// aparte, corregible por la reconciliación.
package memory

import (
	"sync"

	"github.com/jhoicas/custodia-api/internal/domain/entity"
)

// Store estado compartido de los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	categories map[string]entity.Category
	units      map[string]entity.OrgUnit
	assets     map[string]entity.Asset
	transfers  []entity.Transfer
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[string]entity.Category),
		units:      make(map[string]entity.OrgUnit),
		assets:     make(map[string]entity.Asset),
	}
}

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Units devuelve el repositorio de unidades organizacionales.
func (s *Store) Units() *OrgUnitRepo { return &OrgUnitRepo{s: s} }

// Assets devuelve el repositorio de activos.
func (s *Store) Assets() *AssetRepo { return &AssetRepo{s: s} }

// Transfers devuelve el repositorio del ledger.
func (s *Store) Transfers() *TransferRepo { return &TransferRepo{s: s} }

// Tx devuelve el runner transaccional sobre este almacén.
func (s *Store) Tx() *TxRunner { return &TxRunner{s: s} }

type snapshot struct {
	assets    map[string]entity.Asset
	transfers []entity.Transfer
}

// snapshotLocked copia activos y ledger. El caller sostiene mu.
func (s *Store) snapshotLocked() snapshot {
	assets := make(map[string]entity.Asset, len(s.assets))
	for id, a := range s.assets {
		assets[id] = a
	}
	transfers := make([]entity.Transfer, len(s.transfers))
	copy(transfers, s.transfers)
	return snapshot{assets: assets, transfers: transfers}
}

// restoreLocked revierte a la instantánea. El caller sostiene mu.
func (s *Store) restoreLocked(snap snapshot) {
	s.assets = snap.assets
	s.transfers = snap.transfers
}
