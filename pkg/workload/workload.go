// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workload

import (
	"context"
	"fmt"

	"ycsbgo/pkg/generator"
	"ycsbgo/pkg/ycsb"
)

// keyChooser is satisfied by any generator that samples key numbers.
type keyChooser interface {
	Next() uint64
}

// Workload holds one worker's private generator state plus references to
// the two counters shared across every worker that performs transactional
// inserts: the load-phase insert counter and the run-phase
// transaction-insert acknowledged counter.
//
// Per the "workload-to-worker borrowing" design note, each worker gets its
// own Workload (via New); only InsertCounter and TxInsertCounter are
// shared, and both are internally synchronized.
type Workload struct {
	cfg Config

	InsertCounter   *generator.Counter
	TxInsertCounter *generator.AcknowledgedCounter

	keyChooser    keyChooser
	scanLenChooser keyChooser
	fieldChooser  *generator.Uniform
	fieldLen      *generator.FieldLength
	randomByte    *generator.RandomByte
	opChooser     *generator.Discrete[ycsb.OpKind]
}

// Shared bundles the state every per-worker Workload must share with its
// siblings: the two monotonic counters gating insert key allocation.
type Shared struct {
	InsertCounter   *generator.Counter
	TxInsertCounter *generator.AcknowledgedCounter
}

// NewShared builds the counters a run's workers all share, per cfg.
func NewShared(cfg Config) *Shared {
	return &Shared{
		InsertCounter:   generator.NewCounter(cfg.InsertStart),
		TxInsertCounter: generator.NewAcknowledgedCounter(cfg.RecordCount),
	}
}

// New builds one worker's private Workload, wired to the shared counters.
func New(cfg Config, shared *Shared) (*Workload, error) {
	w := &Workload{
		cfg:             cfg,
		InsertCounter:   shared.InsertCounter,
		TxInsertCounter: shared.TxInsertCounter,
		randomByte:      generator.NewRandomByte(),
	}

	fieldLen, err := generator.NewFieldLength(cfg.FieldLengthDist, cfg.FieldLength)
	if err != nil {
		return nil, err
	}
	w.fieldLen = fieldLen

	if cfg.FieldCount > 0 {
		w.fieldChooser = generator.NewUniform(0, uint64(cfg.FieldCount-1))
	}

	scanLen, err := buildScanLengthChooser(cfg)
	if err != nil {
		return nil, err
	}
	w.scanLenChooser = scanLen

	keyChooser, err := buildKeyChooser(cfg, shared.TxInsertCounter)
	if err != nil {
		return nil, err
	}
	w.keyChooser = keyChooser

	w.opChooser = buildOpChooser(cfg)

	return w, nil
}

func buildScanLengthChooser(cfg Config) (keyChooser, error) {
	switch cfg.ScanLengthDistribution {
	case "", "uniform":
		return generator.NewUniform(cfg.MinScanLength, cfg.MaxScanLength), nil
	case "zipfian":
		return generator.NewZipfian(cfg.MinScanLength, cfg.MaxScanLength)
	default:
		return nil, fmt.Errorf("workload: unknown scanlengthdistribution %q", cfg.ScanLengthDistribution)
	}
}

// buildKeyChooser sizes the zipfian request-key space with a 2x margin
// over the insert proportion so NextTransactionKeyNum's reject loop
// terminates with probability 1.
func buildKeyChooser(cfg Config, txCounter *generator.AcknowledgedCounter) (keyChooser, error) {
	switch cfg.RequestDistribution {
	case "", "uniform":
		max := cfg.RecordCount
		if max == 0 {
			max = 1
		}
		return generator.NewUniform(0, max-1), nil
	case "zipfian":
		margin := uint64(float64(cfg.OperationCount) * cfg.InsertProportion * 2)
		max := cfg.RecordCount + margin
		if max < 2 {
			max = 2
		}
		return generator.NewScrambledZipfianTheta(0, max-1, cfg.ZipfianConst)
	case "latest":
		return generator.NewSkewedLatest(txCounter)
	default:
		return nil, fmt.Errorf("workload: unknown requestdistribution %q", cfg.RequestDistribution)
	}
}

func buildOpChooser(cfg Config) *generator.Discrete[ycsb.OpKind] {
	d := generator.NewDiscrete[ycsb.OpKind]()
	add := func(kind ycsb.OpKind, weight float64) {
		if weight > 0 {
			d.Add(kind, weight)
		}
	}
	add(ycsb.OpRead, cfg.ReadProportion)
	add(ycsb.OpUpdate, cfg.UpdateProportion)
	add(ycsb.OpInsert, cfg.InsertProportion)
	add(ycsb.OpScan, cfg.ScanProportion)
	add(ycsb.OpReadModifyWrite, cfg.ReadModifyWriteProportion)
	add(ycsb.OpDelete, cfg.DeleteProportion)
	return d
}

// buildKey renders keyNum into the textual record key per this workload's
// insert-order and zero-padding configuration.
func (w *Workload) buildKey(keyNum uint64) string {
	return buildKeyName(keyNum, w.cfg.InsertOrderHashed, w.cfg.ZeroPadding)
}

// NextTransactionKeyNum draws from the key chooser, discarding samples
// that reference not-yet-acknowledged keys. Terminates with probability 1
// because the chooser's range carries a safety margin over the
// transaction-insert watermark.
func (w *Workload) NextTransactionKeyNum() uint64 {
	last := w.TxInsertCounter.Last()
	for {
		v := w.keyChooser.Next()
		if v <= last {
			return v
		}
		last = w.TxInsertCounter.Last()
	}
}

// DoInsert draws the next key number from the (ungated) insert counter,
// builds a full record, and inserts it. Used by the load phase.
func (w *Workload) DoInsert(ctx context.Context, db *ycsb.Wrapper) bool {
	keyNum := w.InsertCounter.Next()
	key := w.buildKey(keyNum)
	values := buildValues(w.cfg.FieldNamePrefix, w.cfg.FieldCount, w.fieldLen, w.randomByte)
	status, _ := db.Insert(ctx, w.cfg.Table, key, values)
	return status == ycsb.StatusOK
}

// DoTransaction samples an operation kind and dispatches it against db.
// Returns whether the operation was considered successful.
func (w *Workload) DoTransaction(ctx context.Context, db *ycsb.Wrapper) bool {
	switch w.opChooser.Next() {
	case ycsb.OpRead:
		return w.transactionRead(ctx, db)
	case ycsb.OpUpdate:
		return w.transactionUpdate(ctx, db)
	case ycsb.OpInsert:
		return w.transactionInsert(ctx, db)
	case ycsb.OpScan:
		return w.transactionScan(ctx, db)
	case ycsb.OpReadModifyWrite:
		return w.transactionReadModifyWrite(ctx, db)
	case ycsb.OpDelete:
		return w.transactionDelete(ctx, db)
	default:
		return false
	}
}

func (w *Workload) transactionRead(ctx context.Context, db *ycsb.Wrapper) bool {
	keyNum := w.NextTransactionKeyNum()
	key := w.buildKey(keyNum)
	var fields []string
	if !w.cfg.ReadAllFields && w.fieldChooser != nil {
		fields = []string{fieldName(w.cfg.FieldNamePrefix, int(w.fieldChooser.Next()))}
	}
	status, _, _ := db.Read(ctx, w.cfg.Table, key, fields)
	return status == ycsb.StatusOK
}

func (w *Workload) transactionScan(ctx context.Context, db *ycsb.Wrapper) bool {
	keyNum := w.NextTransactionKeyNum()
	key := w.buildKey(keyNum)
	length := int(w.scanLenChooser.Next())
	var fields []string
	if !w.cfg.ReadAllFields && w.fieldChooser != nil {
		fields = []string{fieldName(w.cfg.FieldNamePrefix, int(w.fieldChooser.Next()))}
	}
	status, _, _ := db.Scan(ctx, w.cfg.Table, key, length, fields)
	return status == ycsb.StatusOK
}

func (w *Workload) transactionUpdate(ctx context.Context, db *ycsb.Wrapper) bool {
	keyNum := w.NextTransactionKeyNum()
	key := w.buildKey(keyNum)
	values := w.buildUpdateValues()
	status, _ := db.Update(ctx, w.cfg.Table, key, values)
	return status == ycsb.StatusOK
}

func (w *Workload) transactionReadModifyWrite(ctx context.Context, db *ycsb.Wrapper) bool {
	keyNum := w.NextTransactionKeyNum()
	key := w.buildKey(keyNum)
	var readFields []string
	if !w.cfg.ReadAllFields && w.fieldChooser != nil {
		readFields = []string{fieldName(w.cfg.FieldNamePrefix, int(w.fieldChooser.Next()))}
	}
	db.Read(ctx, w.cfg.Table, key, readFields)
	values := w.buildUpdateValues()
	status, _ := db.Update(ctx, w.cfg.Table, key, values)
	return status == ycsb.StatusOK
}

func (w *Workload) transactionDelete(ctx context.Context, db *ycsb.Wrapper) bool {
	keyNum := w.NextTransactionKeyNum()
	key := w.buildKey(keyNum)
	status, _ := db.Delete(ctx, w.cfg.Table, key)
	return status == ycsb.StatusOK
}

// transactionInsert draws the next key from the transaction-insert
// counter, inserts, and acknowledges the key number regardless of the
// insert's outcome — see DESIGN.md's Open Question #1 decision.
func (w *Workload) transactionInsert(ctx context.Context, db *ycsb.Wrapper) bool {
	keyNum := w.TxInsertCounter.Next()
	key := w.buildKey(keyNum)
	values := buildValues(w.cfg.FieldNamePrefix, w.cfg.FieldCount, w.fieldLen, w.randomByte)
	status, _ := db.Insert(ctx, w.cfg.Table, key, values)
	if err := w.TxInsertCounter.Acknowledge(keyNum); err != nil {
		panic(err)
	}
	return status == ycsb.StatusOK
}

func (w *Workload) buildUpdateValues() []ycsb.Field {
	if w.cfg.WriteAllFields {
		return buildValues(w.cfg.FieldNamePrefix, w.cfg.FieldCount, w.fieldLen, w.randomByte)
	}
	return buildSingleValue(w.cfg.FieldNamePrefix, w.fieldChooser, w.fieldLen, w.randomByte)
}
