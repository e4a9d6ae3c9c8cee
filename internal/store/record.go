package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clauselab/smartclause/internal/clause"
)

// DecisionRecord is one row of the audit log.
type DecisionRecord struct {
	ID             string
	ClauseID       string
	EvaluatedAt    time.Time
	GoodsValue     decimal.Decimal
	DelayHours     float64
	Periods        int64
	RawPercent     decimal.Decimal
	AppliedPercent decimal.Decimal
	PenaltyAmount  decimal.Decimal
	MayTerminate   bool
	ForceMajeure   bool
}

// Append records one evaluation outcome. A fresh uuid is assigned and
// returned in the stored record.
func (s *Store) Append(ctx context.Context, params *clause.Parameters, req *clause.Request, dec clause.Decision) (DecisionRecord, error) {
	rec := DecisionRecord{
		ID:             uuid.NewString(),
		ClauseID:       params.ClauseID,
		EvaluatedAt:    dec.EvaluatedAt,
		GoodsValue:     req.GoodsValue,
		DelayHours:     req.Delay.Hours(),
		Periods:        dec.Periods,
		RawPercent:     dec.RawPercent,
		AppliedPercent: dec.AppliedPercent,
		PenaltyAmount:  dec.PenaltyAmount,
		MayTerminate:   dec.BuyerMayTerminate,
		ForceMajeure:   params.ForceMajeureActive,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decisions
		(id, clause_id, evaluated_at, goods_value, delay_hours, periods,
		 raw_percent, applied_percent, penalty_amount, may_terminate, force_majeure)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.ClauseID,
		rec.EvaluatedAt.Format(time.RFC3339Nano),
		rec.GoodsValue.String(),
		rec.DelayHours,
		rec.Periods,
		rec.RawPercent.String(),
		rec.AppliedPercent.String(),
		rec.PenaltyAmount.String(),
		boolToInt(rec.MayTerminate),
		boolToInt(rec.ForceMajeure),
	)
	if err != nil {
		return DecisionRecord{}, fmt.Errorf("append decision: %w", err)
	}

	return rec, nil
}

// List returns logged decisions, newest first. When clauseID is
// non-empty only that clause's rows are returned. Returns an empty
// slice (not nil) when nothing matches.
func (s *Store) List(ctx context.Context, clauseID string) ([]DecisionRecord, error) {
	query := `
		SELECT id, clause_id, evaluated_at, goods_value, delay_hours, periods,
		       raw_percent, applied_percent, penalty_amount, may_terminate, force_majeure
		FROM decisions
	`
	var args []any
	if clauseID != "" {
		query += " WHERE clause_id = ?"
		args = append(args, clauseID)
	}
	query += " ORDER BY evaluated_at DESC, id COLLATE BINARY ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	records := []DecisionRecord{}
	for rows.Next() {
		rec, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decisions: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDecision(row rowScanner) (DecisionRecord, error) {
	var (
		rec          DecisionRecord
		evaluatedAt  string
		goods        string
		raw          string
		applied      string
		penalty      string
		mayTerminate int
		forceMajeure int
	)

	err := row.Scan(&rec.ID, &rec.ClauseID, &evaluatedAt, &goods, &rec.DelayHours,
		&rec.Periods, &raw, &applied, &penalty, &mayTerminate, &forceMajeure)
	if err != nil {
		return DecisionRecord{}, fmt.Errorf("scan decision: %w", err)
	}

	rec.EvaluatedAt, err = time.Parse(time.RFC3339Nano, evaluatedAt)
	if err != nil {
		return DecisionRecord{}, fmt.Errorf("parse evaluated_at: %w", err)
	}

	for _, field := range []struct {
		name string
		src  string
		dst  *decimal.Decimal
	}{
		{"goods_value", goods, &rec.GoodsValue},
		{"raw_percent", raw, &rec.RawPercent},
		{"applied_percent", applied, &rec.AppliedPercent},
		{"penalty_amount", penalty, &rec.PenaltyAmount},
	} {
		d, err := decimal.NewFromString(field.src)
		if err != nil {
			return DecisionRecord{}, fmt.Errorf("parse %s: %w", field.name, err)
		}
		*field.dst = d
	}

	rec.MayTerminate = mayTerminate != 0
	rec.ForceMajeure = forceMajeure != 0
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
