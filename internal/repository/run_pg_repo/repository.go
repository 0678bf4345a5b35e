package run_pg_repo

import (
	"baccarat_sim/internal/model"
	"baccarat_sim/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	runTable     = "last_run"
	colSlot      = "slot"
	colRunID     = "run_id"
	colCreatedAt = "created_at"
	colSeed      = "seed"
	colPayload   = "payload"

	rankingTable    = "last_run_ranking"
	colRank         = "rank"
	colPosition     = "position"
	colRule         = "rule"
	colFinalBalance = "final_balance"

	// Единственная строка: хранится только последний запуск
	lastSlot = 1
)

type repo struct {
	dbc       *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
}

func NewRunRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.RunRepository {
	return &repo{
		dbc:       dbc,
		txManager: txManager,
		getter:    trmpgx.DefaultCtxGetter,
	}
}

// SaveRun - перезаписывает последний запуск и его рейтинг в одной транзакции
func (r *repo) SaveRun(ctx context.Context, run *model.RunResult) error {
	payload, err := json.Marshal(run)
	if err != nil {
		return err
	}

	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		tr := r.getter.DefaultTrOrDB(txCtx, r.dbc)

		sqlStr, args, err := updateRunQuery(run, payload).ToSql()
		if err != nil {
			return err
		}

		res, err := tr.Exec(txCtx, sqlStr, args...)
		if err != nil {
			return err
		}

		// Если rowsAffected = 0 - то записи не существует и делаем вставку
		if res.RowsAffected() == 0 {
			sqlStr, args, err = insertRunQuery(run, payload).ToSql()
			if err != nil {
				return err
			}
			if _, err = tr.Exec(txCtx, sqlStr, args...); err != nil {
				return err
			}
		}

		sqlStr, args, err = sq.Delete(rankingTable).PlaceholderFormat(sq.Dollar).ToSql()
		if err != nil {
			return err
		}
		if _, err = tr.Exec(txCtx, sqlStr, args...); err != nil {
			return err
		}

		if len(run.Ranking) == 0 {
			return nil
		}

		sqlStr, args, err = insertRankingQuery(run).ToSql()
		if err != nil {
			return err
		}
		_, err = tr.Exec(txCtx, sqlStr, args...)
		return err
	})
}

// LastRun - получение последнего запуска. Возвращает model.ErrNoRun, если записи нет
func (r *repo) LastRun(ctx context.Context) (*model.RunResult, error) {
	query := sq.Select(colPayload).
		From(runTable).
		Where(sq.Eq{colSlot: lastSlot}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var payload []byte
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRun
		}
		return nil, err
	}

	var run model.RunResult
	if err := json.Unmarshal(payload, &run); err != nil {
		return nil, fmt.Errorf("decode last run: %w", err)
	}
	return &run, nil
}

func updateRunQuery(run *model.RunResult, payload []byte) sq.UpdateBuilder {
	return sq.Update(runTable).
		Set(colRunID, run.ID.String()).
		Set(colCreatedAt, run.CreatedAt).
		Set(colSeed, run.Seed).
		Set(colPayload, payload).
		Where(sq.Eq{colSlot: lastSlot}).
		PlaceholderFormat(sq.Dollar)
}

func insertRunQuery(run *model.RunResult, payload []byte) sq.InsertBuilder {
	return sq.Insert(runTable).
		Columns(colSlot, colRunID, colCreatedAt, colSeed, colPayload).
		Values(lastSlot, run.ID.String(), run.CreatedAt, run.Seed, payload).
		PlaceholderFormat(sq.Dollar)
}

func insertRankingQuery(run *model.RunResult) sq.InsertBuilder {
	query := sq.Insert(rankingTable).
		Columns(colRunID, colRank, colPosition, colRule, colFinalBalance).
		PlaceholderFormat(sq.Dollar)

	for i, s := range run.Ranking {
		query = query.Values(run.ID.String(), i+1, s.Position.String(), s.Rule.String(), s.FinalBalance)
	}
	return query
}
