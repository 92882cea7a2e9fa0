package repository

import "github.com/mohamadkhanafer/fitnessapp/internal/storage"

// Per-dialect SQL. The schemas are identical in shape; only
// placeholders and upsert spelling differ.
type queries struct {
	upsertRecord string
	getRecord    string
	getRange     string
	deleteRecord string

	getSyncState            string
	insertSyncState         string
	markBackfillComplete    string
	updateBackfillWatermark string
	updateLastSync          string
}

var sqliteQueries = queries{
	upsertRecord: `
		INSERT INTO daily_records (
			day, sleep_minutes, hrv_milli, resting_heart_rate, steps,
			active_energy_kcal, workout_minutes, workout_count, sources_json, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (day) DO UPDATE SET
			sleep_minutes = excluded.sleep_minutes,
			hrv_milli = excluded.hrv_milli,
			resting_heart_rate = excluded.resting_heart_rate,
			steps = excluded.steps,
			active_energy_kcal = excluded.active_energy_kcal,
			workout_minutes = excluded.workout_minutes,
			workout_count = excluded.workout_count,
			sources_json = excluded.sources_json,
			updated_at = CURRENT_TIMESTAMP`,
	getRecord: `
		SELECT day, sleep_minutes, hrv_milli, resting_heart_rate, steps,
			active_energy_kcal, workout_minutes, workout_count, sources_json
		FROM daily_records WHERE day = ?`,
	getRange: `
		SELECT day, sleep_minutes, hrv_milli, resting_heart_rate, steps,
			active_energy_kcal, workout_minutes, workout_count, sources_json
		FROM daily_records WHERE day >= ? AND day <= ?
		ORDER BY day ASC`,
	deleteRecord: `DELETE FROM daily_records WHERE day = ?`,

	getSyncState: `
		SELECT backfill_complete, backfill_watermark, last_sync
		FROM sync_state WHERE id = 1`,
	insertSyncState: `
		INSERT INTO sync_state (id, backfill_complete) VALUES (1, 0)
		ON CONFLICT (id) DO NOTHING`,
	markBackfillComplete:    `UPDATE sync_state SET backfill_complete = 1 WHERE id = 1`,
	updateBackfillWatermark: `UPDATE sync_state SET backfill_watermark = ? WHERE id = 1`,
	updateLastSync:          `UPDATE sync_state SET last_sync = ? WHERE id = 1`,
}

var postgresQueries = queries{
	upsertRecord: `
		INSERT INTO daily_records (
			day, sleep_minutes, hrv_milli, resting_heart_rate, steps,
			active_energy_kcal, workout_minutes, workout_count, sources_json, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (day) DO UPDATE SET
			sleep_minutes = EXCLUDED.sleep_minutes,
			hrv_milli = EXCLUDED.hrv_milli,
			resting_heart_rate = EXCLUDED.resting_heart_rate,
			steps = EXCLUDED.steps,
			active_energy_kcal = EXCLUDED.active_energy_kcal,
			workout_minutes = EXCLUDED.workout_minutes,
			workout_count = EXCLUDED.workout_count,
			sources_json = EXCLUDED.sources_json,
			updated_at = NOW()`,
	getRecord: `
		SELECT day, sleep_minutes, hrv_milli, resting_heart_rate, steps,
			active_energy_kcal, workout_minutes, workout_count, sources_json
		FROM daily_records WHERE day = $1`,
	getRange: `
		SELECT day, sleep_minutes, hrv_milli, resting_heart_rate, steps,
			active_energy_kcal, workout_minutes, workout_count, sources_json
		FROM daily_records WHERE day >= $1 AND day <= $2
		ORDER BY day ASC`,
	deleteRecord: `DELETE FROM daily_records WHERE day = $1`,

	getSyncState: `
		SELECT backfill_complete, backfill_watermark, last_sync
		FROM sync_state WHERE id = 1`,
	insertSyncState: `
		INSERT INTO sync_state (id, backfill_complete) VALUES (1, FALSE)
		ON CONFLICT (id) DO NOTHING`,
	markBackfillComplete:    `UPDATE sync_state SET backfill_complete = TRUE WHERE id = 1`,
	updateBackfillWatermark: `UPDATE sync_state SET backfill_watermark = $1 WHERE id = 1`,
	updateLastSync:          `UPDATE sync_state SET last_sync = $1 WHERE id = 1`,
}

func queriesFor(dialect storage.Dialect) queries {
	if dialect == storage.DialectPostgres {
		return postgresQueries
	}
	return sqliteQueries
}
