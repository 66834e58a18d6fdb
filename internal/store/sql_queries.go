package store

import (
	sq "github.com/Masterminds/squirrel"
)

const appDataTable = "app_data"

func selectSnapshotQuery(key string) (string, []any, error) {
	return sq.Select("payload").
		From(appDataTable).
		Where(sq.Eq{"storage_key": key}).
		ToSql()
}

func upsertSnapshotQuery(key string, payload []byte, updatedAt string) (string, []any, error) {
	return sq.Insert(appDataTable).
		Columns("storage_key", "payload", "updated_at").
		Values(key, string(payload), updatedAt).
		Suffix("ON CONFLICT(storage_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
}
