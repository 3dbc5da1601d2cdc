package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

var assetColumns = []string{"id", "owner_id", "category_id", "patrimonio", "created_at", "updated_at"}

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL.
// Activo y valores se escriben en la misma transacción.
type AssetRepo struct {
	db Querier
}

// NewAssetRepository construye el adaptador.
func NewAssetRepository(db Querier) *AssetRepo {
	return &AssetRepo{db: db}
}

// Create persiste el activo y sus valores.
func (r *AssetRepo) Create(ctx context.Context, a *entity.Asset) error {
	return runInTx(ctx, r.db, func(q Querier) error {
		query := `
			INSERT INTO assets (id, owner_id, category_id, patrimonio, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := q.Exec(ctx, query, a.ID, a.OwnerID, a.CategoryID, a.Patrimonio, a.CreatedAt, a.UpdatedAt); err != nil {
			return mapError(err, "asset", a.ID)
		}
		return insertValues(ctx, q, a.ID, a.FieldValues)
	})
}

// GetByID obtiene un activo con sus valores.
func (r *AssetRepo) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	query := `
		SELECT id, owner_id, category_id, patrimonio, created_at, updated_at
		FROM assets WHERE id = $1`
	var a entity.Asset
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.OwnerID, &a.CategoryID, &a.Patrimonio, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapError(err, "asset", id)
	}
	values, err := r.loadValues(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	a.FieldValues = valuesOrEmpty(values[id])
	return &a, nil
}

// List lista activos según el filtro, en orden de creación.
func (r *AssetRepo) List(ctx context.Context, filter repository.AssetFilter) ([]*entity.Asset, error) {
	where := squirrel.Eq{}
	if filter.OwnerID != "" {
		where["owner_id"] = filter.OwnerID
	}
	if filter.CategoryID != "" {
		where["category_id"] = filter.CategoryID
	}
	sb := psql.Select(assetColumns...).From("assets").OrderBy("seq")
	if len(where) > 0 {
		sb = sb.Where(where)
	}
	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Asset, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.CategoryID, &a.Patrimonio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, &a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	rows.Close()

	values, err := r.loadValues(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		a.FieldValues = valuesOrEmpty(values[a.ID])
	}
	return list, nil
}

// Update reemplaza patrimonio y el conjunto completo de valores.
func (r *AssetRepo) Update(ctx context.Context, a *entity.Asset) error {
	return runInTx(ctx, r.db, func(q Querier) error {
		tag, err := q.Exec(ctx, `UPDATE assets SET patrimonio = $2, updated_at = $3 WHERE id = $1`,
			a.ID, a.Patrimonio, a.UpdatedAt)
		if err != nil {
			return mapError(err, "asset", a.ID)
		}
		if err := requireAffected(tag, "asset", a.ID); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, `DELETE FROM asset_field_values WHERE asset_id = $1`, a.ID); err != nil {
			return mapError(err, "asset", a.ID)
		}
		return insertValues(ctx, q, a.ID, a.FieldValues)
	})
}

// Delete elimina el activo; ON DELETE CASCADE borra sus valores.
func (r *AssetRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "asset", id)
	}
	return requireAffected(tag, "asset", id)
}

// loadValues carga los valores de varios activos agrupados por asset_id.
func (r *AssetRepo) loadValues(ctx context.Context, assetIDs []string) (map[string][]entity.FieldValue, error) {
	out := make(map[string][]entity.FieldValue, len(assetIDs))
	if len(assetIDs) == 0 {
		return out, nil
	}
	sql, args, err := psql.Select("asset_id", "field_definition_id", "value").
		From("asset_field_values").
		Where(squirrel.Eq{"asset_id": assetIDs}).
		OrderBy("asset_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list field values: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			assetID string
			v       entity.FieldValue
		)
		if err := rows.Scan(&assetID, &v.FieldDefinitionID, &v.Value); err != nil {
			return nil, fmt.Errorf("scan field value: %w", err)
		}
		out[assetID] = append(out[assetID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list field values: %w", err)
	}
	return out, nil
}

// insertValues inserta los valores en un único INSERT multi-fila. position conserva el orden recibido.
func insertValues(ctx context.Context, q Querier, assetID string, values []entity.FieldValue) error {
	if len(values) == 0 {
		return nil
	}
	ib := psql.Insert("asset_field_values").Columns("asset_id", "field_definition_id", "position", "value")
	for i, v := range values {
		ib = ib.Values(assetID, v.FieldDefinitionID, i, v.Value)
	}
	sql, args, err := ib.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "asset", assetID)
	}
	return nil
}

func valuesOrEmpty(v []entity.FieldValue) []entity.FieldValue {
	if v == nil {
		return []entity.FieldValue{}
	}
	return v
}
