package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.FieldDefinitionRepository = (*FieldDefinitionRepo)(nil)

var fieldDefinitionColumns = []string{"id", "category_id", "name", "kind", "created_at"}

// FieldDefinitionRepo implementación del puerto FieldDefinitionRepository sobre PostgreSQL.
// El orden de inserción lo da la columna seq.
type FieldDefinitionRepo struct {
	db Querier
}

// NewFieldDefinitionRepository construye el adaptador.
func NewFieldDefinitionRepository(db Querier) *FieldDefinitionRepo {
	return &FieldDefinitionRepo{db: db}
}

// Create persiste una definición; si la categoría no existe devuelve ErrNotFound.
func (r *FieldDefinitionRepo) Create(ctx context.Context, f *entity.FieldDefinition) error {
	query := `
		INSERT INTO field_definitions (id, category_id, name, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, f.ID, f.CategoryID, f.Name, string(f.Kind), f.CreatedAt)
	if err != nil {
		return mapError(err, "field_definition", f.ID)
	}
	return nil
}

// GetByID obtiene una definición por ID.
func (r *FieldDefinitionRepo) GetByID(ctx context.Context, id string) (*entity.FieldDefinition, error) {
	query := `
		SELECT id, category_id, name, kind, created_at
		FROM field_definitions WHERE id = $1`
	f, err := scanFieldDefinition(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "field_definition", id)
	}
	return &f, nil
}

// ListByCategory lista el esquema de una categoría en orden.
func (r *FieldDefinitionRepo) ListByCategory(ctx context.Context, categoryID string) ([]entity.FieldDefinition, error) {
	query := `
		SELECT id, category_id, name, kind, created_at
		FROM field_definitions WHERE category_id = $1
		ORDER BY seq`
	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list field definitions: %w", err)
	}
	return collectFieldDefinitions(rows)
}

// ListByCategories carga los esquemas de varias categorías en una sola consulta.
func (r *FieldDefinitionRepo) ListByCategories(ctx context.Context, categoryIDs []string) (map[string][]entity.FieldDefinition, error) {
	out := make(map[string][]entity.FieldDefinition)
	if len(categoryIDs) == 0 {
		return out, nil
	}
	sql, args, err := psql.Select(fieldDefinitionColumns...).
		From("field_definitions").
		Where(squirrel.Eq{"category_id": categoryIDs}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list field definitions: %w", err)
	}
	list, err := collectFieldDefinitions(rows)
	if err != nil {
		return nil, err
	}
	for _, f := range list {
		out[f.CategoryID] = append(out[f.CategoryID], f)
	}
	return out, nil
}

// Delete elimina la definición; ON DELETE CASCADE borra sus valores.
func (r *FieldDefinitionRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM field_definitions WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "field_definition", id)
	}
	return requireAffected(tag, "field_definition", id)
}

func scanFieldDefinition(row pgx.Row) (entity.FieldDefinition, error) {
	var (
		f    entity.FieldDefinition
		kind string
	)
	if err := row.Scan(&f.ID, &f.CategoryID, &f.Name, &kind, &f.CreatedAt); err != nil {
		return entity.FieldDefinition{}, err
	}
	f.Kind = entity.FieldKind(kind)
	return f, nil
}

func collectFieldDefinitions(rows pgx.Rows) ([]entity.FieldDefinition, error) {
	defer rows.Close()
	list := make([]entity.FieldDefinition, 0)
	for rows.Next() {
		f, err := scanFieldDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan field definition: %w", err)
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list field definitions: %w", err)
	}
	return list, nil
}
