package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/shared/constant"
	"lodgehub/shared/dto"
	"lodgehub/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
	errNothingToSet   = errors.New("no columns to update")
)

type column struct {
	name  string
	table string
	alias string
}

// expression renders the column for a select list.
func (c column) expression() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

type queryer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository maps the db-tagged fields of T onto one table. Fields tagged
// with another `table` are read through the join T returns from GetJoinQuery
// and are never written.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	join          string
	insertQuery   string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if joiner, ok := any(zero).(interface{ GetJoinQuery() string }); ok {
		join = joiner.GetJoinQuery()
	}

	placeholders := make([]string, len(insertColumns))
	for i, col := range insertColumns {
		placeholders[i] = ":" + col
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			tableName, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", ")),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entitas, err)
}

func (repo *Repository[T]) exec(ctx context.Context, exec execer, operation, query string, arg any) error {
	ctx, scope := repo.scope(ctx, operation)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		return repo.fail(scope, operation, err)
	}

	return nil
}

// scalar runs a single-value query such as EXISTS, COUNT or SUM.
func scalar[V any, T any](ctx context.Context, repo *Repository[T], operation, query string, args map[string]any) (V, error) {
	ctx, scope := repo.scope(ctx, operation)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var value V

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return value, repo.fail(scope, "prepare "+operation, err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &value, args); err != nil {
		return value, repo.fail(scope, operation, err)
	}

	return value, nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.exec(ctx, repo.db.Write, "Insert", repo.insertQuery, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.exec(ctx, sqltx, "InsertTx", repo.insertQuery, model)
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.exec(ctx, repo.db.Write, "InsertBulk", repo.insertQuery, models)
}

func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.exec(ctx, sqltx, "InsertBulkTx", repo.insertQuery, models)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := repo.where(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	return scalar[bool](ctx, repo, "Exist", fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where), args)
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := repo.where(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	return scalar[int](ctx, repo, "Count", query, args)
}

// Sum returns the total of a numeric column, zero when no row matches.
func (repo *Repository[T]) Sum(ctx context.Context, column string, filter dto.FilterGroup) (float64, error) {
	where, args := repo.where(filter)
	query := fmt.Sprintf("SELECT COALESCE(SUM(%s.%s), 0) FROM %s %s %s",
		repo.table, pq.QuoteIdentifier(column), repo.table, repo.join, where)

	return scalar[float64](ctx, repo, "Sum", query, args)
}

// get returns the zero T when nothing matches; callers test the primary key.
func (repo *Repository[T]) get(ctx context.Context, query queryer, operation string, filter dto.FilterGroup, lock bool, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, operation)
	defer scope.End()

	where, args := repo.where(filter)

	statement := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns), repo.table, repo.join, where)
	if lock {
		statement += " FOR UPDATE"
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	var model T

	stmt, err := query.PrepareNamedContext(ctx, statement)
	if err != nil {
		return model, repo.fail(scope, "prepare get", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, repo.db.Read, "Get", filter, false, columns...)
}

func (repo *Repository[T]) GetTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, sqltx, "GetTx", filter, false, columns...)
}

// GetForUpdateTx reads a row and keeps it locked until the transaction ends.
func (repo *Repository[T]) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, sqltx, "GetForUpdateTx", filter, true, columns...)
}

func (repo *Repository[T]) getAll(ctx context.Context, query queryer, operation string, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, operation)
	defer scope.End()

	where, args := repo.where(filter)

	statement := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s",
		repo.selectList(columns), repo.table, repo.join, where, orderBy(params.SortBy, params.SortDir), paginate(params, args))

	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	var models []T

	stmt, err := query.PrepareNamedContext(ctx, statement)
	if err != nil {
		return nil, repo.fail(scope, "prepare get all", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return nil, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, repo.db.Read, "GetAll", params, filter, columns...)
}

func (repo *Repository[T]) GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.getAll(ctx, sqltx, "GetAllTx", params, filter, columns...)
}

func (repo *Repository[T]) delete(ctx context.Context, exec execer, operation string, filter dto.FilterGroup) error {
	where, args := repo.where(filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.exec(ctx, exec, operation, fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	return repo.delete(ctx, repo.db.Write, "Delete", filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	return repo.delete(ctx, sqltx, "DeleteTx", filter)
}

// update refuses an empty filter so a missing id can never rewrite the table.
func (repo *Repository[T]) update(ctx context.Context, exec execer, operation string, mod map[string]any, filter dto.FilterGroup) error {
	if len(mod) == 0 {
		return errNothingToSet
	}

	where, args := repo.where(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, setList(mod), where)
	maps.Copy(args, mod)

	return repo.exec(ctx, exec, operation, query, args)
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, "Update", mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, sqltx, "UpdateTx", mod, filter)
}

// selectList keeps only the requested columns when any are given.
func (repo *Repository[T]) selectList(only []string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		exprs = append(exprs, col.expression())
	}

	return strings.Join(exprs, ", ")
}

func (repo *Repository[T]) where(filter dto.FilterGroup) (string, map[string]any) {
	clause, args := filter.GetWhereClause()
	if clause == "" {
		return "", map[string]any{}
	}

	return " WHERE " + clause + " ", args
}

// setList renders sorted "col = :col" pairs so the statement text is stable.
func setList(mod map[string]any) string {
	keys := slices.Sorted(maps.Keys(mod))

	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = fmt.Sprintf("%s = :%s", key, key)
	}

	return strings.Join(pairs, ", ")
}

func paginate(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = (params.Page - 1) * params.Limit

	return "LIMIT :limit OFFSET :offset"
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			nested, nestedInsert := getColumns(table, field.Type)
			columns = append(columns, nested...)
			insertColumns = append(insertColumns, nestedInsert...)
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if source := field.Tag.Get("column"); source != "" {
			columns = append(columns, column{name: source, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}

// orderBy quotes a possibly table-qualified column. Anything other than ASC or
// DESC drops the clause.
func orderBy(sortBy, sortDir string) string {
	dir := strings.ToUpper(sortDir)
	if sortBy == "" || (dir != dto.SortDirAsc && dir != dto.SortDirDesc) {
		return ""
	}

	parts := strings.Split(sortBy, ".")
	for i, part := range parts {
		parts[i] = pq.QuoteIdentifier(part)
	}

	return fmt.Sprintf("ORDER BY %s %s", strings.Join(parts, "."), dir)
}
